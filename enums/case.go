package enums

// Case is one enumerated value. Type names the enumeration it belongs to,
// Name is unique within that enumeration, and Value is Nil unless the
// enumeration is backed.
type Case struct {
	Type  string
	Name  string
	Value Value
}

// Key identifies a case regardless of its backing value.
type Key struct {
	Type string
	Name string
}

func (c Case) Key() Key {
	return Key{Type: c.Type, Name: c.Name}
}

func (c Case) IsBacked() bool {
	return !c.Value.IsNil()
}

func (c Case) String() string {
	return c.Type + "::" + c.Name
}

// Caser is implemented by Go enumerations that can describe themselves as a Case.
type Caser interface {
	EnumCase() Case
}

// Type is the identity of an enumeration. It mints cases of that enumeration
// and, used as an Index, selects its case map.
// All cases of one Type should be unbacked, or all backed with the same kind;
// see ClassMap.CaseValues.
type Type string

// Case returns an unbacked case of t.
func (t Type) Case(name string) Case {
	return Case{Type: string(t), Name: name}
}

// IntCase returns an integer-backed case of t.
func (t Type) IntCase(name string, v int64) Case {
	return Case{Type: string(t), Name: name, Value: IntValue(v)}
}

// StringCase returns a string-backed case of t.
func (t Type) StringCase(name, v string) Case {
	return Case{Type: string(t), Name: name, Value: StringValue(v)}
}
