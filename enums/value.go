package enums

import (
	"cmp"
	"strconv"
	"strings"
)

// Kind tells which variant a Value holds.
type Kind uint8

const (
	// KindNil is the value of a case without a backing value.
	KindNil Kind = iota
	// KindInt is an integer backing value.
	KindInt
	// KindString is a string backing value.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the backing value of a case: nothing, an integer or a string.
// The zero Value is Nil.
type Value struct {
	kind Kind
	i    int64
	s    string
}

// Nil is the backing value of unbacked cases.
var Nil = Value{}

// IntValue returns an integer backing value.
func IntValue(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// StringValue returns a string backing value.
func StringValue(v string) Value {
	return Value{kind: KindString, s: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// Int returns the integer payload and whether v holds one.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Str returns the string payload and whether v holds one.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Any returns nil, an int64 or a string.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindString:
		return v.s
	default:
		return nil
	}
}

// String renders the payload; Nil renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// number is the numeric reading of v used by numeric sorting.
// Strings that do not parse as integers read as 0, like Nil.
func (v Value) number() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func compareNumeric(a, b Value) int {
	return cmp.Compare(a.number(), b.number())
}

func compareString(a, b Value) int {
	return strings.Compare(a.String(), b.String())
}
