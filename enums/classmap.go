package enums

import (
	"iter"
	"slices"
)

// CaseMap maps the case names of one enumeration to their backing values,
// in a fixed order.
type CaseMap struct {
	names  []string
	values map[string]Value
}

func newCaseMap() *CaseMap {
	return &CaseMap{values: make(map[string]Value)}
}

// set records name once; a repeated name overwrites its slot in place.
func (m *CaseMap) set(name string, v Value) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = v
}

func (m *CaseMap) Len() int {
	return len(m.names)
}

// Names returns a copy of the case names in map order.
func (m *CaseMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Values returns the backing values in map order.
func (m *CaseMap) Values() []Value {
	out := make([]Value, len(m.names))
	for i, name := range m.names {
		out[i] = m.values[name]
	}
	return out
}

func (m *CaseMap) Get(name string) (Value, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *CaseMap) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}

// ClassMap groups cases by enumeration type.
type ClassMap struct {
	types  []string
	byType map[string]*CaseMap
	sorted bool
}

// Classify groups cases by Type in encounter order. With sorting, types and the
// case names of every type are ordered lexicographically instead.
func Classify(cases []Case, sorting bool) *ClassMap {
	cm := &ClassMap{
		byType: make(map[string]*CaseMap),
		sorted: sorting,
	}
	for _, c := range cases {
		m, ok := cm.byType[c.Type]
		if !ok {
			m = newCaseMap()
			cm.byType[c.Type] = m
			cm.types = append(cm.types, c.Type)
		}
		m.set(c.Name, c.Value)
	}

	if sorting {
		slices.Sort(cm.types)
		for _, m := range cm.byType {
			slices.Sort(m.names)
		}
	}
	return cm
}

func (cm *ClassMap) Len() int {
	return len(cm.types)
}

// Sorted reports whether the map was built with sorting on.
func (cm *ClassMap) Sorted() bool {
	return cm.sorted
}

// Types returns the type identities in map order.
func (cm *ClassMap) Types() []string {
	return slices.Clone(cm.types)
}

func (cm *ClassMap) All() iter.Seq2[string, *CaseMap] {
	return func(yield func(string, *CaseMap) bool) {
		for _, t := range cm.types {
			if !yield(t, cm.byType[t]) {
				return
			}
		}
	}
}

// CaseMap resolves index to the case map of one type.
// ok is false for a negative or out of range Pos, an empty Type and an unknown Type.
func (cm *ClassMap) CaseMap(index Index) (m *CaseMap, ok bool) {
	if index == nil {
		return nil, false
	}
	return index.lookup(cm)
}

// CaseNames returns the case names of the type selected by index.
func (cm *ClassMap) CaseNames(index Index) ([]string, bool) {
	m, ok := cm.CaseMap(index)
	if !ok {
		return nil, false
	}
	return m.Names(), true
}

// CaseValues returns the backing values of the type selected by index.
//
// When the map is sorted the values are sorted on their own: numerically if the
// first one is an integer, as strings otherwise. They are not kept aligned with
// the name order.
//
// An enumeration is expected to back all of its cases with the same kind.
// Mixing int and string values within one type is not supported: the order is
// still deterministic (numeric mode reads non-numeric strings and Nil as 0,
// string mode renders ints in decimal) but callers should not rely on it.
func (cm *ClassMap) CaseValues(index Index) ([]Value, bool) {
	m, ok := cm.CaseMap(index)
	if !ok {
		return nil, false
	}

	values := m.Values()
	if cm.sorted && len(values) > 0 {
		if values[0].Kind() == KindInt {
			slices.SortStableFunc(values, compareNumeric)
		} else {
			slices.SortStableFunc(values, compareString)
		}
	}
	return values, true
}
