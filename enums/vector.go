package enums

import (
	"iter"

	"github.com/on-the-ground/vectors/internal/store"
	"github.com/on-the-ground/vectors/shared/helper"
	"github.com/on-the-ground/vectors/shared/log"
	"github.com/on-the-ground/vectors/vector"
	"go.uber.org/zap"
)

// Vector is an ordered collection of enumerated cases, possibly of several types.
// Its class map is sorted unless SetSorting(false) was called; the zero value
// is an empty, sorting vector.
type Vector struct {
	cases    store.Store[Case]
	unsorted bool
}

var _ vector.Interface[Case] = (*Vector)(nil)

// New returns a vector holding a copy of cs, with sorting on.
func New(cs ...Case) *Vector {
	return &Vector{cases: store.New(cs...)}
}

// Of builds a vector from Go enumeration values.
func Of[E Caser](values ...E) *Vector {
	cs := make([]Case, len(values))
	for i, v := range values {
		cs[i] = v.EnumCase()
	}
	return &Vector{cases: store.New(cs...)}
}

func (v *Vector) Count() int {
	return v.cases.Count()
}

// Values yields the cases in storage order.
func (v *Vector) Values() iter.Seq[Case] {
	return v.cases.Values()
}

func (v *Vector) All() iter.Seq2[int, Case] {
	return v.cases.All()
}

// Array returns a copy of the cases.
func (v *Vector) Array() []Case {
	return v.cases.Array()
}

// SetSorting switches between sorted and encounter order for class maps built afterwards.
func (v *Vector) SetSorting(sorting bool) *Vector {
	v.unsorted = !sorting
	return v
}

func (v *Vector) Sorting() bool {
	return !v.unsorted
}

// FilterUnique drops every case whose (Type, Name) was already seen, keeping the
// first occurrences in order. Backing values play no part in the comparison.
func (v *Vector) FilterUnique() *Vector {
	before := v.Count()
	v.cases.Reset(helper.UniqueBy(v.cases.Items(), Case.Key))
	if removed := before - v.Count(); removed > 0 {
		log.Named("enums").Debug("filtered duplicate cases", zap.Int("removed", removed))
	}
	return v
}

// ClassMap groups the current cases by type. The result is a snapshot; build it
// once to resolve several indices against the same contents.
func (v *Vector) ClassMap() *ClassMap {
	return Classify(v.cases.Items(), v.Sorting())
}

// CaseMap returns the name to value map of the type selected by index.
func (v *Vector) CaseMap(index Index) (*CaseMap, bool) {
	return v.ClassMap().CaseMap(index)
}

// CaseNames returns the case names of the type selected by index.
func (v *Vector) CaseNames(index Index) ([]string, bool) {
	return v.ClassMap().CaseNames(index)
}

// CaseValues returns the backing values of the type selected by index.
// See ClassMap.CaseValues for the ordering rules.
func (v *Vector) CaseValues(index Index) ([]Value, bool) {
	return v.ClassMap().CaseValues(index)
}

// Digest fingerprints the identity keys of the cases in storage order.
func (v *Vector) Digest() uint64 {
	keys := make([]string, 0, 2*v.Count())
	for c := range v.cases.Values() {
		keys = append(keys, c.Type, c.Name)
	}
	return vector.Digest(keys)
}
