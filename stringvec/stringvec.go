// Package stringvec provides a mutable vector of trimmed strings and its
// immutable snapshot.
package stringvec

import (
	"iter"

	"github.com/on-the-ground/vectors/internal/store"
	"github.com/on-the-ground/vectors/shared/helper"
	"github.com/on-the-ground/vectors/shared/log"
	"github.com/on-the-ground/vectors/vector"
	"go.uber.org/zap"
)

// Vector is a mutable list of strings.
type Vector struct {
	values store.Store[string]
}

var _ vector.StringInterface = (*Vector)(nil)

// New returns a vector holding a copy of values, stored as given.
func New(values ...string) *Vector {
	return &Vector{values: store.New(values...)}
}

// Append trims every value and appends those that are not empty.
func (v *Vector) Append(values ...string) *Vector {
	for _, value := range values {
		if value = helper.Trim(value); value != "" {
			v.values.Push(value)
		}
	}
	return v
}

// FilterUnique drops exact duplicates, keeping first occurrences in order.
func (v *Vector) FilterUnique() *Vector {
	before := v.Count()
	v.values.Reset(helper.UniqueBy(v.values.Items(), func(s string) string { return s }))
	if removed := before - v.Count(); removed > 0 {
		log.Named("stringvec").Debug("filtered duplicate strings", zap.Int("removed", removed))
	}
	return v
}

// ToImmutable snapshots the current contents.
func (v *Vector) ToImmutable() *Immutable {
	return NewImmutable(v.values.Items()...)
}

func (v *Vector) Count() int {
	return v.values.Count()
}

// Values yields the strings in storage order.
func (v *Vector) Values() iter.Seq[string] {
	return v.values.Values()
}

func (v *Vector) All() iter.Seq2[int, string] {
	return v.values.All()
}

// Array returns a copy of the strings.
func (v *Vector) Array() []string {
	return v.values.Array()
}

// Join concatenates the strings separated by a one-byte glue.
func (v *Vector) Join(glue string) (string, error) {
	return store.Join(&v.values, glue)
}

func (v *Vector) Digest() uint64 {
	return store.Digest(&v.values)
}
