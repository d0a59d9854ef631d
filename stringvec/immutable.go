package stringvec

import (
	"iter"

	"github.com/on-the-ground/vectors/internal/store"
	"github.com/on-the-ground/vectors/vector"
)

// Immutable is a read-only list of strings. Its contents are fixed at construction.
type Immutable struct {
	values store.Store[string]
}

var _ vector.StringInterface = (*Immutable)(nil)

// NewImmutable copies values into a new Immutable.
func NewImmutable(values ...string) *Immutable {
	return &Immutable{values: store.New(values...)}
}

func (m *Immutable) Count() int {
	return m.values.Count()
}

func (m *Immutable) Values() iter.Seq[string] {
	return m.values.Values()
}

func (m *Immutable) All() iter.Seq2[int, string] {
	return m.values.All()
}

// Array returns a copy of the strings.
func (m *Immutable) Array() []string {
	return m.values.Array()
}

func (m *Immutable) Join(glue string) (string, error) {
	return store.Join(&m.values, glue)
}

func (m *Immutable) Digest() uint64 {
	return store.Digest(&m.values)
}
