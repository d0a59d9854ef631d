// Package errbag collects errors in the order they occur.
package errbag

import (
	"iter"

	"github.com/on-the-ground/vectors/internal/store"
	"github.com/on-the-ground/vectors/vector"
	"go.uber.org/multierr"
)

// Bag is an append-only list of errors.
type Bag struct {
	errs store.Store[error]
}

var _ vector.Interface[error] = (*Bag)(nil)

// New returns a bag holding the non-nil errors of es.
func New(es ...error) *Bag {
	b := &Bag{}
	for _, err := range es {
		b.Append(err)
	}
	return b
}

// Append adds err to the bag. A nil err is ignored.
func (b *Bag) Append(err error) *Bag {
	if err != nil {
		b.errs.Push(err)
	}
	return b
}

func (b *Bag) Count() int {
	return b.errs.Count()
}

func (b *Bag) Values() iter.Seq[error] {
	return b.errs.Values()
}

func (b *Bag) All() iter.Seq2[int, error] {
	return b.errs.All()
}

// Array returns a copy of the collected errors.
func (b *Bag) Array() []error {
	return b.errs.Array()
}

// Err combines the collected errors into one, or returns nil for an empty bag.
// The result matches every collected error with errors.Is and errors.As.
func (b *Bag) Err() error {
	return multierr.Combine(b.errs.Array()...)
}
