// Package store is the backing sequence shared by every container of the module.
// Containers hold a Store in an unexported field and forward its read methods,
// so the mutators below never reach their callers.
package store

import (
	"iter"
	"slices"

	"github.com/on-the-ground/vectors/vector"
)

// Store is an ordered sequence of T. The zero value is empty and ready to use.
type Store[T any] struct {
	items []T
}

// New copies items into a new Store.
func New[T any](items ...T) Store[T] {
	return Store[T]{items: slices.Clone(items)}
}

func (s *Store[T]) Count() int {
	return len(s.items)
}

// Values yields the elements in storage order.
func (s *Store[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields index/element pairs in storage order.
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Array returns a copy of the elements. It is never nil.
func (s *Store[T]) Array() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Items returns the backing slice. It must not escape the owning container.
func (s *Store[T]) Items() []T {
	return s.items
}

func (s *Store[T]) Push(values ...T) {
	s.items = append(s.items, values...)
}

// Reset makes items the new backing slice. The store owns it afterwards.
func (s *Store[T]) Reset(items []T) {
	s.items = items
}

// Join concatenates string elements with a one-byte glue.
func Join(s *Store[string], glue string) (string, error) {
	return vector.Join(s.items, glue)
}

// Digest fingerprints string elements in storage order.
func Digest(s *Store[string]) uint64 {
	return vector.Digest(s.items)
}
