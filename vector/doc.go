// Package vector defines the capability set implemented by every container in this module
// and the glue and digest rules shared by the string containers.
//
// A container is countable, iterable in storage order and can hand out a defensive
// copy of its elements:
//
//	Count() int
//	Values() iter.Seq[T]
//	All() iter.Seq2[int, T]
//	Array() []T
//
// String containers additionally join their elements with a one-byte glue:
//
//	s, err := v.Join(",")
//	if errors.Is(err, vector.ErrInvalidGlue) { ... }
//
// Iterators are lazy and restartable: ranging twice yields the same sequence as
// long as the container was not mutated in between.
package vector
