package vector

import "iter"

// Interface is the capability set implemented by every container.
type Interface[T any] interface {
	Count() int
	Values() iter.Seq[T]
	All() iter.Seq2[int, T]
	Array() []T
}

// StringInterface is implemented by containers of strings.
type StringInterface interface {
	Interface[string]
	Join(glue string) (string, error)
	Digest() uint64
}
