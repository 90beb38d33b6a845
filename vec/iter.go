package vec

import (
	"go.lepak.sg/toolkit/iterator"
)

// Dispatch table entries for vector iterators. The cursor is the owning
// vector plus an element index; the index encoding keeps the iterator
// meaningful across buffer reallocations, though the invalidation
// contract still forbids using iterators obtained before one.

func iterAdvance[T any](it *iterator.Iterator[T]) {
	it.State().Index++
}

func iterRetreat[T any](it *iterator.Iterator[T]) {
	it.State().Index--
}

func iterGet[T any](it *iterator.Iterator[T]) *T {
	s := it.State()
	v := s.Owner.(*Vector[T])
	if s.Index < 0 || s.Index >= len(v.data) {
		panic("vec: get out of range: " + it.VTable().TypeName)
	}
	return &v.data[s.Index]
}

func iterEqual[T any](a, b *iterator.Iterator[T]) bool {
	return a.State().Owner == b.State().Owner &&
		a.State().Index == b.State().Index
}

func iterClone[T any](dst, src *iterator.Iterator[T]) {
	// The whole cursor lives inline, so a value copy is a clone.
	*dst = *src
}
