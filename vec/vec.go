// Package vec provides a generic dynamic array with amortized-O(1)
// append, O(1) indexed access, and random-access iterators speaking the
// toolkit's iteration protocol.
//
// A Vector stores copies of the values pushed into it and exclusively
// owns its buffer. It is not safe for concurrent use; separate vectors
// may be used from separate goroutines without coordination.
package vec

import (
	"go.lepak.sg/toolkit/iterator"
)

// Vector is a contiguous, growable sequence of T. The zero value is
// not ready for use; call New.
type Vector[T any] struct {
	data []T
	vt   *iterator.VTable[T]
}

// New returns an empty vector with no storage allocated.
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	v.vt = &iterator.VTable[T]{
		Category: iterator.RandomAccess,
		TypeName: "vec.Iterator",
		Advance:  iterAdvance[T],
		Get:      iterGet[T],
		Equal:    iterEqual[T],
		Clone:    iterClone[T],
		Retreat:  iterRetreat[T],
	}
	iterator.Validate(v.vt)
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return len(v.data) == 0
}

// Cap returns the number of elements the vector can hold before its
// next reallocation.
func (v *Vector[T]) Cap() int {
	return cap(v.data)
}

// Reserve grows the capacity to at least n elements. It never shrinks
// and never changes the length. Iterators obtained before a growing
// Reserve are invalidated.
func (v *Vector[T]) Reserve(n int) {
	if n <= cap(v.data) {
		return
	}
	grown := make([]T, len(v.data), n)
	copy(grown, v.data)
	v.data = grown
}

// At returns a reference to the element at index i, or nil if i is out
// of range.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= len(v.data) {
		return nil
	}
	return &v.data[i]
}

// Front returns a reference to the first element, or nil on empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a reference to the last element, or nil on empty.
func (v *Vector[T]) Back() *T {
	return v.At(len(v.data) - 1)
}

// PushBack appends a copy of elem. Amortized O(1); growth is geometric.
// If the buffer is reallocated, all outstanding iterators are
// invalidated. The error return is always nil today and exists for the
// contract shape shared with List.
func (v *Vector[T]) PushBack(elem T) error {
	v.data = append(v.data, elem)
	return nil
}

// PopBack removes the last element. O(1), capacity unchanged, no-op on
// an empty vector. Only iterators that designated the removed element
// are invalidated.
func (v *Vector[T]) PopBack() {
	if len(v.data) == 0 {
		return
	}
	var zero T
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
}

// Clear removes every element, keeping the capacity.
func (v *Vector[T]) Clear() {
	var zero T
	for i := range v.data {
		v.data[i] = zero
	}
	v.data = v.data[:0]
}

// Destroy tears the vector down. If destroyer is non-nil it is invoked
// once per live element, in order, with a reference to the element's
// stored value; it may release resources the element refers to but must
// not touch the vector. The buffer is released afterwards.
func (v *Vector[T]) Destroy(destroyer func(*T)) {
	if destroyer != nil {
		for i := range v.data {
			destroyer(&v.data[i])
		}
	}
	v.data = nil
}

// Begin returns a random-access iterator to the first element. On an
// empty vector it equals End.
func (v *Vector[T]) Begin() iterator.Iterator[T] {
	return iterator.New(v.vt, iterator.State{Owner: v, Index: 0})
}

// End returns the past-the-end iterator. It is never dereferenceable.
func (v *Vector[T]) End() iterator.Iterator[T] {
	return iterator.New(v.vt, iterator.State{Owner: v, Index: len(v.data)})
}
