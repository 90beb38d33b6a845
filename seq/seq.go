// Package seq provides generic sequence algorithms parameterized only
// on the toolkit's iteration protocol. The algorithms treat iterators
// as opaque values and never touch the underlying container, so a
// single body applies to any conforming container.
package seq

import (
	"go.lepak.sg/toolkit/iterator"
)

// Predicate reports whether an element matches. It receives a reference
// to the element's stored value and must not mutate the container under
// iteration.
type Predicate[T any] func(*T) bool

// FindIf returns an iterator to the first element in [begin, end) that
// satisfies pred, or end if there is none. O(distance); forward
// iterators suffice. On an empty range (begin == end) pred is never
// called and end is returned.
func FindIf[T any](begin, end iterator.Iterator[T], pred Predicate[T]) iterator.Iterator[T] {
	for !iterator.Equal(begin, end) {
		if pred(begin.Get()) {
			return begin
		}
		begin.Next()
	}
	return end
}

// Advance moves it forward by n positions and returns it. Advancing
// beyond the past-the-end position is undefined.
func Advance[T any](it iterator.Iterator[T], n int) iterator.Iterator[T] {
	for ; n > 0; n-- {
		it.Next()
	}
	return it
}

// Distance returns the number of positions between begin and end.
// end must be reachable from begin by repeated Next calls.
func Distance[T any](begin, end iterator.Iterator[T]) int {
	d := 0
	for !iterator.Equal(begin, end) {
		begin.Next()
		d++
	}
	return d
}
