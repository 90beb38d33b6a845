package list

import (
	"go.lepak.sg/toolkit/iterator"
)

// Dispatch table entries for list iterators. The cursor is the current
// node (a nil Ref encodes the past-the-end position) plus the owning
// list, which is needed both to retreat from past-the-end and to check
// that a caller-supplied iterator belongs to the list it is handed to.

func iterNode[T any](it *iterator.Iterator[T]) *node[T] {
	ref := it.State().Ref
	if ref == nil {
		return nil
	}
	return ref.(*node[T])
}

func setIterNode[T any](it *iterator.Iterator[T], n *node[T]) {
	if n == nil {
		it.State().Ref = nil
	} else {
		it.State().Ref = n
	}
}

func iterAdvance[T any](it *iterator.Iterator[T]) {
	if n := iterNode(it); n != nil {
		setIterNode(it, n.next)
	}
	// Advancing past-the-end stays past-the-end.
}

func iterRetreat[T any](it *iterator.Iterator[T]) {
	n := iterNode(it)
	if n != nil {
		setIterNode(it, n.prev)
		return
	}

	// Retreating from past-the-end lands on the tail. On an empty
	// list there is no tail and the iterator stays past-the-end, so
	// Begin == End remains consistent.
	l := it.State().Owner.(*List[T])
	if l.tail != nil {
		setIterNode(it, l.tail)
	}
}

func iterGet[T any](it *iterator.Iterator[T]) *T {
	n := iterNode(it)
	if n == nil {
		panic("list: get on past-the-end iterator")
	}
	return &n.val
}

func iterEqual[T any](a, b *iterator.Iterator[T]) bool {
	// Same node (or both past-the-end) within the same list.
	return a.State().Ref == b.State().Ref &&
		a.State().Owner == b.State().Owner
}

func iterClone[T any](dst, src *iterator.Iterator[T]) {
	// The whole cursor lives inline, so a value copy is a clone.
	*dst = *src
}
