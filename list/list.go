// Package list provides a generic doubly-linked list with O(1)
// mutation at either end and at any iterator position, and
// bidirectional iterators speaking the toolkit's iteration protocol.
//
// The list owns its nodes and stores copies of the values pushed into
// it. Unrelated mutations never disturb outstanding iterators:
// InsertBefore preserves every existing iterator, and EraseAt
// invalidates only iterators to the erased node. The list is not safe
// for concurrent use.
package list

import (
	"go.lepak.sg/toolkit/errs"
	"go.lepak.sg/toolkit/iterator"
)

type node[T any] struct {
	prev, next *node[T]
	val        T
}

// List is an ordered sequence of T backed by a chain of heap nodes.
// The zero value is not ready for use; call New.
type List[T any] struct {
	head, tail *node[T]
	size       int
	vt         *iterator.VTable[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.vt = &iterator.VTable[T]{
		Category: iterator.Bidirectional,
		TypeName: "list.Iterator",
		Advance:  iterAdvance[T],
		Get:      iterGet[T],
		Equal:    iterEqual[T],
		Clone:    iterClone[T],
		Retreat:  iterRetreat[T],
	}
	iterator.Validate(l.vt)
	return l
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns a reference to the first element, or nil on empty.
func (l *List[T]) Front() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.val
}

// Back returns a reference to the last element, or nil on empty.
func (l *List[T]) Back() *T {
	if l.tail == nil {
		return nil
	}
	return &l.tail.val
}

// link attaches n between prev and next, either of which may be nil at
// the corresponding boundary of the chain.
func (l *List[T]) link(n, prev, next *node[T]) {
	n.prev = prev
	n.next = next

	if prev != nil {
		prev.next = n
	} else {
		l.head = n
	}

	if next != nil {
		next.prev = n
	} else {
		l.tail = n
	}

	l.size++
}

// unlink detaches n from the chain and clears it to drop references.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		if l.head != n {
			panic("list: node has no previous node but is not the head")
		}
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		if l.tail != n {
			panic("list: node has no next node but is not the tail")
		}
		l.tail = n.prev
	}

	var zero T
	n.prev, n.next, n.val = nil, nil, zero
	l.size--
}

// PushBack appends a copy of elem. O(1). The error return is always
// nil today and exists for the contract shape of fallible mutators.
func (l *List[T]) PushBack(elem T) error {
	l.link(&node[T]{val: elem}, l.tail, nil)
	return nil
}

// PushFront prepends a copy of elem. O(1).
func (l *List[T]) PushFront(elem T) error {
	l.link(&node[T]{val: elem}, nil, l.head)
	return nil
}

// PopBack removes the last element. O(1), no-op on empty. Only
// iterators to the removed node are invalidated.
func (l *List[T]) PopBack() {
	if l.tail != nil {
		l.unlink(l.tail)
	}
}

// PopFront removes the first element. O(1), no-op on empty.
func (l *List[T]) PopFront() {
	if l.head != nil {
		l.unlink(l.head)
	}
}

// Clear removes every element. O(n): nodes are detached one by one so
// that abandoned iterators cannot keep the whole chain reachable.
func (l *List[T]) Clear() {
	for l.head != nil {
		l.unlink(l.head)
	}
}

// Destroy tears the list down. If destroyer is non-nil it is invoked
// once per live element, front to back, with a reference to the
// element's stored value; it may release resources the element refers
// to but must not touch the list.
func (l *List[T]) Destroy(destroyer func(*T)) {
	if destroyer != nil {
		for n := l.head; n != nil; n = n.next {
			destroyer(&n.val)
		}
	}
	l.Clear()
}

// nodeAt resolves a caller-supplied iterator to one of this list's
// nodes. ok is false when the iterator was not issued by this list;
// a nil node with ok true is the past-the-end position.
func (l *List[T]) nodeAt(pos iterator.Iterator[T]) (n *node[T], ok bool) {
	if pos.VTable() != l.vt {
		// Either a different iterator kind entirely, or a list
		// iterator belonging to some other list.
		return nil, false
	}
	s := pos.State()
	if s.Owner != any(l) {
		return nil, false
	}
	if s.Ref == nil {
		return nil, true
	}
	return s.Ref.(*node[T]), true
}

// InsertBefore inserts a copy of elem before the position designated by
// pos. O(1). If pos is the past-the-end iterator this is PushBack; if
// pos is Begin this is PushFront. No existing iterator is invalidated.
// If pos was not issued by this list, InsertBefore returns
// errs.InvalidArg and the list is unchanged.
func (l *List[T]) InsertBefore(pos iterator.Iterator[T], elem T) error {
	before, ok := l.nodeAt(pos)
	if !ok {
		return errs.InvalidArg
	}

	if before == nil {
		return l.PushBack(elem)
	}
	l.link(&node[T]{val: elem}, before.prev, before)
	return nil
}

// EraseAt removes the element designated by pos. O(1). It returns an
// iterator to the successor position, which equals End when the tail
// was removed. pos, and any other iterator to the same node, is
// invalidated; every other iterator remains valid, including End.
//
// If pos was not issued by this list, or designates the past-the-end
// position, or the list is empty, nothing is removed and the sentinel
// invalid iterator is returned; check Valid on the result before using
// it.
func (l *List[T]) EraseAt(pos iterator.Iterator[T]) iterator.Iterator[T] {
	if l.size == 0 {
		return iterator.Iterator[T]{}
	}

	n, ok := l.nodeAt(pos)
	if !ok || n == nil {
		return iterator.Iterator[T]{}
	}

	next := n.next
	l.unlink(n)

	if next == nil {
		return l.End()
	}
	return iterator.New(l.vt, iterator.State{Ref: next, Owner: l})
}

// Begin returns a bidirectional iterator to the first element. On an
// empty list it equals End.
func (l *List[T]) Begin() iterator.Iterator[T] {
	var ref any
	if l.head != nil {
		ref = l.head
	}
	return iterator.New(l.vt, iterator.State{Ref: ref, Owner: l})
}

// End returns the past-the-end iterator. It is never dereferenceable,
// but it can be retreated: Prev on End yields the tail on a non-empty
// list, and End again on an empty one.
func (l *List[T]) End() iterator.Iterator[T] {
	return iterator.New(l.vt, iterator.State{Owner: l})
}
