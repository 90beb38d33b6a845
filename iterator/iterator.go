// Package iterator defines the toolkit's polymorphic iteration protocol.
//
// Every container in the toolkit hands out the same concrete iterator
// type, Iterator[T]. An iterator is a small value object: a pointer to a
// dispatch table describing how to move, dereference, compare and clone
// it, plus an inline State record holding the container-specific cursor.
// Copying an iterator copies the whole thing; there is no per-iterator
// allocation and no independent lifetime.
//
// Generic algorithms (see package seq) operate on Iterator[T] alone and
// never touch containers directly. This is what lets a single FindIf
// body walk both a vector (which advances by index) and a linked list
// (which advances by following a next pointer).
package iterator

// Category declares the capability level of an iterator kind.
// Algorithms that need a stronger category than the iterator provides
// must not be handed that iterator; Prev enforces this with a panic.
type Category int

const (
	// Forward iterators move forward one position at a time.
	Forward Category = iota
	// Bidirectional iterators also move backward.
	Bidirectional
	// RandomAccess iterators could reach any offset in O(1).
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "invalid"
	}
}

// State is the inline cursor record of an Iterator. Its interpretation
// belongs to the container that issued the iterator: a vector keeps its
// receiver in Owner and the element index in Index, a list keeps the
// current node in Ref (nil meaning past-the-end) and its receiver in
// Owner. The interface fields only ever hold pointers, so copying or
// filling a State never allocates.
type State struct {
	// Ref is the current position, typically a node pointer.
	// Containers that locate elements by index leave it nil.
	Ref any

	// Owner is the container that issued the iterator. It is needed
	// both to retreat from the past-the-end position and to check
	// that a caller-supplied iterator belongs to the container it is
	// handed back to.
	Owner any

	// Index is the element offset for random-access cursors.
	Index int
}

// VTable is the dispatch table of one concrete iterator kind. A
// container builds exactly one table when it is constructed and stamps
// it on every iterator it manufactures; the table is read-only from
// then on. Two iterators can only ever compare equal if they carry the
// same table.
type VTable[T any] struct {
	// Category is the capability declaration for this iterator kind.
	Category Category

	// TypeName identifies the iterator kind, e.g. "list.Iterator".
	// It is the nominal discriminator used in error messages and
	// cross-container safety checks.
	TypeName string

	// Advance moves it one position forward.
	// Advancing a past-the-end iterator is undefined.
	Advance func(it *Iterator[T])

	// Get returns a reference to the element it designates.
	// It must panic on a past-the-end iterator.
	Get func(it *Iterator[T]) *T

	// Equal reports whether two iterators of this kind designate the
	// same position. It may assume both carry this table.
	Equal func(a, b *Iterator[T]) bool

	// Clone copies src into dst, leaving dst an independent iterator
	// at the same position.
	Clone func(dst, src *Iterator[T])

	// Retreat moves it one position backward. It is mandatory when
	// Category is Bidirectional or RandomAccess and must be nil for
	// Forward iterators.
	Retreat func(it *Iterator[T])
}

// Validate panics if vt is incomplete or inconsistent with its declared
// category. Containers call it once, when building their table.
func Validate[T any](vt *VTable[T]) {
	switch {
	case vt == nil:
		panic("iterator: nil vtable")
	case vt.TypeName == "":
		panic("iterator: vtable has no type name")
	case vt.Advance == nil:
		panic("iterator: vtable has no advance: " + vt.TypeName)
	case vt.Get == nil:
		panic("iterator: vtable has no get: " + vt.TypeName)
	case vt.Equal == nil:
		panic("iterator: vtable has no equal: " + vt.TypeName)
	case vt.Clone == nil:
		panic("iterator: vtable has no clone: " + vt.TypeName)
	case vt.Category >= Bidirectional && vt.Retreat == nil:
		panic("iterator: " + vt.Category.String() +
			" vtable has no retreat: " + vt.TypeName)
	case vt.Category < Bidirectional && vt.Retreat != nil:
		panic("iterator: forward vtable has retreat: " + vt.TypeName)
	}
}

// Iterator designates a position within some container. The zero value
// is the sentinel invalid iterator: it carries no dispatch table and is
// returned by iterator-producing mutators to signal an error. Check
// Valid before using an iterator obtained from such an operation.
type Iterator[T any] struct {
	vt    *VTable[T]
	state State
}

// New assembles an iterator from a dispatch table and an initial state.
// It is intended for container implementations, not for callers.
func New[T any](vt *VTable[T], state State) Iterator[T] {
	Validate(vt)
	return Iterator[T]{vt: vt, state: state}
}

// VTable returns the iterator's dispatch table, or nil for the sentinel.
func (it *Iterator[T]) VTable() *VTable[T] {
	return it.vt
}

// State returns the iterator's inline cursor record for the issuing
// container to read or update.
func (it *Iterator[T]) State() *State {
	return &it.state
}

// Valid reports whether the iterator carries a dispatch table. The
// sentinel iterator returned by a failed mutator does not.
func (it *Iterator[T]) Valid() bool {
	return it.vt != nil
}

// Next advances the iterator one position. Advancing a past-the-end
// iterator is undefined.
func (it *Iterator[T]) Next() {
	it.vt.Advance(it)
}

// Prev retreats the iterator one position. It panics if the iterator's
// category is below Bidirectional. Retreating from the first element
// is undefined.
func (it *Iterator[T]) Prev() {
	if it.vt.Category < Bidirectional {
		panic("iterator: prev on " + it.vt.Category.String() +
			" iterator: " + it.vt.TypeName)
	}
	if it.vt.Retreat == nil {
		panic("iterator: no retreat: " + it.vt.TypeName)
	}
	it.vt.Retreat(it)
}

// Get returns a reference to the element the iterator designates.
// It panics on a past-the-end iterator.
func (it *Iterator[T]) Get() *T {
	return it.vt.Get(it)
}

// Clone returns an independent iterator at the same position.
func (it *Iterator[T]) Clone() Iterator[T] {
	var dst Iterator[T]
	it.vt.Clone(&dst, it)
	return dst
}

// Equal reports whether a and b designate the same position. Iterators
// carrying different dispatch tables (different kinds, or different
// containers) are never equal.
func Equal[T any](a, b Iterator[T]) bool {
	if a.vt != b.vt || a.vt == nil {
		return false
	}
	return a.vt.Equal(&a, &b)
}
