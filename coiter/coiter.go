// Package coiter provides coroutine-style iteration over an iterator
// range: a goroutine walks the range and sends element values on a
// channel, so callers can consume a container with for-range.
//
// The iterating goroutine is the only one touching the iterators, so
// the containers' single-owner rule is respected; the container must
// not be structurally mutated while co-iteration is in flight.
package coiter

import (
	"go.lepak.sg/toolkit/iterator"
)

// CoIterator is returned from CoIterate and abstracts communication
// with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns the channel on which element values are sent, in
// forward order. It is closed when the range is exhausted or Stop is
// called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop abandons the iteration and lets the iterating goroutine exit.
// It must not be called more than once. If the Items channel is
// already closed, calling Stop is unnecessary.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts iterating [begin, end) in a new goroutine. Element
// values are copied onto the Items channel, so later container
// mutations do not affect values already received. The usage is:
//
//	co := coiter.CoIterate(l.Begin(), l.End())
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// The goroutine exits when either the range is exhausted or Stop is
// called; following the usage above it will not live beyond the end of
// the for-range loop.
func CoIterate[T any](begin, end iterator.Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	go func(out chan<- T, stop <-chan struct{}, it, end iterator.Iterator[T]) {
		defer close(out)
		for !iterator.Equal(it, end) {
			// Checking stop first bounds how far iteration can
			// run past Stop: at most one element already offered
			// for sending is still delivered.
			select {
			case <-stop:
				return
			default:
			}
			select {
			case out <- *it.Get():
			case <-stop:
				return
			}
			it.Next()
		}
	}(out, stop, begin, end)

	return co
}
