// Package parallel provides bounded-concurrency variants of the
// toolkit's sequence algorithms. The calling goroutine is the only one
// that advances iterators; workers only ever see element references,
// which is sound because predicates must not mutate the container under
// iteration.
package parallel

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"go.lepak.sg/toolkit/iterator"
	"go.lepak.sg/toolkit/seq"
)

// FindIf returns an iterator to the element at the lowest forward
// distance in [begin, end) that satisfies pred, or end if there is
// none — the same result as seq.FindIf. The predicate is evaluated
// with at most inflight concurrent workers.
//
// Context cancellation: if ctx is canceled, FindIf immediately stops
// dispatching new elements, waits for running workers to exit, then
// returns the sentinel invalid iterator and the context error.
func FindIf[T any](
	ctx context.Context,
	begin, end iterator.Iterator[T],
	pred seq.Predicate[T],
	inflight int,
) (iterator.Iterator[T], error) {
	if inflight < 1 {
		inflight = 1
	}

	sema := semaphore.NewWeighted(int64(inflight))

	// Lowest matching position seen so far.
	const none = int64(math.MaxInt64)
	found := none

	var err error
	it := begin.Clone()
	for i := int64(0); !iterator.Equal(it, end); i++ {
		if atomic.LoadInt64(&found) < i {
			// Nothing at or beyond i can beat the match we
			// already have.
			break
		}

		err = sema.Acquire(ctx, 1)
		if err != nil {
			// ctx was canceled
			break
		}

		go func(i int64, elem *T) {
			defer sema.Release(1)
			if !pred(elem) {
				return
			}
			for {
				curr := atomic.LoadInt64(&found)
				if curr <= i ||
					atomic.CompareAndSwapInt64(&found, curr, i) {
					return
				}
			}
		}(i, it.Get())

		it.Next()
	}

	if err == nil {
		// possible that the context is canceled after we started the
		// last worker but before we acquired the entire semaphore
		err = sema.Acquire(ctx, int64(inflight))
		if err != nil {
			for sema.Acquire(ctx, int64(inflight)) != nil {
			}
		}
	} else {
		// context is already canceled, this will eventually acquire
		for sema.Acquire(ctx, int64(inflight)) != nil {
		}
	}

	if err != nil {
		return iterator.Iterator[T]{}, err
	}

	if at := atomic.LoadInt64(&found); at != none {
		return seq.Advance(begin, int(at)), nil
	}
	return end, nil
}
