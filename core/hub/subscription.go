package hub

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Message wraps one delivered element. Dropped reports how many elements
// were discarded for this subscriber since the previous delivery, so loss
// under a drop policy is always observable, never silent.
type Message[T any] struct {
	Data    T
	Dropped uint64
}

// Subscription is a live delivery channel from a hub to one consumer.
// The channel returned by Receive is closed on end-of-stream; Err
// distinguishes clean completion (nil) from hub failure afterward.
type Subscription[T any] struct {
	id      uuid.UUID
	hub     *Hub[T]
	ch      chan Message[T]
	done    chan struct{}
	policy  OverflowPolicy
	discard bool

	// err is written at most once, under errMu. The separate lock is needed
	// because done can close (detach) before the hub termination that sets
	// the error, so channel close alone is not a safe publication point.
	errMu sync.Mutex
	err   error

	// pending counts drops since the last delivery; it is only touched by
	// deliver, which runs under the hub mutex.
	pending uint64
	dropped atomic.Uint64

	doneOnce  sync.Once
	closeOnce sync.Once
}

// ID returns the subscription's identity within the registry.
func (s *Subscription[T]) ID() uuid.UUID {
	return s.id
}

// Receive returns the delivery channel. It is closed on end-of-stream,
// hub failure, or detach; check Err afterward to tell them apart.
func (s *Subscription[T]) Receive() <-chan Message[T] {
	return s.ch
}

// Err returns the terminal error once the subscription has ended.
// It returns nil while the subscription is live and nil after a clean
// end-of-stream or a plain detach.
func (s *Subscription[T]) Err() error {
	select {
	case <-s.done:
		s.errMu.Lock()
		defer s.errMu.Unlock()
		return s.err
	default:
		return nil
	}
}

// Dropped returns the total number of elements discarded for this
// subscriber over its lifetime.
func (s *Subscription[T]) Dropped() uint64 {
	return s.dropped.Load()
}

// Close detaches the subscription from the hub. It is idempotent and takes
// effect immediately: no further deliveries occur, siblings and the
// producer are unaffected.
func (s *Subscription[T]) Close() {
	s.hub.detach(s)
}

// deliver attempts to hand one element to the consumer. It runs under the
// hub mutex. A non-nil ErrSubscriberOverflow return means the buffer was
// full; the hub decides whether that fails the hub (FailFast) or stays
// scoped to this subscription.
func (s *Subscription[T]) deliver(ctx context.Context, element T) error {
	if s.discard {
		// Keep-alive anchor: accept and forget.
		return nil
	}

	switch s.policy {
	case DropOldest:
		for {
			select {
			case s.ch <- Message[T]{Data: element, Dropped: s.pending}:
				s.pending = 0
				s.hub.delivered.Add(1)
				return nil
			default:
			}
			select {
			case evicted := <-s.ch:
				// The evicted message may itself have been announcing drops.
				s.pending += evicted.Dropped + 1
				s.dropped.Add(1)
			default:
				// Consumer drained concurrently; retry the send.
			}
		}

	case BlockProducer:
		select {
		case s.ch <- Message[T]{Data: element, Dropped: s.pending}:
			s.pending = 0
			s.hub.delivered.Add(1)
			return nil
		case <-s.done:
			// Detached mid-wait; the element is simply not for us anymore.
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}

	default: // DropNewest and FailFast
		select {
		case s.ch <- Message[T]{Data: element, Dropped: s.pending}:
			s.pending = 0
			s.hub.delivered.Add(1)
			return nil
		default:
			if s.policy == DropNewest {
				s.pending++
				s.dropped.Add(1)
			}
			return ErrSubscriberOverflow
		}
	}
}

// cancel closes the done channel, unblocking any producer suspended on
// this subscription. Safe to call multiple times.
func (s *Subscription[T]) cancel() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// terminate ends delivery with the given terminal error (nil for a clean
// end-of-stream). The error is published before the channel closes so
// consumers that observe the close always see it. Safe to call multiple
// times; only the first call wins.
func (s *Subscription[T]) terminate(err error) {
	s.closeOnce.Do(func() {
		s.errMu.Lock()
		s.err = err
		s.errMu.Unlock()
		s.cancel()
		close(s.ch)
	})
}
