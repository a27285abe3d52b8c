package hub

import "context"

// Derive builds a nested hub whose elements are produced by applying
// transform to every element of src. The transformation runs exactly once,
// on the single subscription Derive holds on src, no matter how many
// consumers attach to the derived hub. This is the general answer to
// "shared computation, many independent readers": never attach the
// transformation per consumer.
//
// transform returns the derived element and whether to emit it; returning
// false skips the element. Completion and failure of src propagate to the
// derived hub. Closing the derived hub releases the upstream subscription.
//
// transform is called from a single goroutine, so it may keep state
// (running aggregates, windows) without synchronization.
func Derive[T, U any](src *Hub[T], transform func(T) (U, bool), opts ...Option) *Hub[U] {
	dst := New[U](opts...)
	sub := src.Subscribe(context.Background())
	in := dst.Inlet()

	go func() {
		for msg := range sub.Receive() {
			out, emit := transform(msg.Data)
			if !emit {
				continue
			}
			if err := in.Push(context.Background(), out); err != nil {
				// Derived hub torn down by its owner; stop consuming upstream.
				sub.Close()
				return
			}
		}
		if err := sub.Err(); err != nil {
			_ = in.Fail(err)
		} else {
			_ = in.Complete()
		}
	}()

	return dst
}

// Map derives a hub that emits fn(element) for every element of src.
func Map[T, U any](src *Hub[T], fn func(T) U, opts ...Option) *Hub[U] {
	return Derive(src, func(v T) (U, bool) {
		return fn(v), true
	}, opts...)
}

// Filter derives a hub that emits only the elements of src for which keep
// returns true.
func Filter[T any](src *Hub[T], keep func(T) bool, opts ...Option) *Hub[T] {
	return Derive(src, func(v T) (T, bool) {
		return v, keep(v)
	}, opts...)
}

// Window derives a hub that emits reduce over a sliding window of the last
// size elements. Nothing is emitted until the window fills; afterward one
// aggregate is emitted per incoming element. The window slice passed to
// reduce is reused between calls and must not be retained.
func Window[T, U any](src *Hub[T], size int, reduce func([]T) U, opts ...Option) *Hub[U] {
	if size < 1 {
		size = 1
	}
	win := make([]T, 0, size)
	return Derive(src, func(v T) (U, bool) {
		if len(win) == size {
			copy(win, win[1:])
			win[size-1] = v
		} else {
			win = append(win, v)
		}
		if len(win) < size {
			var zero U
			return zero, false
		}
		return reduce(win), true
	}, opts...)
}
