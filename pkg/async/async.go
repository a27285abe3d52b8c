package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	value U
	err   error
	done  chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for completion up to the given duration.
// If the timeout elapses first, it returns ErrTimeout; the computation
// keeps running and a later Await still yields its result.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes fn in a new goroutine and returns a future for its result.
// If ctx is already cancelled, fn is not invoked and the future completes
// with the context's error.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents starting work with a pre-cancelled context.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll awaits every future and returns their results in order. The first
// error encountered is returned alongside the partially filled results.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, future := range futures {
		value, err := future.Await()
		if err != nil {
			return results, err
		}
		results[i] = value
	}
	return results, nil
}

// WaitAny returns the index and result of the first future to complete.
// One goroutine per future is spawned for coordination; all of them exit
// once their future finishes.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type completion struct {
		index int
		value U
		err   error
	}

	done := make(chan completion, 1)
	for i, future := range futures {
		go func(index int, f *Future[U]) {
			value, err := f.Await()
			select {
			case done <- completion{index: index, value: value, err: err}:
			default:
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.value, res.err
}
