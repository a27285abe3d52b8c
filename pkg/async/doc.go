// Package async provides a small Future implementation for running
// computations in the background and collecting their results later.
//
// # Usage
//
//	future := async.Async(ctx, destination, func(ctx context.Context, dest string) (*Report, error) {
//	    return buildReport(ctx, dest)
//	})
//
//	// Do other work...
//
//	report, err := future.Await()
//
// AwaitWithTimeout bounds the wait without cancelling the computation:
//
//	report, err := future.AwaitWithTimeout(time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//	    // still running; Await later to collect the result
//	}
//
// WaitAll collects the results of several futures in order; WaitAny returns
// as soon as one completes. All operations are safe for concurrent use:
// completion is published through a channel close, so any number of waiters
// may Await the same future.
package async
