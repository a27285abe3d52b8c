package async

import "errors"

var (
	// ErrTimeout is returned when AwaitWithTimeout exceeds its duration.
	ErrTimeout = errors.New("await timed out")

	// ErrNoFutures is returned when WaitAny is called with no futures.
	ErrNoFutures = errors.New("no futures provided")
)
