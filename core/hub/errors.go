package hub

import "errors"

var (
	// ErrInletClosed is returned when Push, Complete, or Fail is called after
	// the hub reached a terminal state. Pushing after completion is a producer
	// contract violation and is reported, never silently ignored.
	ErrInletClosed = errors.New("inlet is closed")

	// ErrHubFailed is the terminal error used when the producer calls Fail
	// with a nil error, and the wrapping error for fail-fast overflow.
	ErrHubFailed = errors.New("hub failed")

	// ErrSubscriberOverflow indicates a subscription buffer was full when an
	// element arrived. Under FailFast it terminates the whole hub; under the
	// drop policies it is counted and surfaced via Message.Dropped instead.
	ErrSubscriberOverflow = errors.New("subscriber cannot keep up")
)
