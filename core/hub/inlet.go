package hub

import "context"

// Inlet is the single production handle bound to one hub. Push, Complete,
// and Fail are safe to call from any goroutine, including foreign callback
// threads owned by an external client library. Ownership of the inlet
// belongs to whichever collaborator drives production; consumers never
// touch it.
type Inlet[T any] struct {
	hub *Hub[T]
}

// Push enqueues one element for fanout to every attached subscription.
// Pushing after Complete or Fail returns ErrInletClosed. Under the
// BlockProducer policy, Push suspends on a full subscription until it has
// room, the subscription detaches, or ctx is cancelled.
func (in *Inlet[T]) Push(ctx context.Context, element T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return in.hub.publish(ctx, element)
}

// Complete signals that no more elements will arrive. Every attached
// subscription receives a clean end-of-stream exactly once.
func (in *Inlet[T]) Complete() error {
	return in.hub.complete()
}

// Fail signals abnormal termination. Every attached subscription observes
// err as its terminal signal. A nil err is replaced with ErrHubFailed.
func (in *Inlet[T]) Fail(err error) error {
	return in.hub.fail(err)
}
