// Package hub converts a single push-driven producer into a shared,
// multicast source that many consumers can attach to and detach from
// independently, without re-triggering production and without the stream
// dying when the last consumer disconnects.
//
// # Architecture
//
// A Hub owns three cooperating pieces:
//   - an Inlet, the single thread-safe production handle (Push/Complete/Fail)
//   - a subscription registry with dynamic attach/detach
//   - a permanent keep-alive anchor subscription that discards everything it
//     receives, attached at construction so the hub outlives a transiently
//     empty registry
//
// Elements flow Producer -> Inlet -> Hub -> N Subscriptions. Each attached
// subscription receives every element pushed after it attached, exactly
// once, in push order. There is no replay of earlier elements.
//
// # Usage
//
//	h := hub.New[int](
//	    hub.WithBufferSize(128),
//	    hub.WithOverflowPolicy(hub.DropOldest),
//	)
//	defer h.Close()
//
//	// The producer side, often a foreign callback-driven client.
//	in := h.Inlet()
//	go func() {
//	    for v := range source {
//	        if err := in.Push(ctx, v); err != nil {
//	            return
//	        }
//	    }
//	    in.Complete()
//	}()
//
//	// Any number of consumers, attached and detached at will.
//	sub := h.Subscribe(ctx)
//	defer sub.Close()
//	for msg := range sub.Receive() {
//	    handle(msg.Data)
//	}
//	if err := sub.Err(); err != nil {
//	    // producer signalled failure
//	}
//
// # Overflow Policies
//
// When a consumer cannot keep up with production, the policy chosen at
// construction decides the outcome: DropNewest and DropOldest discard
// elements for the slow subscription only and announce the loss through
// Message.Dropped; BlockProducer suspends the push until there is room;
// FailFast terminates the whole hub. Loss is never silent.
//
// # Derived Views
//
// Transformations that all consumers should observe identically (windowed
// aggregation, filtering) are expressed as nested hubs via Derive, Map,
// Filter, and Window. The transformation holds the sole subscription on the
// source hub and feeds a second hub the real consumers attach to, so the
// work happens once regardless of consumer count.
//
//	raw := hub.New[Sample]()
//	avg := hub.Window(raw, 10, mean) // computed once, shared by all
//
// # Lifecycle
//
// A hub moves Created -> Running -> {Completed | Failed}. Complete and Fail
// are terminal: attaching afterward returns a subscription that is already
// closed with the terminal signal. Pushing afterward returns ErrInletClosed.
// Only Complete, Fail, or the owner's Close end a hub; the subscriber count
// reaching zero never does, thanks to the keep-alive anchor.
package hub
