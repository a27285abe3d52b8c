// Package redis bridges broadcast hubs with Redis Pub/Sub channels.
//
// A Source subscribes to a Redis channel and pushes every payload into a
// hub inlet, so one remote publisher fans out to any number of local
// consumers through the hub's delivery guarantees. A Relay does the
// reverse: it drains a hub subscription and republishes each element to a
// Redis channel for remote consumers.
//
//	h := hub.New[string]()
//	src, err := redis.NewSource(client, "ticks", h.Inlet())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go src.Run(ctx)
//
//	sub := h.Subscribe(ctx)
//	for msg := range sub.Receive() {
//	    handle(msg.Data)
//	}
//
// Both Run loops block until ctx is cancelled or the stream ends, and are
// meant to be driven by an errgroup alongside the rest of the application.
package redis
