package redis

import "errors"

var (
	// ErrNilClient is returned by the constructors when the client is nil.
	ErrNilClient = errors.New("redis client is nil")

	// ErrNilInlet is returned by NewSource when the inlet is nil.
	ErrNilInlet = errors.New("hub inlet is nil")

	// ErrNilSubscription is returned by NewRelay when the subscription is nil.
	ErrNilSubscription = errors.New("hub subscription is nil")

	// ErrEmptyChannel is returned when no Pub/Sub channel name is given.
	ErrEmptyChannel = errors.New("empty redis channel name")

	// ErrSubscriptionLost is the terminal error a Source reports when the
	// Pub/Sub connection drops and cannot deliver further messages.
	ErrSubscriptionLost = errors.New("redis subscription lost")
)
