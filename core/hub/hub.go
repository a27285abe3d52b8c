package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// State describes the lifecycle of a hub:
// Created -> Running -> {Completed | Failed}.
// Attach and detach do not change the state; the terminal states are final.
type State int

const (
	StateCreated State = iota
	StateRunning
	StateCompleted
	StateFailed
)

// String returns a human-readable state name for logging.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stats is a point-in-time snapshot of hub counters, useful for monitoring
// and debugging. Subscribers excludes the internal keep-alive anchor.
type Stats struct {
	State       State
	Subscribers int
	Published   uint64
	Delivered   uint64
	Dropped     uint64
}

// Hub converts a single push-driven producer into a multicast source that
// many consumers can attach to and detach from independently. Elements are
// delivered to each subscription exactly once, in push order. The hub is
// kept alive by an internal anchor subscription attached at construction,
// so it survives the subscriber count transiently reaching zero; only an
// explicit Close, Complete, or Fail ends it.
//
// All methods are safe for concurrent use.
type Hub[T any] struct {
	cfg   config
	inlet *Inlet[T]

	mu    sync.Mutex
	subs  map[uuid.UUID]*Subscription[T]
	state State
	err   error

	published atomic.Uint64
	delivered atomic.Uint64
}

// New creates a hub and attaches the keep-alive anchor before returning,
// so the hub never sees an empty registry until it is deliberately torn down.
func New[T any](opts ...Option) *Hub[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Hub[T]{
		cfg:   cfg,
		subs:  make(map[uuid.UUID]*Subscription[T]),
		state: StateCreated,
	}
	h.inlet = &Inlet[T]{hub: h}

	anchor := h.newSubscription(true)
	h.subs[anchor.id] = anchor

	return h
}

// Inlet returns the hub's single production handle. Every call returns the
// same handle; exactly one production side exists per hub.
func (h *Hub[T]) Inlet() *Inlet[T] {
	return h.inlet
}

// Subscribe attaches a new consumer. The subscription receives only elements
// pushed after the attach completes; there is no replay. If the hub already
// reached a terminal state, the returned subscription is already closed and
// carries the terminal signal, which is not an error for the caller.
//
// The subscription is detached automatically when ctx is cancelled, matching
// an abrupt consumer disconnect. Close detaches it explicitly.
func (h *Hub[T]) Subscribe(ctx context.Context) *Subscription[T] {
	h.mu.Lock()
	if h.state == StateCompleted || h.state == StateFailed {
		s := h.newSubscription(false)
		s.terminate(h.err)
		h.mu.Unlock()
		return s
	}

	s := h.newSubscription(false)
	h.subs[s.id] = s
	h.mu.Unlock()

	h.cfg.logger.DebugContext(ctx, "subscriber attached",
		slog.String("subscription_id", s.id.String()))

	if ctx != nil && ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				s.Close()
			case <-s.done:
			}
		}()
	}

	return s
}

// Close tears the hub down on behalf of its owner. Every subscription,
// including the keep-alive anchor, receives a clean end-of-stream.
// Close is idempotent.
func (h *Hub[T]) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == StateCompleted || h.state == StateFailed {
		return nil
	}

	h.terminateLocked(StateCompleted, nil)
	h.cfg.logger.Info("hub closed by owner")
	return nil
}

// State returns the current lifecycle state.
func (h *Hub[T]) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Err returns the terminal error after the hub failed, or nil.
func (h *Hub[T]) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Stats returns a snapshot of hub counters.
func (h *Hub[T]) Stats() Stats {
	h.mu.Lock()
	n := len(h.subs)
	state := h.state
	var dropped uint64
	for _, s := range h.subs {
		dropped += s.dropped.Load()
	}
	h.mu.Unlock()

	if n > 0 {
		n-- // the keep-alive anchor is not a real consumer
	}

	return Stats{
		State:       state,
		Subscribers: n,
		Published:   h.published.Load(),
		Delivered:   h.delivered.Load(),
		Dropped:     dropped,
	}
}

func (h *Hub[T]) newSubscription(discard bool) *Subscription[T] {
	return &Subscription[T]{
		id:      uuid.New(),
		hub:     h,
		ch:      make(chan Message[T], h.cfg.bufferSize),
		done:    make(chan struct{}),
		policy:  h.cfg.policy,
		discard: discard,
	}
}

// publish delivers one element to every attached subscription. Delivery is
// serialized under the hub mutex, which is what guarantees per-subscription
// ordering with no duplicates and no unannounced gaps.
func (h *Hub[T]) publish(ctx context.Context, element T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateCompleted, StateFailed:
		return ErrInletClosed
	case StateCreated:
		h.state = StateRunning
	}

	h.published.Add(1)

	for _, s := range h.subs {
		err := s.deliver(ctx, element)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrSubscriberOverflow) {
			if h.cfg.policy == FailFast {
				h.cfg.logger.ErrorContext(ctx, "subscriber overflow, failing hub",
					slog.String("subscription_id", s.id.String()))
				h.terminateLocked(StateFailed, fmt.Errorf("%w: %w", ErrHubFailed, ErrSubscriberOverflow))
				return ErrSubscriberOverflow
			}
			// Drop policies scope the overflow to the offending subscription.
			continue
		}
		// Producer context cancelled while blocked on a slow subscription.
		return err
	}

	return nil
}

func (h *Hub[T]) complete() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == StateCompleted || h.state == StateFailed {
		return ErrInletClosed
	}

	h.terminateLocked(StateCompleted, nil)
	h.cfg.logger.Info("hub completed",
		slog.Uint64("published", h.published.Load()))
	return nil
}

func (h *Hub[T]) fail(err error) error {
	if err == nil {
		err = ErrHubFailed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == StateCompleted || h.state == StateFailed {
		return ErrInletClosed
	}

	h.terminateLocked(StateFailed, err)
	h.cfg.logger.Error("hub failed", slog.Any("error", err))
	return nil
}

// detach removes one subscription without affecting its siblings.
// It is idempotent: detaching twice or detaching after hub termination
// is a no-op. If the registry becomes empty (the anchor itself removed),
// the hub tears itself down.
func (h *Hub[T]) detach(s *Subscription[T]) {
	// Unblock a producer that may be suspended on this subscription under
	// BlockProducer before taking the hub lock.
	s.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[s.id]; ok {
		delete(h.subs, s.id)
		s.terminate(nil)
		h.cfg.logger.Debug("subscriber detached",
			slog.String("subscription_id", s.id.String()))
		if len(h.subs) == 0 && (h.state == StateCreated || h.state == StateRunning) {
			h.terminateLocked(StateCompleted, nil)
		}
		return
	}

	// Already removed by hub termination, or never registered (late attach).
	s.terminate(h.err)
}

// terminateLocked moves the hub to a terminal state and releases every
// subscription. Callers must hold h.mu.
func (h *Hub[T]) terminateLocked(state State, err error) {
	h.state = state
	h.err = err
	for id, s := range h.subs {
		delete(h.subs, id)
		s.terminate(err)
	}
}
