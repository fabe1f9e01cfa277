package services

import (
	"sync"

	"github.com/barkhq/barksound/internal/logging"
)

// subscriptionBuffer is the per-subscriber channel capacity
const subscriptionBuffer = 64

// Broadcaster fans out values from one publisher to N subscriptions.
// Publish never blocks: a full subscriber either loses its oldest pending
// value (conflating broadcasters, where only the newest value matters) or the
// new value (event broadcasters, logged).
type Broadcaster[T any] struct {
	mu        sync.Mutex
	closed    bool
	conflate  bool
	hasLatest bool
	latest    T
	listeners map[*Subscription[T]]struct{}
	name      string
	replay    bool
}

// Subscription receives values published after it was created, preceded by
// the latest value when the broadcaster replays.
type Subscription[T any] struct {
	C <-chan T

	b    *Broadcaster[T]
	c    chan T
	once sync.Once
}

// NewBroadcaster creates an event broadcaster without replay
func NewBroadcaster[T any](name string) *Broadcaster[T] {
	return &Broadcaster[T]{
		listeners: make(map[*Subscription[T]]struct{}),
		name:      name,
	}
}

// NewReplayBroadcaster creates a broadcaster that keeps the last published
// value and hands it to every new subscriber. Slow subscribers skip straight
// to the newest value.
func NewReplayBroadcaster[T any](name string) *Broadcaster[T] {
	b := NewBroadcaster[T](name)
	b.replay = true
	b.conflate = true
	return b
}

// Subscribe registers a new subscription
func (b *Broadcaster[T]) Subscribe() *Subscription[T] {
	c := make(chan T, subscriptionBuffer)
	s := &Subscription[T]{C: c, b: b, c: c}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.replay && b.hasLatest {
		c <- b.latest
	}
	if b.closed {
		s.once.Do(func() { close(c) })
		return s
	}
	b.listeners[s] = struct{}{}
	return s
}

// Publish delivers v to every subscription
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	if b.replay {
		b.latest = v
		b.hasLatest = true
	}

	for s := range b.listeners {
		select {
		case s.c <- v:
			continue
		default:
		}

		if !b.conflate {
			logging.Logger.Warn("Subscriber too slow, dropping value", "stream", b.name)
			continue
		}
		// Drop the oldest pending value to make room for the newest
		select {
		case <-s.c:
		default:
		}
		select {
		case s.c <- v:
		default:
		}
	}
}

// Latest returns the replayed value, false when nothing was published yet
func (b *Broadcaster[T]) Latest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest, b.hasLatest
}

// SubscriberCount returns the number of active subscriptions
func (b *Broadcaster[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Close ends every subscription; later publishes are ignored
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for s := range b.listeners {
		s.once.Do(func() { close(s.c) })
	}
	b.listeners = make(map[*Subscription[T]]struct{})
}

// Close unsubscribes and closes C
func (s *Subscription[T]) Close() {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	delete(s.b.listeners, s)
	s.once.Do(func() { close(s.c) })
}
