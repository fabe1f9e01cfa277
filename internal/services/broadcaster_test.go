package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, c <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-c:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for value")
	}
	var zero T
	return zero
}

func assertNothing[T any](t *testing.T, c <-chan T) {
	t.Helper()
	select {
	case v, ok := <-c:
		if ok {
			t.Fatalf("unexpected value: %v", v)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster[int]("test")
	s1 := b.Subscribe()
	s2 := b.Subscribe()
	assert.Equal(t, 2, b.SubscriberCount())

	b.Publish(7)

	assert.Equal(t, 7, receive(t, s1.C))
	assert.Equal(t, 7, receive(t, s2.C))
}

func TestBroadcaster_NoReplayForLateSubscribers(t *testing.T) {
	b := NewBroadcaster[int]("test")
	b.Publish(1)

	s := b.Subscribe()

	assertNothing(t, s.C)
	_, ok := b.Latest()
	assert.False(t, ok)
}

func TestReplayBroadcaster_LateSubscriberGetsLatest(t *testing.T) {
	b := NewReplayBroadcaster[string]("test")
	b.Publish("first")
	b.Publish("second")

	s := b.Subscribe()

	assert.Equal(t, "second", receive(t, s.C))
	assertNothing(t, s.C)

	latest, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", latest)
}

func TestReplayBroadcaster_ConflatesSlowSubscriber(t *testing.T) {
	b := NewReplayBroadcaster[int]("test")
	s := b.Subscribe()

	for i := 0; i < subscriptionBuffer+10; i++ {
		b.Publish(i)
	}

	var last int
	for i := 0; i < subscriptionBuffer; i++ {
		last = receive(t, s.C)
	}
	assert.Equal(t, subscriptionBuffer+9, last)
}

func TestBroadcaster_EventDropsWhenFull(t *testing.T) {
	b := NewBroadcaster[int]("test")
	s := b.Subscribe()

	for i := 0; i < subscriptionBuffer+10; i++ {
		b.Publish(i)
	}

	assert.Equal(t, 0, receive(t, s.C))
	assert.Len(t, s.C, subscriptionBuffer-1)
}

func TestSubscription_CloseStopsDelivery(t *testing.T) {
	b := NewBroadcaster[int]("test")
	s := b.Subscribe()

	s.Close()
	s.Close() // idempotent
	b.Publish(1)

	_, ok := <-s.C
	assert.False(t, ok)
	assert.Zero(t, b.SubscriberCount())
}

func TestBroadcaster_CloseEndsSubscriptions(t *testing.T) {
	b := NewReplayBroadcaster[int]("test")
	s := b.Subscribe()
	b.Publish(3)

	b.Close()
	b.Publish(4)

	assert.Equal(t, 3, receive(t, s.C))
	_, ok := <-s.C
	assert.False(t, ok)

	// Subscribing after close still replays, then ends
	late := b.Subscribe()
	assert.Equal(t, 3, receive(t, late.C))
	_, ok = <-late.C
	assert.False(t, ok)
	s.Close()
}

func TestBroadcaster_ConcurrentPublishAndSubscribe(t *testing.T) {
	b := NewReplayBroadcaster[int]("test")
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			b.Publish(v)
		}(i)
		go func() {
			defer wg.Done()
			s := b.Subscribe()
			s.Close()
		}()
	}
	wg.Wait()

	_, ok := b.Latest()
	assert.True(t, ok)
}
