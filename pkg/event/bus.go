package event

import (
	"sync"
)

// Topics published by the portfolio model.
const (
	TopicParameterChanged = "parameter.changed"
	TopicPresetApplied    = "preset.applied"
	TopicReset            = "parameters.reset"
	TopicLoaded           = "parameters.loaded"
)

// Event is one notification delivered to consumers.
type Event struct {
	Topic string
	Key   string // parameter id, preset name or file path
	Old   any
	New   any
}

// Consumer is a function type that processes events
type Consumer func(e Event)

// Subscription identifies a registered consumer
type Subscription struct {
	topic string
	id    int
}

type subscriber struct {
	id       int
	consumer Consumer
}

// Bus delivers events synchronously, in registration order, on the
// publisher's goroutine. A consumer that publishes the same topic and key
// while it is being notified has its inner event suppressed.
type Bus struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[string][]subscriber
	inFlight    map[string]bool
	suppressed  int
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscriber),
		inFlight:    make(map[string]bool),
	}
}

// Subscribe registers a consumer for a topic
func (b *Bus) Subscribe(topic string, consumer Consumer) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subscribers[topic] = append(b.subscribers[topic], subscriber{id: b.nextID, consumer: consumer})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a consumer; unknown subscriptions are ignored
func (b *Bus) Unsubscribe(s Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[s.topic]
	for i, sub := range subs {
		if sub.id == s.id {
			b.subscribers[s.topic] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish notifies every consumer of the event's topic and reports whether
// the event was delivered. Re-entrant publications of the same topic and key
// return false.
func (b *Bus) Publish(e Event) bool {
	guard := e.Topic + "\x00" + e.Key

	b.mu.Lock()
	if b.inFlight[guard] {
		b.suppressed++
		b.mu.Unlock()
		return false
	}
	b.inFlight[guard] = true
	subs := append([]subscriber(nil), b.subscribers[e.Topic]...)
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.inFlight, guard)
		b.mu.Unlock()
	}()

	for _, sub := range subs {
		sub.consumer(e)
	}
	return true
}

// Suppressed returns how many re-entrant events were dropped
func (b *Bus) Suppressed() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.suppressed
}
