package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var calls []string
	bus.Subscribe(TopicParameterChanged, func(e Event) { calls = append(calls, "first:"+e.Key) })
	bus.Subscribe(TopicParameterChanged, func(e Event) { calls = append(calls, "second:"+e.Key) })
	bus.Subscribe(TopicReset, func(e Event) { calls = append(calls, "reset") })

	require.True(t, bus.Publish(Event{Topic: TopicParameterChanged, Key: "fees", Old: 0.0, New: 0.001}))
	assert.Equal(t, []string{"first:fees", "second:fees"}, calls)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0
	sub := bus.Subscribe(TopicLoaded, func(Event) { count++ })
	bus.Publish(Event{Topic: TopicLoaded})
	bus.Unsubscribe(sub)
	bus.Unsubscribe(sub)
	bus.Publish(Event{Topic: TopicLoaded})

	assert.Equal(t, 1, count)
}

func TestBus_ReentrySuppressed(t *testing.T) {
	bus := NewBus()
	count := 0
	var inner bool
	bus.Subscribe(TopicParameterChanged, func(e Event) {
		count++
		inner = bus.Publish(Event{Topic: TopicParameterChanged, Key: e.Key})
	})

	assert.True(t, bus.Publish(Event{Topic: TopicParameterChanged, Key: "fees"}))
	assert.False(t, inner)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, bus.Suppressed())

	// a different key is not re-entry
	other := 0
	bus2 := NewBus()
	bus2.Subscribe(TopicParameterChanged, func(e Event) {
		other++
		if e.Key == "a" {
			bus2.Publish(Event{Topic: TopicParameterChanged, Key: "b"})
		}
	})
	bus2.Publish(Event{Topic: TopicParameterChanged, Key: "a"})
	assert.Equal(t, 2, other)
}
