package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	b := NewBroker()
	first := b.Subscribe()
	second := b.Subscribe()

	b.Publish(Event{RequestID: "req-1", Step: StepRendering})

	for _, ch := range []chan Event{first, second} {
		select {
		case evt := <-ch:
			assert.Equal(t, "req-1", evt.RequestID)
			assert.Equal(t, StepRendering, evt.Step)
		default:
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestUnsubscribedChannelStopsReceiving(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	b.Publish(Event{RequestID: "req-2", Step: StepDone})

	_, open := <-ch
	require.False(t, open)
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()

	for i := 0; i < cap(ch)+5; i++ {
		b.Publish(Event{RequestID: "req-3", Step: StepAnalyzing})
	}

	// buffered events are delivered, overflow was dropped
	assert.Len(t, ch, cap(ch))
}
