package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := NewBroker[string](nil)
	sub := broker.Subscribe(ctx)

	broker.Publish("greeting", "hello")

	got := <-sub
	assert.Equal(t, NewEvent[string]("greeting", "hello"), got)
}

func TestBroker_UnsubscribeOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	broker := NewBroker[string](nil)
	sub := broker.Subscribe(ctx)
	require.Equal(t, 1, broker.Subscribers())

	cancel()

	// channel is closed once the broker has removed the subscription
	_, ok := <-sub
	assert.False(t, ok)
	assert.Equal(t, 0, broker.Subscribers())
}

func TestBroker_UnsubscribeFullSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := NewBroker[int](nil)
	_ = broker.Subscribe(ctx)

	for i := range subBufferSize + 1 {
		broker.Publish("count", i)
	}
	assert.Equal(t, 0, broker.Subscribers())
}
