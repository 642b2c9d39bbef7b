package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBroker_PublishSubscribe(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := broker.Subscribe(ctx)

	broker.Publish(RegisteredEvent, "NSteps")

	select {
	case ev := <-events:
		require.Equal(t, RegisteredEvent, ev.Type)
		require.Equal(t, "NSteps", ev.Payload)
		require.False(t, ev.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
}

func TestBroker_MultipleSubscribers(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := broker.Subscribe(ctx)
	second := broker.Subscribe(ctx)
	require.Equal(t, 2, broker.SubscriberCount())

	broker.Publish(PrunedEvent, 7)

	for _, events := range []<-chan Event[int]{first, second} {
		select {
		case ev := <-events:
			require.Equal(t, 7, ev.Payload)
		case <-time.After(time.Second):
			t.Fatal("each subscriber receives every event")
		}
	}
}

func TestBroker_ContextCancelUnsubscribes(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events := broker.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return broker.SubscriberCount() == 0
	}, time.Second, 5*time.Millisecond)

	// The channel is closed once the subscription is torn down.
	_, ok := <-events
	require.False(t, ok)
}

func TestBroker_PublishNeverBlocks(t *testing.T) {
	broker := NewBrokerWithBuffer[int](1)
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := broker.Subscribe(ctx)

	// Nobody is draining; the second publish is dropped, not deadlocked.
	broker.Publish(ModifiedEvent, 1)
	broker.Publish(ModifiedEvent, 2)

	ev := <-events
	require.Equal(t, 1, ev.Payload)
	select {
	case ev := <-events:
		t.Fatalf("expected the overflow event to be dropped, got %v", ev.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroker_CloseClosesSubscribers(t *testing.T) {
	broker := NewBroker[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := broker.Subscribe(ctx)

	broker.Close()
	_, ok := <-events
	require.False(t, ok)

	// Publishing and closing after Close are harmless no-ops.
	broker.Publish(ModifiedEvent, 1)
	broker.Close()
	require.Equal(t, 0, broker.SubscriberCount())
}

func TestBroker_SubscribeAfterClose(t *testing.T) {
	broker := NewBroker[int]()
	broker.Close()

	events := broker.Subscribe(context.Background())
	_, ok := <-events
	require.False(t, ok)
}
