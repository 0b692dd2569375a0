package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/testing/leaktest"
)

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return hub.ClientCount() == want
	}, time.Second, 5*time.Millisecond)
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Broadcast("loot.granted", map[string]string{"name": "iPad Pro"})

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, "loot.granted", evt.Type)
		assert.NotEmpty(t, evt.ID)
	case <-time.After(time.Second):
		t.Fatal("client never received the broadcast")
	}
}

func TestHubEventFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	filtered := hub.Register([]string{"item.sold"})
	waitForClients(t, hub, 1)

	hub.Broadcast("loot.granted", nil)
	hub.Broadcast("item.sold", nil)

	select {
	case evt := <-filtered.EventChannel:
		assert.Equal(t, "item.sold", evt.Type)
	case <-time.After(time.Second):
		t.Fatal("filtered client never received its event")
	}

	select {
	case evt := <-filtered.EventChannel:
		t.Fatalf("unexpected extra event: %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, open := <-client.EventChannel
	assert.False(t, open)
}

func TestHubStopLeaksNothing(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()
	hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	checker.Check(0)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "item.sold", Timestamp: 1, Payload: nil})
	require.NoError(t, err)

	s := string(msg)
	assert.Contains(t, s, "id: abc\n")
	assert.Contains(t, s, "event: item.sold\n")
	assert.Contains(t, s, "data: ")
	assert.True(t, s[len(s)-2:] == "\n\n")
}

func TestSubscriberForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	err := bus.Publish(context.Background(), event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.ItemSold,
		Payload: map[string]any{"name": "CRT Monitor"},
	})
	require.NoError(t, err)

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, string(event.ItemSold), evt.Type)
	case <-time.After(time.Second):
		t.Fatal("bus event never reached the SSE client")
	}
}
