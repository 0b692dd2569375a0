package sse

import (
	"context"
	"log/slog"

	"github.com/grapnel-games/tablet-tycoon/internal/event"
)

// gameEventTypes is every bus event mirrored to the browser stream.
var gameEventTypes = []event.Type{
	event.LootGranted,
	event.LootForfeited,
	event.ItemSold,
	event.ItemBought,
	event.ConversionStarted,
	event.ConversionCompleted,
	event.BoostStarted,
	event.BoostEnded,
	event.RebirthCompleted,
	event.ServerMessage,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers a forwarding handler for every game event type. Bus
// payloads are typed structs, so they serialize to clients as-is.
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(gameEventTypes))
	for _, t := range gameEventTypes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}

	slog.Info(LogMsgSubscriberAttached, "types", types)
}

// forward pushes a bus event onto the hub unchanged.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	return nil
}
