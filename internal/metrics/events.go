package metrics

import (
	"context"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.LootGranted,
		event.LootForfeited,
		event.ItemSold,
		event.ItemBought,
		event.ConversionCompleted,
		event.RebirthCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.LootGranted:
		payload, err := event.DecodePayload[domain.LootGrantedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsGranted.WithLabelValues(string(payload.Rarity), payload.Source).Inc()

	case event.LootForfeited:
		payload, err := event.DecodePayload[domain.LootForfeitedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsForfeited.WithLabelValues(payload.Rarity).Inc()

	case event.ItemSold:
		payload, err := event.DecodePayload[domain.ItemSoldPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsSold.WithLabelValues(payload.Name).Inc()
		MoneyEarned.Add(payload.MoneyGained)

	case event.ItemBought:
		payload, err := event.DecodePayload[domain.ItemBoughtPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsBought.WithLabelValues(payload.Name).Inc()
		MoneySpent.Add(payload.MoneySpent)

	case event.ConversionCompleted:
		payload, err := event.DecodePayload[domain.ConversionCompletedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		Conversions.WithLabelValues(payload.Kind).Inc()

	case event.RebirthCompleted:
		Rebirths.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
