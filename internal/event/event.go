package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Game event types
const (
	LootGranted         Type = Type(domain.EventTypeLootGranted)
	LootForfeited       Type = Type(domain.EventTypeLootForfeited)
	ItemSold            Type = Type(domain.EventTypeItemSold)
	ItemBought          Type = Type(domain.EventTypeItemBought)
	ConversionStarted   Type = Type(domain.EventTypeConversionStarted)
	ConversionCompleted Type = Type(domain.EventTypeConversionCompleted)
	BoostStarted        Type = Type(domain.EventTypeBoostStarted)
	BoostEnded          Type = Type(domain.EventTypeBoostEnded)
	RebirthCompleted    Type = Type(domain.EventTypeRebirthCompleted)
	ServerMessage       Type = Type(domain.EventTypeServerMessage)
)

// Type-safe event constructors

// NewLootGrantedEvent announces an item landing in storage.
func NewLootGrantedEvent(inst domain.Instance, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LootGranted,
		Payload: domain.LootGrantedPayload{
			InstanceID:  inst.InstanceID,
			ArchetypeID: inst.ArchetypeID,
			Name:        inst.Name,
			Rarity:      inst.Rarity,
			Mutation:    inst.Mutation,
			Source:      source,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewLootForfeitedEvent announces a paid-for item lost to a full storage.
func NewLootForfeitedEvent(name, rarity, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LootForfeited,
		Payload: domain.LootForfeitedPayload{
			Name:      name,
			Rarity:    rarity,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent announces a sale and the credited proceeds.
func NewItemSoldEvent(inst domain.Instance, proceeds float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			InstanceID: inst.InstanceID,
			Name:       inst.Name,
			MoneyGained: proceeds,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemBoughtEvent announces a shop purchase of any kind.
func NewItemBoughtEvent(itemID, name string, price float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemBought,
		Payload: domain.ItemBoughtPayload{
			ArchetypeID: itemID,
			Name:        name,
			MoneySpent:  price,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewConversionStartedEvent announces ingredients leaving storage.
func NewConversionStartedEvent(kind string, consumed []string, readyAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ConversionStarted,
		Payload: domain.ConversionStartedPayload{
			Kind:        kind,
			ConsumedIDs: consumed,
			ReadyAtUnix: readyAt.Unix(),
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewConversionCompletedEvent announces a finished fuse, craft or trade.
func NewConversionCompletedEvent(kind string, inst domain.Instance, skipped bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ConversionCompleted,
		Payload: domain.ConversionCompletedPayload{
			Kind:        kind,
			InstanceID:  inst.InstanceID,
			ArchetypeID: inst.ArchetypeID,
			Name:        inst.Name,
			Rarity:      inst.Rarity,
			Skipped:     skipped,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewBoostStartedEvent announces a global boost going live.
func NewBoostStartedEvent(name string, boost float64, message string, endsAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BoostStarted,
		Payload: domain.BoostStartedPayload{
			Name:      name,
			Boost:     boost,
			Message:   message,
			EndsAt:    endsAt.Unix(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBoostEndedEvent announces a boost expiring.
func NewBoostEndedEvent(name string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BoostEnded,
		Payload: domain.BoostEndedPayload{
			Name:      name,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRebirthCompletedEvent announces a completed rebirth.
func NewRebirthCompletedEvent(tier int, multiplier float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RebirthCompleted,
		Payload: domain.RebirthCompletedPayload{
			Tier:       tier,
			Multiplier: multiplier,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewServerMessageEvent carries a broadcast line for connected clients.
func NewServerMessageEvent(message string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ServerMessage,
		Payload: domain.ServerMessagePayload{
			Message:   message,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a slow subscriber slows the publisher.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
