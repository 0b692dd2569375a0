package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(LootGranted, func(ctx context.Context, evt Event) error {
		got = evt
		return nil
	})

	inst := domain.Instance{InstanceID: "i-1", ArchetypeID: "ipad", Name: "iPad Pro", Rarity: domain.RarityRare}
	err := bus.Publish(context.Background(), NewLootGrantedEvent(inst, "lucky_block"))
	require.NoError(t, err)

	assert.Equal(t, LootGranted, got.Type)
	payload, err := DecodePayload[domain.LootGrantedPayload](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, "i-1", payload.InstanceID)
	assert.Equal(t, "lucky_block", payload.Source)
}

func TestMemoryBusMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}
	bus.Subscribe(ServerMessage, handler)
	bus.Subscribe(ServerMessage, handler)

	err := bus.Publish(context.Background(), NewServerMessageEvent("hello"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBusHandlerError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(BoostEnded, func(ctx context.Context, evt Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), NewBoostEndedEvent("Golden Hour"))
	assert.Error(t, err)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewRebirthCompletedEvent(1, 1.5)))
}

func TestDecodePayloadFromJSONMap(t *testing.T) {
	// Serialized payloads arrive as generic maps and must round-trip cleanly
	raw := map[string]interface{}{"kind": "fuse", "skipped": true}
	payload, err := DecodePayload[domain.ConversionCompletedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "fuse", payload.Kind)
	assert.True(t, payload.Skipped)
}

func TestConversionStartedEventCarriesReadyAt(t *testing.T) {
	readyAt := time.Now().Add(time.Hour)
	evt := NewConversionStartedEvent("craft", []string{"a", "b"}, readyAt)

	payload, err := DecodePayload[domain.ConversionStartedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, readyAt.Unix(), payload.ReadyAtUnix)
	assert.Len(t, payload.ConsumedIDs, 2)
}
