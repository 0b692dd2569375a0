package gameevent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
)

func seq(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestRollStartsEventOnLowRoll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bus := event.NewMemoryBus()

	started := 0
	bus.Subscribe(event.BoostStarted, func(ctx context.Context, evt event.Event) error {
		started++
		return nil
	})

	// First value passes the 5% gate, second picks the pool index
	m := NewManager(bus, seq(0.01, 0.0), fixedClock(&now))
	m.Roll(ctx)

	active, ok := m.ActiveEvent()
	require.True(t, ok)
	assert.Equal(t, Events[0].Name, active.Name)
	assert.Equal(t, now.Add(time.Minute), active.EndsAt)
	assert.Equal(t, 1, started)

	// A live boost blocks further rolls
	m.Roll(ctx)
	assert.Equal(t, 1, started)
}

func TestRollMissesOnHighRoll(t *testing.T) {
	now := time.Now()
	m := NewManager(event.NewMemoryBus(), seq(0.5), fixedClock(&now))
	m.Roll(context.Background())

	_, ok := m.ActiveEvent()
	assert.False(t, ok)
}

func TestBoostExpiresLazily(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bus := event.NewMemoryBus()

	ended := 0
	bus.Subscribe(event.BoostEnded, func(ctx context.Context, evt event.Event) error {
		ended++
		return nil
	})

	m := NewManager(bus, seq(0.9), fixedClock(&now))
	_, err := m.Activate(ctx, "Golden Hour")
	require.NoError(t, err)
	assert.Equal(t, 25_000.0, m.CurrentBoost(ctx))

	now = now.Add(61 * time.Second)
	assert.Equal(t, 0.0, m.CurrentBoost(ctx))
	assert.Equal(t, 1, ended)
}

func TestActivateUnknownAndDisabled(t *testing.T) {
	ctx := context.Background()
	m := NewManager(event.NewMemoryBus(), nil, nil)

	_, err := m.Activate(ctx, "No Such Event")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	require.NoError(t, m.SetDisabled("Golden Hour", true))
	_, err = m.Activate(ctx, "Golden Hour")
	assert.ErrorIs(t, err, domain.ErrEventDisabled)
	assert.Equal(t, []string{"Golden Hour"}, m.DisabledEvents())

	require.NoError(t, m.SetDisabled("Golden Hour", false))
	_, err = m.Activate(ctx, "Golden Hour")
	assert.NoError(t, err)
}

func TestFuseLuckActive(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(event.NewMemoryBus(), nil, fixedClock(&now))

	assert.False(t, m.IsFuseLuckActive())
	_, err := m.Activate(ctx, FuseLuckEventName)
	require.NoError(t, err)
	assert.True(t, m.IsFuseLuckActive())

	now = now.Add(2 * time.Minute)
	assert.False(t, m.IsFuseLuckActive())
}

func TestChaosStacksEnabledBoosts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(event.NewMemoryBus(), nil, fixedClock(&now))

	var total float64
	for _, e := range Events {
		total += e.Boost
	}

	boost := m.Chaos(ctx)
	assert.Equal(t, ChaosName, boost.Name)
	assert.Equal(t, total, boost.Boost)
	assert.Equal(t, now.Add(ChaosDurationSeconds*time.Second), boost.EndsAt)

	// Disabled events drop out of the stack
	require.NoError(t, m.SetDisabled("La OP Event", true))
	boost = m.Chaos(ctx)
	assert.Equal(t, total-2_000_000, boost.Boost)
}

func TestOnItemAcquiredTriggers(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(event.NewMemoryBus(), nil, fixedClock(&now))

	m.OnItemAcquired(ctx, "Piece of Paper")
	_, ok := m.ActiveEvent()
	assert.False(t, ok)

	m.OnItemAcquired(ctx, "Strawberry Elephant")
	active, ok := m.ActiveEvent()
	require.True(t, ok)
	assert.Equal(t, "Strawberry Event", active.Name)
}

func TestSetDurationMinutes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(event.NewMemoryBus(), nil, fixedClock(&now))

	assert.ErrorIs(t, m.SetDurationMinutes(0), domain.ErrInvalidInput)
	require.NoError(t, m.SetDurationMinutes(5))

	active, err := m.Activate(ctx, "Golden Hour")
	require.NoError(t, err)
	assert.Equal(t, now.Add(5*time.Minute), active.EndsAt)
}

func TestServerMessageBroadcast(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()

	var got string
	bus.Subscribe(event.ServerMessage, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.ServerMessagePayload](evt.Payload)
		if err != nil {
			return err
		}
		got = payload.Message
		return nil
	})

	m := NewManager(bus, nil, nil)
	m.SetServerMessage(ctx, "maintenance at midnight")
	assert.Equal(t, "maintenance at midnight", got)
	assert.Equal(t, "maintenance at midnight", m.ServerMessage())
}
