package attraction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
)

func seq(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

// openWindow is an even truck window: unix 0 is open, so any even multiple
// of the period works.
var openWindow = time.Unix(0, 0).Add(4 * TruckPeriod)

// closedWindow is one period later.
var closedWindow = openWindow.Add(TruckPeriod)

func TestTruckWindows(t *testing.T) {
	cat := catalog.New()
	led := ledger.New(cat, event.NewMemoryBus(), nil)

	at := openWindow
	truck := NewTruck(cat, led, func() time.Time { return at })
	assert.True(t, truck.IsOpen())

	at = closedWindow
	assert.False(t, truck.IsOpen())

	offer := truck.Offer()
	assert.False(t, offer.Open)
	assert.Equal(t, at.Add(TruckPeriod), offer.NextToggle)
}

func TestTruckExchange(t *testing.T) {
	ctx := context.Background()
	cat := catalog.New()
	led := ledger.New(cat, event.NewMemoryBus(), nil)

	at := openWindow
	truck := NewTruck(cat, led, func() time.Time { return at })

	offer := truck.Offer()
	require.True(t, offer.Open)
	require.NotEmpty(t, offer.Wanted)
	assert.Equal(t, domain.QuantumCost, offer.WantedCount)
	assert.Equal(t, domain.RarityLimited, offer.Reward.Rarity)

	// Too few copies
	wanted, ok := cat.ByName(offer.Wanted)
	require.True(t, ok)
	for i := 0; i < domain.QuantumCost-1; i++ {
		led.GrantLoot(ctx, catalog.Stamp(wanted, "", 0), ledger.SourceAdmin)
	}
	_, err := truck.Exchange(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	led.GrantLoot(ctx, catalog.Stamp(wanted, "", 0), ledger.SourceAdmin)
	reward, err := truck.Exchange(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MutationQuantum, reward.Mutation)
	assert.Equal(t, domain.QuantumMultiplier, reward.MutationMultiplier)

	// Nine consumed, one Limited left
	insts := led.Snapshot().Instances
	require.Len(t, insts, 1)
	assert.Equal(t, offer.Reward.ID, insts[0].ArchetypeID)
}

func TestTruckClosedRefusesExchange(t *testing.T) {
	cat := catalog.New()
	led := ledger.New(cat, event.NewMemoryBus(), nil)

	at := closedWindow
	truck := NewTruck(cat, led, func() time.Time { return at })

	_, err := truck.Exchange(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAvailable)
}

func TestTruckOfferRotates(t *testing.T) {
	cat := catalog.New()
	led := ledger.New(cat, event.NewMemoryBus(), nil)

	at := openWindow
	truck := NewTruck(cat, led, func() time.Time { return at })
	first := truck.Offer()

	at = at.Add(2 * TruckPeriod) // next full visit
	second := truck.Offer()
	assert.NotEqual(t, first.Reward.ID, second.Reward.ID)
}

func newWheel(rnd func() float64, at *time.Time) (*Wheel, *ledger.Ledger, *roll.Engine) {
	cat := catalog.New()
	clock := func() time.Time { return *at }
	led := ledger.New(cat, event.NewMemoryBus(), clock)
	roller := roll.New(cat, rnd, clock)
	boosts := gameevent.NewManager(event.NewMemoryBus(), nil, clock)
	return NewWheel(cat, led, roller, boosts, rnd, clock), led, roller
}

func TestWheelCooldown(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	w, _, _ := newWheel(seq(0.8), &at) // "nothing" segment

	require.True(t, w.CanSpin())
	res, err := w.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, PrizeNothing, res.Prize)
	assert.False(t, w.CanSpin())

	_, err = w.Spin(ctx)
	assert.ErrorIs(t, err, domain.ErrNotAvailable)

	at = at.Add(WheelCooldown)
	assert.True(t, w.CanSpin())
}

func TestWheelCashPrizes(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Segment 1 is the small cash prize
	w, led, _ := newWheel(seq(0.13), &at)
	res, err := w.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, PrizeSmallCash, res.Prize)
	assert.Equal(t, wheelSmallCashPrize, led.Balance())

	// Segment 4 is the big one
	at = at.Add(WheelCooldown)
	w.rnd = seq(0.55)
	res, err = w.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, PrizeBigCash, res.Prize)
	assert.Equal(t, wheelSmallCashPrize+wheelBigCashPrize, led.Balance())
}

func TestWheelLuckBuffFeedsRolls(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	w, _, roller := newWheel(seq(0.95), &at) // last segment: luck buff

	res, err := w.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, PrizeLuckBuff, res.Prize)
	assert.Equal(t, 2.0, roller.LuckModifier())

	// Buff expires with the clock
	at = at.Add(wheelLuckBuffDuration + time.Second)
	assert.Equal(t, 1.0, roller.LuckModifier())
}

func TestWheelFreeBlockRespectsGate(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	w, led, _ := newWheel(seq(0.30, 0.5, 0.5), &at) // segment 2: free block

	res, err := w.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, PrizeFreeBlock, res.Prize)
	require.NotNil(t, res.Item)
	assert.True(t, res.Granted)
	assert.Equal(t, domain.MutationLucky, res.Item.Mutation)
	assert.Len(t, led.Snapshot().Instances, 1)
}

func TestShowroomStockAndBuy(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cat := catalog.New()
	clock := func() time.Time { return at }
	led := ledger.New(cat, event.NewMemoryBus(), clock)
	roller := roll.New(cat, seq(0.9, 0.5), clock) // commons only

	room := NewShowroom(led, roller, clock)
	stock := room.Stock()
	require.Len(t, stock, ShowroomStockSize)
	for _, a := range stock {
		assert.NotEqual(t, domain.RarityOG, a.Rarity)
		assert.NotEqual(t, domain.RaritySecret, a.Rarity)
	}

	_, err := room.Buy(ctx, "definitely_not_stocked")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = room.Buy(ctx, stock[0].ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	led.Credit(ctx, stock[0].Price)
	inst, err := room.Buy(ctx, stock[0].ID)
	require.NoError(t, err)
	assert.Equal(t, stock[0].ID, inst.ArchetypeID)
	assert.Equal(t, 0.0, led.Balance())
	assert.Len(t, room.Stock(), ShowroomStockSize-1)
}

func TestShowroomRestockRotates(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cat := catalog.New()
	clock := func() time.Time { return at }
	led := ledger.New(cat, event.NewMemoryBus(), clock)
	roller := roll.New(cat, seq(0.9, 0.5), clock)

	room := NewShowroom(led, roller, clock)
	first := room.RestockedAt()

	at = at.Add(ShowroomRestockInterval)
	room.Restock()
	assert.True(t, room.RestockedAt().After(first))
	assert.Len(t, room.Stock(), ShowroomStockSize)
}
