package income

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
)

func TestExplainMultipliesEverything(t *testing.T) {
	p := domain.NewPlayer()
	p.GlobalMultiplier = 2
	p.TraitMultiplier = 3
	p.RebirthTier = 1 // x1.5
	p.Passes["pass_income"] = true
	p.Instances = []domain.Instance{
		{BaseIncome: 100, Battery: 50},
		{BaseIncome: 50, Battery: 50, MutationMultiplier: 2},
		{BaseIncome: 1_000, Battery: 0}, // dead battery contributes nothing
	}

	b := Explain(p, 500)
	assert.Equal(t, 200.0, b.Base)
	assert.Equal(t, 2.0, b.GlobalMult)
	assert.Equal(t, 2.0, b.PassMult)
	assert.Equal(t, 1.5, b.RebirthMult)
	assert.Equal(t, 3.0, b.TraitMult)
	assert.Equal(t, 18.0, b.FinalMultiplier)
	assert.Equal(t, 200.0*18+500, b.Total)
}

func TestExplainMonotonicInMultipliers(t *testing.T) {
	p := domain.NewPlayer()
	p.Instances = []domain.Instance{{BaseIncome: 10, Battery: 100}}

	base := Explain(p, 0).Total
	p.GlobalMultiplier = 2
	doubled := Explain(p, 0).Total
	assert.Greater(t, doubled, base)

	p.RebirthTier = 5
	assert.Greater(t, Explain(p, 0).Total, doubled)
}

func TestJobCreditsLedgerWithActiveBoost(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bus := event.NewMemoryBus()

	l := ledger.New(catalog.New(), bus, func() time.Time { return now })
	m := gameevent.NewManager(bus, nil, func() time.Time { return now })
	_, err := m.Activate(ctx, "Golden Hour")
	require.NoError(t, err)

	job := &Job{Ledger: l, Boosts: m}
	require.NoError(t, job.Process(ctx))

	// Empty collection, so the whole payout is the event boost
	assert.Equal(t, 25_000.0, l.Balance())
}
