package conversion

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

type fixture struct {
	engine *Engine
	led    *ledger.Ledger
	cat    *catalog.Catalog
	boosts *gameevent.Manager
	now    time.Time
}

func newFixture(t *testing.T, rnd func() float64) *fixture {
	t.Helper()
	f := &fixture{
		cat: catalog.New(),
		now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }
	bus := event.NewMemoryBus()
	f.led = ledger.New(f.cat, bus, clock)
	f.boosts = gameevent.NewManager(bus, nil, clock)

	recipes, err := LoadRecipes("../../configs/recipes.json")
	require.NoError(t, err)

	f.engine = NewEngine(f.cat, f.led, roll.New(f.cat, rnd, clock), f.boosts, bus, recipes, clock)
	return f
}

func (f *fixture) grant(t *testing.T, id string) domain.Instance {
	t.Helper()
	arch, ok := f.cat.ByID(id)
	require.True(t, ok)
	inst := catalog.Stamp(arch, "", 0)
	f.led.GrantLoot(context.Background(), inst, ledger.SourceAdmin)
	return inst
}

func TestFuseConsumesThreeAndSchedules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func() float64 { return 0.5 }) // Mythic on the normal table

	a := f.grant(t, "paper")
	b := f.grant(t, "rock")
	c := f.grant(t, "toast")

	p, err := f.engine.Fuse(ctx, []string{a.InstanceID, b.InstanceID, c.InstanceID})
	require.NoError(t, err)

	assert.Equal(t, KindFuse, p.Kind)
	assert.Equal(t, domain.RarityMythic, p.Result.Rarity)
	assert.Equal(t, domain.MutationFused, p.Result.Mutation)
	assert.Equal(t, domain.FuseMultiplier, p.Result.MutationMultiplier)
	assert.Equal(t, f.now.Add(FuseDelay), p.ReadyAt)

	// Ingredients are gone immediately; the reward is not here yet
	assert.Empty(t, f.led.Snapshot().Instances)
	assert.Len(t, f.engine.Pending(), 1)
}

func TestFuseRequiresExactlyThree(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	a := f.grant(t, "paper")
	b := f.grant(t, "rock")

	_, err := f.engine.Fuse(ctx, []string{a.InstanceID, b.InstanceID})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.Len(t, f.led.Snapshot().Instances, 2)
}

func TestFuseOnePendingAtATime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func() float64 { return 0.5 })

	ids := []string{
		f.grant(t, "paper").InstanceID,
		f.grant(t, "rock").InstanceID,
		f.grant(t, "toast").InstanceID,
	}
	_, err := f.engine.Fuse(ctx, ids)
	require.NoError(t, err)

	more := []string{
		f.grant(t, "paper").InstanceID,
		f.grant(t, "rock").InstanceID,
		f.grant(t, "toast").InstanceID,
	}
	_, err = f.engine.Fuse(ctx, more)
	assert.ErrorIs(t, err, domain.ErrConversionPending)

	// The second batch is untouched
	assert.Len(t, f.led.Snapshot().Instances, 3)
}

func TestFuseOutcomeRolledAtInitiation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func() float64 { return 0.55 })

	// 55 on the luck table lands God; on the normal table it lands Mythic
	_, err := f.boosts.Activate(ctx, gameevent.FuseLuckEventName)
	require.NoError(t, err)

	ids := []string{
		f.grant(t, "paper").InstanceID,
		f.grant(t, "rock").InstanceID,
		f.grant(t, "toast").InstanceID,
	}
	p, err := f.engine.Fuse(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, domain.RarityGod, p.Result.Rarity)

	// The boost lapsing before delivery changes nothing
	f.now = f.now.Add(2 * time.Minute)
	assert.False(t, f.boosts.IsFuseLuckActive())
	f.now = f.now.Add(FuseDelay)
	require.Equal(t, 1, f.engine.CompleteReady(ctx))
	assert.Equal(t, domain.RarityGod, f.led.Snapshot().Instances[0].Rarity)
}

func TestCompleteReadyDeliversPastStorageGate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func() float64 { return 0.5 })

	ids := []string{
		f.grant(t, "paper").InstanceID,
		f.grant(t, "rock").InstanceID,
		f.grant(t, "toast").InstanceID,
	}
	_, err := f.engine.Fuse(ctx, ids)
	require.NoError(t, err)

	// Fill storage to the brim while the fuse cooks
	for i := 0; i < domain.StorageBaseCapacity; i++ {
		f.grant(t, "paper")
	}

	// Not ready yet
	assert.Equal(t, 0, f.engine.CompleteReady(ctx))

	f.now = f.now.Add(FuseDelay)
	assert.Equal(t, 1, f.engine.CompleteReady(ctx))
	assert.Len(t, f.led.Snapshot().Instances, domain.StorageBaseCapacity+1)
	assert.Empty(t, f.engine.Pending())
}

func TestCraftConsumesBillOfMaterials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.grant(t, "good_tablet")
	f.grant(t, "hotspot")
	f.grant(t, "hotspot")
	f.grant(t, "paper") // bystander

	p, err := f.engine.Craft(ctx, "la_secret_combo")
	require.NoError(t, err)
	assert.Equal(t, "La Secret Combination", p.Result.Name)
	assert.Equal(t, domain.MutationCrafted, p.Result.Mutation)
	assert.Equal(t, domain.RecipeMultiplier, p.Result.MutationMultiplier)

	left := f.led.Snapshot().Instances
	require.Len(t, left, 1)
	assert.Equal(t, "paper", left[0].ArchetypeID)
}

func TestCraftMissingIngredients(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.grant(t, "good_tablet")
	f.grant(t, "hotspot") // recipe needs two hotspots

	_, err := f.engine.Craft(ctx, "la_secret_combo")
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	// Nothing was consumed on failure
	assert.Len(t, f.led.Snapshot().Instances, 2)
}

func TestCraftUnknownRecipe(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.engine.Craft(context.Background(), "no_such_recipe")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// Trade recipes are not craftable
	_, err = f.engine.Craft(context.Background(), "trade_plasma")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestTradeCompletesImmediately(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.grant(t, "crt")
	f.grant(t, "crt")
	f.grant(t, "crt")

	inst, err := f.engine.Trade(ctx, "trade_plasma")
	require.NoError(t, err)
	assert.Equal(t, "Plasma Screen", inst.Name)
	assert.Equal(t, domain.MutationTraded, inst.Mutation)

	// Three in, one out, no pending slot used
	assert.Len(t, f.led.Snapshot().Instances, 1)
	assert.Empty(t, f.engine.Pending())
}

func TestSkipChargesFee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func() float64 { return 0.5 })

	ids := []string{
		f.grant(t, "paper").InstanceID,
		f.grant(t, "rock").InstanceID,
		f.grant(t, "toast").InstanceID,
	}
	_, err := f.engine.Fuse(ctx, ids)
	require.NoError(t, err)

	_, err = f.engine.Skip(ctx, KindFuse)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	f.led.Credit(ctx, domain.SkipWaitFee)
	inst, err := f.engine.Skip(ctx, KindFuse)
	require.NoError(t, err)
	assert.Equal(t, domain.MutationFused, inst.Mutation)
	assert.Equal(t, 0.0, f.led.Balance())
	assert.Empty(t, f.engine.Pending())

	_, err = f.engine.Skip(ctx, KindFuse)
	assert.ErrorIs(t, err, domain.ErrNoPendingConversion)
}

func TestLoadRecipesValidates(t *testing.T) {
	recipes, err := LoadRecipes("../../configs/recipes.json")
	require.NoError(t, err)
	assert.NotEmpty(t, recipes)

	cat := catalog.New()
	for _, r := range recipes {
		_, ok := cat.ByName(r.Result)
		assert.True(t, ok, "recipe %s result %q not in catalog", r.ID, r.Result)
		for _, ing := range r.Ingredients {
			_, ok := cat.ByName(ing)
			assert.True(t, ok, "recipe %s ingredient %q not in catalog", r.ID, ing)
		}
	}

	_, err = LoadRecipes("no_such_file.json")
	assert.Error(t, err)
}
