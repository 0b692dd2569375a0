package roll

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

// seq returns a rnd source that replays the given values in order.
func seq(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func TestRollThresholdFuse(t *testing.T) {
	cat := catalog.New()

	tests := []struct {
		name string
		roll float64
		want domain.Rarity
	}{
		{"jackpot", 0.9995, domain.RarityOG},
		{"boundary is exclusive", 0.999, domain.RaritySecret},
		{"mid table", 0.50, domain.RarityMythic},
		{"floor", 0.01, domain.RarityCommon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(cat, seq(tt.roll), nil)
			assert.Equal(t, tt.want, e.RollThreshold(FuseTable))
		})
	}
}

func TestRollThresholdFuseLuckHasNoCommon(t *testing.T) {
	e := New(catalog.New(), nil, nil)
	for roll := 0.001; roll < 1; roll += 0.013 {
		e.rnd = seq(roll)
		assert.NotEqual(t, domain.RarityCommon, e.RollThreshold(FuseLuckTable))
	}
}

func TestRarityPoolComposition(t *testing.T) {
	e := New(catalog.New(), nil, nil)
	tier, ok := FindBlockTier("common")
	require.True(t, ok)

	counts := func(pool []domain.Rarity) map[domain.Rarity]int {
		m := make(map[domain.Rarity]int)
		for _, r := range pool {
			m[r]++
		}
		return m
	}

	// Each rarity appears floor(weight*10) times; fractions below 0.1 vanish.
	got := counts(e.rarityPool(tier, 1))
	assert.Equal(t, 800, got[domain.RarityCommon])
	assert.Equal(t, 150, got[domain.RarityRare])
	assert.Equal(t, 40, got[domain.RarityLegendary])
	assert.Equal(t, 9, got[domain.RarityMythic])
	assert.Equal(t, 0, got[domain.RarityGod])
	assert.Equal(t, 0, got[domain.RaritySecret])

	// Luck scales only the premium rarities, not the bulk of the pool.
	lucky := counts(e.rarityPool(tier, 2))
	assert.Equal(t, 800, lucky[domain.RarityCommon])
	assert.Equal(t, 150, lucky[domain.RarityRare])
	assert.Equal(t, 1, lucky[domain.RarityGod])
}

func TestRollWeightedPinned(t *testing.T) {
	cat := catalog.New()
	tier, ok := FindBlockTier("og")
	require.True(t, ok)

	// The expanded pool is ordered rarest first, so a zero roll lands on OP.
	e := New(cat, seq(0), nil)
	assert.Equal(t, domain.RarityOP, e.RollWeighted(tier, 1))

	e = New(cat, seq(0.99999), nil)
	assert.Equal(t, domain.RarityMythic, e.RollWeighted(tier, 1))
}

func TestRarityPoolCacheKeyedByLuck(t *testing.T) {
	e := New(catalog.New(), nil, nil)
	tier, ok := FindBlockTier("secret")
	require.True(t, ok)

	plain := e.rarityPool(tier, 1)
	lucky := e.rarityPool(tier, 3)
	assert.Greater(t, len(lucky), len(plain))

	// Second fetch comes from the cache and matches the first
	assert.Len(t, e.rarityPool(tier, 1), len(plain))
}

func TestPickArchetypeFallback(t *testing.T) {
	e := New(catalog.New(), seq(0.5), nil)
	got := e.PickArchetype(domain.Rarity("nonexistent"))
	assert.Equal(t, "machine_mk1", got.ID)
}

func TestRollMysteryCascade(t *testing.T) {
	cat := catalog.New()

	tests := []struct {
		roll float64
		want string
	}{
		{0.00005, "la_og"},
		{0.004, "la_secret"},
		{0.012, "hotspot"},
		{0.05, "good_tablet"},
		{0.5, "horrible"},
		{0.99, "horrible"},
	}
	for _, tt := range tests {
		e := New(cat, seq(tt.roll), nil)
		assert.Equal(t, tt.want, e.RollMystery().ID, "roll %v", tt.roll)
	}
}

func TestRollShowroom(t *testing.T) {
	cat := catalog.New()

	// A bottom roll hits the premium bucket
	e := New(cat, seq(0.0, 0.0), nil)
	top := e.RollShowroom(1)
	assert.Contains(t, []domain.Rarity{domain.RarityGod, domain.RarityMythic}, top.Rarity)

	// A top roll falls through to commons
	e = New(cat, seq(0.9, 0.0), nil)
	assert.Equal(t, domain.RarityCommon, e.RollShowroom(1).Rarity)

	// The vault rarities never appear regardless of luck
	src := rand.New(rand.NewPCG(7, 13))
	e = New(cat, src.Float64, nil)
	for i := 0; i < 500; i++ {
		got := e.RollShowroom(3)
		assert.NotEqual(t, domain.RarityOG, got.Rarity)
		assert.NotEqual(t, domain.RaritySecret, got.Rarity)
	}
}

func TestOpenBlockYieldsCatalogItem(t *testing.T) {
	cat := catalog.New()
	src := rand.New(rand.NewPCG(1, 2))
	e := New(cat, src.Float64, nil)

	for _, tier := range BlockTiers {
		for i := 0; i < 50; i++ {
			arch := e.OpenBlock(tier, 1)
			_, ok := cat.ByID(arch.ID)
			require.True(t, ok, "tier %s produced unknown archetype %s", tier.ID, arch.ID)
		}
	}
}
