package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

func TestNewCatalogIsComplete(t *testing.T) {
	c := New()

	// Generated series plus the curated list, no duplicates
	assert.Equal(t, machineCount+limitedCount+len(handListed), c.Len())

	seen := make(map[string]bool, c.Len())
	for _, a := range c.All() {
		assert.False(t, seen[a.ID], "duplicate archetype id %s", a.ID)
		seen[a.ID] = true
		assert.True(t, a.Rarity.Valid(), "archetype %s has unknown rarity %q", a.ID, a.Rarity)
		assert.GreaterOrEqual(t, a.Price, 1.0, "archetype %s has no price", a.ID)
	}
}

func TestCatalogOrderIsDeterministic(t *testing.T) {
	a := New()
	b := New()

	require.Equal(t, a.Len(), b.Len())
	for i := range a.All() {
		assert.Equal(t, a.All()[i].ID, b.All()[i].ID)
	}

	// The roll fallback entry is the head of the machine series
	assert.Equal(t, "machine_mk1", a.First().ID)
}

func TestMachineSeriesRarityCutoffs(t *testing.T) {
	c := New()
	machines := c.Machines()
	require.Len(t, machines, machineCount)

	assert.Equal(t, domain.RarityRare, machines[0].Rarity)
	assert.Equal(t, domain.RarityRare, machines[25].Rarity)
	assert.Equal(t, domain.RarityLegendary, machines[26].Rarity)
	assert.Equal(t, domain.RarityMythic, machines[41].Rarity)
	assert.Equal(t, domain.RarityGod, machines[51].Rarity)
	assert.Equal(t, domain.RarityGod, machines[53].Rarity)

	// Linear stat scaling
	assert.Equal(t, 5_000.0, machines[0].BaseIncome)
	assert.Equal(t, 100_000.0, machines[0].Price)
	assert.Equal(t, 270_000.0, machines[53].BaseIncome)
	assert.Equal(t, 5_400_000.0, machines[53].Price)
}

func TestLimitedSeriesNaming(t *testing.T) {
	c := New()
	limiteds := c.Limiteds()

	// 67 generated plus the W or L special
	require.Len(t, limiteds, limitedCount+1)
	assert.Equal(t, "The Void Walker", limiteds[0].Name)
	assert.Equal(t, "The Star Walker", limiteds[1].Name)
	assert.Equal(t, "The Void Slayer", limiteds[20].Name)
	for _, a := range limiteds {
		assert.Equal(t, domain.RarityLimited, a.Rarity)
	}
}

func TestLookups(t *testing.T) {
	c := New()

	byID, ok := c.ByID("strawberry")
	require.True(t, ok)
	assert.Equal(t, "Strawberry Elephant", byID.Name)
	assert.Equal(t, domain.RarityOG, byID.Rarity)

	byName, ok := c.ByName("La OG Combination")
	require.True(t, ok)
	assert.Equal(t, "la_og", byName.ID)

	_, ok = c.ByID("does_not_exist")
	assert.False(t, ok)

	for _, r := range domain.AllRarities {
		assert.NotEmpty(t, c.ByRarity(r), "no archetypes for rarity %s", r)
	}
}

func TestStamp(t *testing.T) {
	c := New()
	arch, _ := c.ByID("ipad")

	inst := Stamp(arch, domain.MutationLucky, 0)
	assert.NotEmpty(t, inst.InstanceID)
	assert.Equal(t, "ipad", inst.ArchetypeID)
	assert.Equal(t, domain.MutationLucky, inst.Mutation)
	assert.Equal(t, 1.0, inst.MutationMultiplier)
	assert.Equal(t, domain.BatteryMax, inst.Battery)

	// Distinct instances from the same archetype
	other := Stamp(arch, domain.MutationLucky, 0)
	assert.NotEqual(t, inst.InstanceID, other.InstanceID)

	// Built-in archetype multipliers survive stamping
	candy, _ := c.ByID("diamond_candy")
	sweet := Stamp(candy, domain.MutationLucky, 0)
	assert.Equal(t, 25.0, sweet.MutationMultiplier)

	// Explicit multipliers win
	fused := Stamp(arch, domain.MutationFused, domain.FuseMultiplier)
	assert.Equal(t, domain.FuseMultiplier, fused.MutationMultiplier)
}
