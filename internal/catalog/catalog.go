package catalog

import (
	"github.com/google/uuid"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

// Catalog is the immutable archetype registry. Lookup maps are built once at
// construction; iteration order everywhere follows declaration order.
type Catalog struct {
	archetypes []domain.Archetype
	byID       map[string]domain.Archetype
	byName     map[string]domain.Archetype
	byRarity   map[domain.Rarity][]domain.Archetype
}

// New builds the catalog from the generated series and the hand-listed
// entries, in that order.
func New() *Catalog {
	entries := make([]domain.Archetype, 0, len(handListed)+machineCount+limitedCount)
	entries = append(entries, machineSeries()...)
	entries = append(entries, limitedSeries()...)
	entries = append(entries, handListed...)

	c := &Catalog{
		archetypes: entries,
		byID:       make(map[string]domain.Archetype, len(entries)),
		byName:     make(map[string]domain.Archetype, len(entries)),
		byRarity:   make(map[domain.Rarity][]domain.Archetype),
	}
	for _, a := range entries {
		c.byID[a.ID] = a
		c.byName[a.Name] = a
		c.byRarity[a.Rarity] = append(c.byRarity[a.Rarity], a)
	}
	return c
}

// All returns every archetype in declaration order. Callers must not mutate
// the returned slice.
func (c *Catalog) All() []domain.Archetype {
	return c.archetypes
}

// Len returns the number of archetypes.
func (c *Catalog) Len() int {
	return len(c.archetypes)
}

// ByID looks up an archetype by catalog id.
func (c *Catalog) ByID(id string) (domain.Archetype, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// ByName looks up an archetype by display name. Recipes and event triggers
// reference archetypes by name.
func (c *Catalog) ByName(name string) (domain.Archetype, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// ByRarity returns all archetypes of the given rarity in declaration order.
// Callers must not mutate the returned slice.
func (c *Catalog) ByRarity(r domain.Rarity) []domain.Archetype {
	return c.byRarity[r]
}

// First returns the first catalog entry. Roll surfaces fall back to it when a
// rarity pool comes up empty.
func (c *Catalog) First() domain.Archetype {
	return c.archetypes[0]
}

// Machines returns the machine-shop series.
func (c *Catalog) Machines() []domain.Archetype {
	return c.archetypes[:machineCount]
}

// Limiteds returns every Limited-rarity archetype.
func (c *Catalog) Limiteds() []domain.Archetype {
	return c.byRarity[domain.RarityLimited]
}

// Stamp mints a fresh owned instance from an archetype. The multiplier falls
// back to the archetype's built-in one, then to 1.
func Stamp(a domain.Archetype, mutation string, multiplier float64) domain.Instance {
	if multiplier == 0 {
		multiplier = a.MutationMultiplier
	}
	if multiplier == 0 {
		multiplier = 1
	}
	return domain.Instance{
		InstanceID:         uuid.NewString(),
		ArchetypeID:        a.ID,
		Name:               a.Name,
		BaseIncome:         a.BaseIncome,
		Price:              a.Price,
		Rarity:             a.Rarity,
		Icon:               a.Icon,
		Description:        a.Description,
		Mutation:           mutation,
		MutationMultiplier: multiplier,
		Battery:            domain.BatteryMax,
	}
}
