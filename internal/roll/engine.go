// Package roll owns every random outcome in the game: lucky block pulls,
// fusion results, showroom restocks and the legacy mystery box.
package roll

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

const (
	poolCacheSize = 64
	poolCacheTTL  = 5 * time.Minute
)

// Engine resolves rarity rolls against the catalog. The random source and
// clock are injectable so outcomes can be pinned in tests.
type Engine struct {
	cat *catalog.Catalog
	rnd func() float64
	now func() time.Time

	// expanded rarity pools are expensive to rebuild per pull
	pools *expirable.LRU[string, []domain.Rarity]

	mu             sync.Mutex
	adminLuck      float64
	blockLuck      float64
	blockLuckUntil time.Time
}

// New creates an engine over the given catalog. A nil rnd falls back to the
// global PRNG, a nil now to the wall clock.
func New(cat *catalog.Catalog, rnd func() float64, now func() time.Time) *Engine {
	if rnd == nil {
		rnd = rand.Float64
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		cat:       cat,
		rnd:       rnd,
		now:       now,
		pools:     expirable.NewLRU[string, []domain.Rarity](poolCacheSize, nil, poolCacheTTL),
		adminLuck: 1,
	}
}

// SetAdminLuck overrides the persistent luck scale. Values below 1 reset it.
func (e *Engine) SetAdminLuck(factor float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if factor < 1 {
		factor = 1
	}
	e.adminLuck = factor
}

// SetBlockLuck applies a temporary luck buff until the given time.
func (e *Engine) SetBlockLuck(factor float64, until time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blockLuck = factor
	e.blockLuckUntil = until
}

// LuckModifier is the engine-side luck scale: the admin override times any
// unexpired buff. Multiply by the player's base luck for the full factor.
func (e *Engine) LuckModifier() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	mod := e.adminLuck
	if e.blockLuck > 1 && e.now().Before(e.blockLuckUntil) {
		mod *= e.blockLuck
	}
	return mod
}

// RollThreshold resolves a percent-roll cascade table.
func (e *Engine) RollThreshold(t ThresholdTable) domain.Rarity {
	roll := e.rnd() * 100
	for _, entry := range t.Entries {
		if roll > entry.Above {
			return entry.Rarity
		}
	}
	return t.Fallback
}

// RollWeighted draws one rarity from a block tier's weight map. A luck factor
// above 1 scales only the top-shelf rarities before the draw.
func (e *Engine) RollWeighted(tier BlockTier, luck float64) domain.Rarity {
	pool := e.rarityPool(tier, luck)
	idx := int(e.rnd() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx]
}

// rarityPool expands a weight map into a flat slice where each rarity appears
// floor(weight*10) times. An all-zero table degenerates to a single Common so
// a draw always succeeds.
func (e *Engine) rarityPool(tier BlockTier, luck float64) []domain.Rarity {
	key := fmt.Sprintf("%s:%g", tier.ID, luck)
	if pool, ok := e.pools.Get(key); ok {
		return pool
	}

	var pool []domain.Rarity
	for _, rarity := range weightOrder {
		w, ok := tier.Weights[rarity]
		if !ok {
			continue
		}
		if luck > 1 && rarity.IsLuckBoosted() {
			w *= luck
		}
		copies := int(math.Floor(w * 10))
		for i := 0; i < copies; i++ {
			pool = append(pool, rarity)
		}
	}
	if len(pool) == 0 {
		pool = append(pool, domain.RarityCommon)
	}

	e.pools.Add(key, pool)
	return pool
}

// PickArchetype draws a uniform archetype of the given rarity. An empty
// rarity bucket falls back to the head of the catalog.
func (e *Engine) PickArchetype(rarity domain.Rarity) domain.Archetype {
	bucket := e.cat.ByRarity(rarity)
	if len(bucket) == 0 {
		return e.cat.First()
	}
	idx := int(e.rnd() * float64(len(bucket)))
	if idx >= len(bucket) {
		idx = len(bucket) - 1
	}
	return bucket[idx]
}

// OpenBlock resolves a full lucky block pull: rarity first, then archetype.
func (e *Engine) OpenBlock(tier BlockTier, luck float64) domain.Archetype {
	return e.PickArchetype(e.RollWeighted(tier, luck))
}

// RollFuse resolves a fusion outcome archetype.
func (e *Engine) RollFuse(luckActive bool) domain.Archetype {
	table := FuseTable
	if luckActive {
		table = FuseLuckTable
	}
	return e.PickArchetype(e.RollThreshold(table))
}

// RollBulk resolves one item of a bulk purchase.
func (e *Engine) RollBulk() domain.Archetype {
	return e.PickArchetype(e.RollThreshold(BulkTable))
}

// RollMystery resolves the legacy mystery box, which maps the roll straight
// to fixed archetypes instead of rarities.
func (e *Engine) RollMystery() domain.Archetype {
	roll := e.rnd() * 100
	id := mysteryFallbackID
	for _, entry := range mysteryCascade {
		if roll <= entry.UpTo {
			id = entry.ArchetypeID
			break
		}
	}
	if arch, ok := e.cat.ByID(id); ok {
		return arch
	}
	return e.cat.First()
}

// RollShowroom draws a showroom restock item. Luck widens the premium
// buckets; OG and Secret never appear on the showroom floor.
func (e *Engine) RollShowroom(luck float64) domain.Archetype {
	base := make([]domain.Archetype, 0, e.cat.Len())
	for _, a := range e.cat.All() {
		if a.Rarity == domain.RarityOG || a.Rarity == domain.RaritySecret {
			continue
		}
		base = append(base, a)
	}

	roll := e.rnd()
	var pool []domain.Archetype
	switch {
	case roll < showroomGodChance*luck:
		pool = filterRarity(base, domain.RarityGod, domain.RarityMythic)
	case roll < (showroomGodChance+showroomLegChance)*luck:
		pool = filterRarity(base, domain.RarityLegendary)
	case roll < (showroomGodChance+showroomLegChance+showroomRareChance)*luck:
		pool = filterRarity(base, domain.RarityRare)
	default:
		pool = filterRarity(base, domain.RarityCommon)
	}
	if len(pool) == 0 {
		pool = base[:5]
	}

	idx := int(e.rnd() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx]
}

func filterRarity(in []domain.Archetype, rarities ...domain.Rarity) []domain.Archetype {
	var out []domain.Archetype
	for _, a := range in {
		for _, r := range rarities {
			if a.Rarity == r {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
