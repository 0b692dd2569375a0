// Package conversion turns owned items into better ones: random fusion,
// fixed craft recipes and instant trades. Ingredients are consumed up front;
// the reward lands when the timer runs out and bypasses the storage gate.
package conversion

import (
	"context"
	"sync"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
)

// Completion delays per kind. Trades complete instantly.
const (
	FuseDelay  = time.Hour
	CraftDelay = time.Hour
)

// Pending is an in-flight conversion. The outcome is already decided; only
// delivery waits.
type Pending struct {
	Kind    string          `json:"kind"`
	Result  domain.Instance `json:"result"`
	ReadyAt time.Time       `json:"ready_at"`
}

// Engine runs conversions against the ledger. One pending slot per kind.
type Engine struct {
	mu      sync.Mutex
	pending map[string]*Pending

	cat     *catalog.Catalog
	led     *ledger.Ledger
	roller  *roll.Engine
	boosts  *gameevent.Manager
	bus     event.Bus
	recipes []Recipe
	now     func() time.Time
}

// NewEngine wires a conversion engine. A nil now falls back to the wall
// clock.
func NewEngine(cat *catalog.Catalog, led *ledger.Ledger, roller *roll.Engine, boosts *gameevent.Manager, bus event.Bus, recipes []Recipe, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		pending: make(map[string]*Pending),
		cat:     cat,
		led:     led,
		roller:  roller,
		boosts:  boosts,
		bus:     bus,
		recipes: recipes,
		now:     now,
	}
}

// Recipes lists the loaded craft and trade recipes.
func (e *Engine) Recipes() []Recipe {
	out := make([]Recipe, len(e.recipes))
	copy(out, e.recipes)
	return out
}

func (e *Engine) findRecipe(id string) (Recipe, bool) {
	for _, r := range e.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "type", evt.Type, "error", err)
	}
}

// Fuse consumes exactly three items and schedules a random outcome. The
// outcome is rolled now, at the luck odds in force now, so boost timing
// matters at initiation rather than at delivery.
func (e *Engine) Fuse(ctx context.Context, instanceIDs []string) (Pending, error) {
	if len(instanceIDs) != domain.FuseIngredientCount {
		return Pending{}, domain.ErrInvalidSelection
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.pending[KindFuse]; busy {
		return Pending{}, domain.ErrConversionPending
	}

	consumed, err := e.led.ConsumeInstances(instanceIDs)
	if err != nil {
		return Pending{}, err
	}

	arch := e.roller.RollFuse(e.boosts != nil && e.boosts.IsFuseLuckActive())
	result := catalog.Stamp(arch, domain.MutationFused, domain.FuseMultiplier)
	p := &Pending{Kind: KindFuse, Result: result, ReadyAt: e.now().Add(FuseDelay)}
	e.pending[KindFuse] = p

	ids := make([]string, len(consumed))
	for i, inst := range consumed {
		ids[i] = inst.InstanceID
	}
	e.publish(ctx, event.NewConversionStartedEvent(KindFuse, ids, p.ReadyAt))
	return *p, nil
}

// Craft consumes a recipe's bill of materials and schedules the fixed
// result.
func (e *Engine) Craft(ctx context.Context, recipeID string) (Pending, error) {
	recipe, ok := e.findRecipe(recipeID)
	if !ok || recipe.Kind != KindCraft {
		return Pending{}, domain.ErrRecipeNotFound
	}

	arch, ok := e.cat.ByName(recipe.Result)
	if !ok {
		return Pending{}, domain.ErrItemNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.pending[KindCraft]; busy {
		return Pending{}, domain.ErrConversionPending
	}

	consumed, err := e.led.ConsumeByNames(recipe.BillOfMaterials())
	if err != nil {
		return Pending{}, err
	}

	result := catalog.Stamp(arch, domain.MutationCrafted, domain.RecipeMultiplier)
	p := &Pending{Kind: KindCraft, Result: result, ReadyAt: e.now().Add(CraftDelay)}
	e.pending[KindCraft] = p

	ids := make([]string, len(consumed))
	for i, inst := range consumed {
		ids[i] = inst.InstanceID
	}
	e.publish(ctx, event.NewConversionStartedEvent(KindCraft, ids, p.ReadyAt))
	return *p, nil
}

// Trade swaps a recipe's ingredients for its result immediately.
func (e *Engine) Trade(ctx context.Context, recipeID string) (domain.Instance, error) {
	recipe, ok := e.findRecipe(recipeID)
	if !ok || recipe.Kind != KindTrade {
		return domain.Instance{}, domain.ErrRecipeNotFound
	}

	arch, ok := e.cat.ByName(recipe.Result)
	if !ok {
		return domain.Instance{}, domain.ErrItemNotFound
	}

	if _, err := e.led.ConsumeByNames(recipe.BillOfMaterials()); err != nil {
		return domain.Instance{}, err
	}

	result := catalog.Stamp(arch, domain.MutationTraded, domain.RecipeMultiplier)
	e.led.GrantLoot(ctx, result, ledger.SourceConversion)
	e.publish(ctx, event.NewConversionCompletedEvent(KindTrade, result, false))
	return result, nil
}

// Pending lists the in-flight conversions.
func (e *Engine) Pending() []Pending {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Pending, 0, len(e.pending))
	for _, kind := range []string{KindFuse, KindCraft} {
		if p, ok := e.pending[kind]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// Skip pays the fee and delivers the pending conversion immediately.
func (e *Engine) Skip(ctx context.Context, kind string) (domain.Instance, error) {
	e.mu.Lock()
	p, ok := e.pending[kind]
	if !ok {
		e.mu.Unlock()
		return domain.Instance{}, domain.ErrNoPendingConversion
	}
	if err := e.led.Debit(ctx, domain.SkipWaitFee); err != nil {
		e.mu.Unlock()
		return domain.Instance{}, err
	}
	delete(e.pending, kind)
	e.mu.Unlock()

	e.led.GrantLoot(ctx, p.Result, ledger.SourceConversion)
	e.publish(ctx, event.NewConversionCompletedEvent(p.Kind, p.Result, true))
	return p.Result, nil
}

// CompleteReady delivers every conversion whose timer has run out. Returns
// the number delivered.
func (e *Engine) CompleteReady(ctx context.Context) int {
	e.mu.Lock()
	var ready []*Pending
	for kind, p := range e.pending {
		if !e.now().Before(p.ReadyAt) {
			ready = append(ready, p)
			delete(e.pending, kind)
		}
	}
	e.mu.Unlock()

	for _, p := range ready {
		e.led.GrantLoot(ctx, p.Result, ledger.SourceConversion)
		e.publish(ctx, event.NewConversionCompletedEvent(p.Kind, p.Result, false))
	}
	return len(ready)
}

// PollJob adapts CompleteReady to the worker pool.
type PollJob struct {
	Engine *Engine
}

// Process delivers any finished conversions.
func (j *PollJob) Process(ctx context.Context) error {
	j.Engine.CompleteReady(ctx)
	return nil
}
