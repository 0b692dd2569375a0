package attraction

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
)

// Wheel timings and prize tuning.
const (
	WheelCooldown = 5 * time.Minute

	wheelIncomeBuffFactor   = 10
	wheelIncomeBuffSeconds  = 300
	wheelLuckBuffFactor     = 2
	wheelLuckBuffDuration   = 5 * time.Minute
	wheelSpeedBuffDuration  = time.Minute
	wheelSmallCashPrize     = 1_000_000.0
	wheelBigCashPrize       = 100_000_000.0
	wheelFreeBlockTier      = "legendary"
)

// Wheel prize kinds.
const (
	PrizeIncomeBuff    = "income_buff"
	PrizeSmallCash     = "small_cash"
	PrizeFreeBlock     = "free_block"
	PrizeSpeedBuff     = "speed_buff"
	PrizeBigCash       = "big_cash"
	PrizeRandomLimited = "random_limited"
	PrizeNothing       = "nothing"
	PrizeLuckBuff      = "luck_buff"
)

// wheelSegments is the spin layout, equal odds per segment.
var wheelSegments = []string{
	PrizeIncomeBuff,
	PrizeSmallCash,
	PrizeFreeBlock,
	PrizeSpeedBuff,
	PrizeBigCash,
	PrizeRandomLimited,
	PrizeNothing,
	PrizeLuckBuff,
}

// SpinResult reports what a spin paid out.
type SpinResult struct {
	Prize       string           `json:"prize"`
	Cash        float64          `json:"cash,omitempty"`
	Item        *domain.Instance `json:"item,omitempty"`
	Granted     bool             `json:"granted,omitempty"`
	BuffEndsAt  *time.Time       `json:"buff_ends_at,omitempty"`
	NextSpinAt  time.Time        `json:"next_spin_at"`
	Description string           `json:"description"`
}

// Wheel is the five-minute prize wheel.
type Wheel struct {
	mu          sync.Mutex
	nextSpinAt  time.Time
	speedUntil  time.Time

	cat    *catalog.Catalog
	led    *ledger.Ledger
	roller *roll.Engine
	boosts *gameevent.Manager
	rnd    func() float64
	now    func() time.Time
}

// NewWheel builds a wheel that is immediately ready to spin.
func NewWheel(cat *catalog.Catalog, led *ledger.Ledger, roller *roll.Engine, boosts *gameevent.Manager, rnd func() float64, now func() time.Time) *Wheel {
	if rnd == nil {
		rnd = rand.Float64
	}
	if now == nil {
		now = time.Now
	}
	return &Wheel{cat: cat, led: led, roller: roller, boosts: boosts, rnd: rnd, now: now}
}

// CanSpin reports whether the cooldown has lapsed.
func (w *Wheel) CanSpin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.now().Before(w.nextSpinAt)
}

// NextSpinAt returns when the wheel unlocks.
func (w *Wheel) NextSpinAt() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nextSpinAt
}

// SpeedBoostActiveUntil reports the cosmetic speed buff expiry.
func (w *Wheel) SpeedBoostActiveUntil() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.speedUntil
}

// Spin resolves one wheel spin and starts the cooldown.
func (w *Wheel) Spin(ctx context.Context) (SpinResult, error) {
	w.mu.Lock()
	at := w.now()
	if at.Before(w.nextSpinAt) {
		w.mu.Unlock()
		return SpinResult{}, domain.ErrNotAvailable
	}
	w.nextSpinAt = at.Add(WheelCooldown)

	idx := int(w.rnd() * float64(len(wheelSegments)))
	if idx >= len(wheelSegments) {
		idx = len(wheelSegments) - 1
	}
	prize := wheelSegments[idx]
	w.mu.Unlock()

	result := SpinResult{Prize: prize, NextSpinAt: at.Add(WheelCooldown)}
	switch prize {
	case PrizeIncomeBuff:
		// Paid as a lump sum of the boosted window
		var boost float64
		if w.boosts != nil {
			boost = w.boosts.CurrentBoost(ctx)
		}
		player := w.led.Snapshot()
		payout := domain.IncomeRate(&player, boost) * wheelIncomeBuffFactor * wheelIncomeBuffSeconds
		w.led.Credit(ctx, payout)
		result.Cash = payout
		result.Description = "Income surge!"

	case PrizeSmallCash:
		w.led.Credit(ctx, wheelSmallCashPrize)
		result.Cash = wheelSmallCashPrize
		result.Description = "Cash prize!"

	case PrizeFreeBlock:
		tier, _ := roll.FindBlockTier(wheelFreeBlockTier)
		luck := w.led.BaseLuck() * w.roller.LuckModifier()
		inst := catalog.Stamp(w.roller.OpenBlock(tier, luck), domain.MutationLucky, 0)
		result.Granted = w.led.GrantGated(ctx, inst, ledger.SourceAttraction)
		result.Item = &inst
		result.Description = "Free " + tier.Name + "!"

	case PrizeSpeedBuff:
		until := at.Add(wheelSpeedBuffDuration)
		w.mu.Lock()
		w.speedUntil = until
		w.mu.Unlock()
		result.BuffEndsAt = &until
		result.Description = "Gotta go fast!"

	case PrizeBigCash:
		w.led.Credit(ctx, wheelBigCashPrize)
		result.Cash = wheelBigCashPrize
		result.Description = "Jackpot!"

	case PrizeRandomLimited:
		limiteds := w.cat.Limiteds()
		li := int(w.rnd() * float64(len(limiteds)))
		if li >= len(limiteds) {
			li = len(limiteds) - 1
		}
		inst := catalog.Stamp(limiteds[li], domain.MutationLucky, 0)
		result.Granted = w.led.GrantGated(ctx, inst, ledger.SourceAttraction)
		result.Item = &inst
		result.Description = "A Limited Edition!"

	case PrizeNothing:
		result.Description = "Better luck next time."

	case PrizeLuckBuff:
		until := at.Add(wheelLuckBuffDuration)
		w.roller.SetBlockLuck(wheelLuckBuffFactor, until)
		result.BuffEndsAt = &until
		result.Description = "Luck doubled!"
	}

	return result, nil
}
