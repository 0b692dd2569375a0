// Package ledger owns the single player's mutable state: balance, storage and
// upgrades. Every mutation happens under one lock and is announced on the
// event bus.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
	"github.com/grapnel-games/tablet-tycoon/internal/metrics"
)

// Ledger guards the player state. The clock is injectable for tests.
type Ledger struct {
	mu     sync.Mutex
	player domain.Player
	cat    *catalog.Catalog
	bus    event.Bus
	now    func() time.Time
}

// New creates a ledger with a fresh player. A nil now falls back to the wall
// clock.
func New(cat *catalog.Catalog, bus event.Bus, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		player: domain.NewPlayer(),
		cat:    cat,
		bus:    bus,
		now:    now,
	}
}

// Snapshot returns a deep copy of the player state.
func (l *Ledger) Snapshot() domain.Player {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.player.Clone()
}

// Balance returns the current balance.
func (l *Ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.player.Balance
}

// setBalance must be called with the lock held.
func (l *Ledger) setBalance(v float64) {
	l.player.Balance = v
	metrics.PlayerBalance.Set(v)
}

// spend must be called with the lock held.
func (l *Ledger) spend(amount float64) error {
	if l.player.Balance < amount {
		return domain.ErrInsufficientFunds
	}
	l.setBalance(l.player.Balance - amount)
	return nil
}

func (l *Ledger) publish(ctx context.Context, evt event.Event) {
	if l.bus == nil {
		return
	}
	if err := l.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// Debit removes money with no item attached, e.g. skip fees.
func (l *Ledger) Debit(ctx context.Context, amount float64) error {
	l.mu.Lock()
	err := l.spend(amount)
	l.mu.Unlock()
	if err != nil {
		return err
	}
	metrics.MoneySpent.Add(amount)
	return nil
}

// Credit adds money from any non-purchase source.
func (l *Ledger) Credit(ctx context.Context, amount float64) {
	l.mu.Lock()
	l.setBalance(l.player.Balance + amount)
	l.mu.Unlock()
	metrics.MoneyEarned.Add(amount)
}

// Click pays out one manual click, scaled by every persistent multiplier.
func (l *Ledger) Click(ctx context.Context) float64 {
	l.mu.Lock()
	gain := domain.ClickBaseGain * domain.FinalMultiplier(&l.player)
	l.setBalance(l.player.Balance + gain)
	l.mu.Unlock()
	metrics.MoneyEarned.Add(gain)
	return gain
}

// WatchAd pays the ad reward, which scales with the size of the collection.
func (l *Ledger) WatchAd(ctx context.Context) float64 {
	l.mu.Lock()
	count := len(l.player.Instances)
	if count < 1 {
		count = 1
	}
	reward := domain.AdRewardPerItem * float64(count)
	l.setBalance(l.player.Balance + reward)
	l.mu.Unlock()
	metrics.MoneyEarned.Add(reward)
	return reward
}

// Tick runs one income second: credit the full rate, then drain batteries.
// Returns the credited amount.
func (l *Ledger) Tick(ctx context.Context, eventBoost float64) float64 {
	l.mu.Lock()
	rate := domain.IncomeRate(&l.player, eventBoost)
	l.setBalance(l.player.Balance + rate)
	for i := range l.player.Instances {
		b := l.player.Instances[i].Battery - domain.BatteryDrainPerTick
		if b < 0 {
			b = 0
		}
		l.player.Instances[i].Battery = b
	}
	l.mu.Unlock()

	metrics.MoneyEarned.Add(rate)
	metrics.IncomeRate.Set(rate)
	return rate
}

// BaseLuck returns the player-owned luck factor (weapons and passes).
func (l *Ledger) BaseLuck() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.BaseLuck(&l.player)
}

// SetGlobalMultiplier overrides the bought income multiplier. Admin only,
// values below 1 are rejected.
func (l *Ledger) SetGlobalMultiplier(mult float64) error {
	if mult < 1 {
		return domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.player.GlobalMultiplier = mult
	return nil
}

// SetTraitMultiplier overrides the trait income factor. Admin only.
func (l *Ledger) SetTraitMultiplier(mult float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if mult <= 0 {
		mult = 1
	}
	l.player.TraitMultiplier = mult
}
