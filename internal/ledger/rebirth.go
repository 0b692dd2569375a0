package ledger

import (
	"context"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
)

// RebirthStatus describes the next rebirth on offer.
type RebirthStatus struct {
	CurrentTier       int     `json:"current_tier"`
	CurrentMultiplier float64 `json:"current_multiplier"`
	NextTier          int     `json:"next_tier,omitempty"`
	NextCost          float64 `json:"next_cost,omitempty"`
	NextMultiplier    float64 `json:"next_multiplier,omitempty"`
	CanAfford         bool    `json:"can_afford"`
	AtMax             bool    `json:"at_max"`
}

// RebirthStatus reports the current tier and what the next one costs.
func (l *Ledger) RebirthStatus() RebirthStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	status := RebirthStatus{
		CurrentTier:       l.player.RebirthTier,
		CurrentMultiplier: domain.RebirthMultiplier(l.player.RebirthTier),
	}
	next, ok := domain.NextRebirthTier(l.player.RebirthTier)
	if !ok {
		status.AtMax = true
		return status
	}
	status.NextTier = next.Level
	status.NextCost = next.Cost
	status.NextMultiplier = next.Multiplier
	status.CanAfford = l.player.Balance >= next.Cost
	return status
}

// Rebirth trades the whole run for a permanent income multiplier. Balance,
// items, weapons and bought upgrades reset; passes and the rebirth tier
// survive.
func (l *Ledger) Rebirth(ctx context.Context) (domain.RebirthTier, error) {
	l.mu.Lock()
	next, ok := domain.NextRebirthTier(l.player.RebirthTier)
	if !ok {
		l.mu.Unlock()
		return domain.RebirthTier{}, domain.ErrMaxRebirth
	}
	if l.player.Balance < next.Cost {
		l.mu.Unlock()
		return domain.RebirthTier{}, domain.ErrInsufficientFunds
	}

	l.setBalance(0)
	l.player.Instances = l.player.Instances[:0]
	l.player.Weapons = make(map[string]bool)
	l.player.StorageCapacity = domain.StorageBaseCapacity
	l.player.HasFastCharger = false
	l.player.GlobalMultiplier = 1
	l.player.RebirthTier = next.Level
	l.mu.Unlock()

	l.publish(ctx, event.NewRebirthCompletedEvent(next.Level, next.Multiplier))
	return next, nil
}

// SetRebirthTier jumps the prestige level without the usual reset. Admin only.
func (l *Ledger) SetRebirthTier(tier int) error {
	if tier < 0 || tier > len(domain.RebirthTiers) {
		return domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.player.RebirthTier = tier
	return nil
}
