package ledger

import (
	"context"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

// Charge tops up one instance. The fast charger fills it completely;
// otherwise the battery gains one step.
func (l *Ledger) Charge(ctx context.Context, instanceID string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.player.FindInstance(instanceID)
	if idx == -1 {
		return 0, domain.ErrInstanceNotFound
	}
	l.player.Instances[idx].Battery = chargedLevel(l.player.Instances[idx].Battery, l.player.HasFastCharger)
	return l.player.Instances[idx].Battery, nil
}

// ChargeAll tops up every instance.
func (l *Ledger) ChargeAll(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.player.Instances {
		l.player.Instances[i].Battery = chargedLevel(l.player.Instances[i].Battery, l.player.HasFastCharger)
	}
	return len(l.player.Instances)
}

func chargedLevel(current float64, fastCharger bool) float64 {
	if fastCharger {
		return domain.BatteryMax
	}
	level := current + domain.BatteryChargeStep
	if level > domain.BatteryMax {
		level = domain.BatteryMax
	}
	return level
}
