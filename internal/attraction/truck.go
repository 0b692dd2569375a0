// Package attraction holds the city's timed side features: the quantum
// truck, the spin wheel and the showroom floor.
package attraction

import (
	"context"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
)

// TruckPeriod is how long the truck stays, and how long it stays away.
const TruckPeriod = 2 * time.Minute

// TruckOffer is what the truck wants and what it pays.
type TruckOffer struct {
	Open           bool             `json:"open"`
	NextToggle     time.Time        `json:"next_toggle"`
	Wanted         string           `json:"wanted,omitempty"`
	WantedCount    int              `json:"wanted_count,omitempty"`
	Reward         domain.Archetype `json:"reward,omitempty"`
	RewardMutation string           `json:"reward_mutation,omitempty"`
}

// Truck swaps nine copies of a common-tier item for one Limited. The offer
// rotates with each visit and is a pure function of the clock.
type Truck struct {
	cat *catalog.Catalog
	led *ledger.Ledger
	now func() time.Time

	// exchangeable excludes the vault rarities and the Limiteds themselves
	exchangeable []domain.Archetype
}

// NewTruck builds the truck over the catalog.
func NewTruck(cat *catalog.Catalog, led *ledger.Ledger, now func() time.Time) *Truck {
	if now == nil {
		now = time.Now
	}
	t := &Truck{cat: cat, led: led, now: now}
	for _, a := range cat.All() {
		switch a.Rarity {
		case domain.RarityLimited, domain.RaritySecret, domain.RarityOG, domain.RarityOP:
			continue
		}
		t.exchangeable = append(t.exchangeable, a)
	}
	return t
}

// window numbers the truck periods since the epoch. Even windows are open.
func (t *Truck) window(at time.Time) int64 {
	return at.Unix() / int64(TruckPeriod/time.Second)
}

// IsOpen reports whether the truck is parked right now.
func (t *Truck) IsOpen() bool {
	return t.window(t.now())%2 == 0
}

// Offer describes the current (or next) visit's trade.
func (t *Truck) Offer() TruckOffer {
	at := t.now()
	w := t.window(at)
	offer := TruckOffer{
		Open:       w%2 == 0,
		NextToggle: time.Unix((w+1)*int64(TruckPeriod/time.Second), 0),
	}

	limiteds := t.cat.Limiteds()
	if len(limiteds) == 0 || len(t.exchangeable) == 0 {
		return offer
	}
	visit := w / 2 // offers advance once per full open/closed cycle
	limited := limiteds[int(visit)%len(limiteds)]
	wanted := t.exchangeable[int(visit)%len(t.exchangeable)]

	offer.Wanted = wanted.Name
	offer.WantedCount = domain.QuantumCost
	offer.Reward = limited
	offer.RewardMutation = domain.MutationQuantum
	return offer
}

// Exchange hands over nine matching items for the offered Limited.
func (t *Truck) Exchange(ctx context.Context) (domain.Instance, error) {
	offer := t.Offer()
	if !offer.Open || offer.Wanted == "" {
		return domain.Instance{}, domain.ErrNotAvailable
	}

	if _, err := t.led.ConsumeByName(offer.Wanted, offer.WantedCount); err != nil {
		return domain.Instance{}, err
	}

	reward := catalog.Stamp(offer.Reward, domain.MutationQuantum, domain.QuantumMultiplier)
	t.led.GrantGated(ctx, reward, ledger.SourceAttraction)
	return reward, nil
}
