package ledger

import (
	"context"
	"math"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
)

// BuyArchetype buys a catalog item at sticker price. Unlike lucky blocks the
// outcome is known, so a full storage refuses the sale up front.
func (l *Ledger) BuyArchetype(ctx context.Context, arch domain.Archetype, source string) (domain.Instance, error) {
	inst := catalog.Stamp(arch, "", 0)

	l.mu.Lock()
	if len(l.player.Instances) >= l.player.StorageCapacity {
		l.mu.Unlock()
		return domain.Instance{}, domain.ErrInventoryFull
	}
	if err := l.spend(arch.Price); err != nil {
		l.mu.Unlock()
		return domain.Instance{}, err
	}
	l.player.Instances = append(l.player.Instances, inst)
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent(arch.ID, arch.Name, arch.Price))
	l.publish(ctx, event.NewLootGrantedEvent(inst, source))
	return inst, nil
}

// StorageUpgradeCost prices the next ten slots; each upgrade costs more than
// the last.
func (l *Ledger) StorageUpgradeCost() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return storageUpgradeCost(l.player.StorageCapacity)
}

func storageUpgradeCost(capacity int) float64 {
	steps := (float64(capacity) - domain.StorageBaselineSlots) / float64(domain.StorageUpgradeSlots)
	return domain.StorageUpgradeBase + steps*domain.StorageUpgradeStep
}

// BuyStorageUpgrade adds slots at the scaling price.
func (l *Ledger) BuyStorageUpgrade(ctx context.Context) (int, error) {
	l.mu.Lock()
	cost := storageUpgradeCost(l.player.StorageCapacity)
	if err := l.spend(cost); err != nil {
		l.mu.Unlock()
		return 0, err
	}
	l.player.StorageCapacity += domain.StorageUpgradeSlots
	capacity := l.player.StorageCapacity
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent("storage_upgrade", "Storage Upgrade", cost))
	return capacity, nil
}

// BuyFastCharger buys the one-time charger upgrade.
func (l *Ledger) BuyFastCharger(ctx context.Context) error {
	l.mu.Lock()
	if l.player.HasFastCharger {
		l.mu.Unlock()
		return domain.ErrAlreadyOwned
	}
	if err := l.spend(domain.FastChargerPrice); err != nil {
		l.mu.Unlock()
		return err
	}
	l.player.HasFastCharger = true
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent("fast_charger", "Fast Charger", domain.FastChargerPrice))
	return nil
}

// BuyPass buys a game pass once. The storage pass grants its bonus slots
// immediately.
func (l *Ledger) BuyPass(ctx context.Context, passID string) error {
	pass, ok := domain.FindGamePass(passID)
	if !ok {
		return domain.ErrItemNotFound
	}

	l.mu.Lock()
	if l.player.Passes[pass.ID] {
		l.mu.Unlock()
		return domain.ErrAlreadyOwned
	}
	if err := l.spend(pass.Price); err != nil {
		l.mu.Unlock()
		return err
	}
	l.player.Passes[pass.ID] = true
	l.player.StorageCapacity += pass.BonusSlots
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent(pass.ID, pass.Name, pass.Price))
	return nil
}

// BuyWeapon buys a weapon once.
func (l *Ledger) BuyWeapon(ctx context.Context, weaponID string) error {
	weapon, ok := domain.FindWeapon(weaponID)
	if !ok {
		return domain.ErrItemNotFound
	}

	l.mu.Lock()
	if l.player.Weapons[weapon.ID] {
		l.mu.Unlock()
		return domain.ErrAlreadyOwned
	}
	if err := l.spend(weapon.Price); err != nil {
		l.mu.Unlock()
		return err
	}
	l.player.Weapons[weapon.ID] = true
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent(weapon.ID, weapon.Name, weapon.Price))
	return nil
}

// GlobalMultiplierCost prices the next doubling. Each step costs five times
// the previous one.
func (l *Ledger) GlobalMultiplierCost() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return globalMultiplierCost(l.player.GlobalMultiplier)
}

func globalMultiplierCost(current float64) float64 {
	return domain.GlobalMultiplierBaseCost * math.Pow(5, math.Log2(current))
}

// BuyGlobalMultiplier doubles the global income multiplier.
func (l *Ledger) BuyGlobalMultiplier(ctx context.Context) (float64, error) {
	l.mu.Lock()
	cost := globalMultiplierCost(l.player.GlobalMultiplier)
	if err := l.spend(cost); err != nil {
		l.mu.Unlock()
		return 0, err
	}
	l.player.GlobalMultiplier *= 2
	mult := l.player.GlobalMultiplier
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent("global_multiplier", "Global Multiplier", cost))
	return mult, nil
}

// BuyStarterPack buys a fixed bundle. The whole bundle must fit.
func (l *Ledger) BuyStarterPack(ctx context.Context, pack catalog.StarterPack) ([]domain.Instance, error) {
	var insts []domain.Instance
	var weaponIDs []string
	for _, item := range pack.Items {
		if item.IsWeapon {
			weaponIDs = append(weaponIDs, item.ArchetypeID)
			continue
		}
		arch, ok := l.cat.ByID(item.ArchetypeID)
		if !ok {
			return nil, domain.ErrItemNotFound
		}
		for i := 0; i < item.Count; i++ {
			insts = append(insts, catalog.Stamp(arch, domain.MutationStarter, 0))
		}
	}

	l.mu.Lock()
	if len(l.player.Instances)+len(insts) > l.player.StorageCapacity {
		l.mu.Unlock()
		return nil, domain.ErrInventoryFull
	}
	if err := l.spend(pack.Price); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	l.player.Instances = append(l.player.Instances, insts...)
	for _, id := range weaponIDs {
		l.player.Weapons[id] = true
	}
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent(pack.ID, pack.Name, pack.Price))
	for _, inst := range insts {
		l.publish(ctx, event.NewLootGrantedEvent(inst, SourceStarterPack))
	}
	return insts, nil
}
