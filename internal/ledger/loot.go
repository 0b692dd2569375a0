package ledger

import (
	"context"
	"math"
	"sort"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// PurchaseLoot charges the price and then tries to store the rolled item.
// The purchase stands even when storage is full: the money is gone and the
// item is forfeited. Returns whether the item actually landed.
func (l *Ledger) PurchaseLoot(ctx context.Context, itemID, itemName string, price float64, inst domain.Instance) (bool, error) {
	l.mu.Lock()
	if err := l.spend(price); err != nil {
		l.mu.Unlock()
		return false, err
	}
	granted := len(l.player.Instances) < l.player.StorageCapacity
	if granted {
		l.player.Instances = append(l.player.Instances, inst)
	}
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent(itemID, itemName, price))
	if granted {
		l.publish(ctx, event.NewLootGrantedEvent(inst, itemID))
		return true, nil
	}

	logger.FromContext(ctx).Info(LogMsgLootForfeited, "item", inst.Name, "rarity", inst.Rarity)
	l.publish(ctx, event.NewLootForfeitedEvent(inst.Name, string(inst.Rarity), itemID))
	return false, nil
}

// PurchaseBulk is all-or-nothing: it refuses up front when the batch cannot
// fit, so bulk buyers never pay for forfeited items.
func (l *Ledger) PurchaseBulk(ctx context.Context, itemID, itemName string, price float64, insts []domain.Instance) error {
	l.mu.Lock()
	if len(l.player.Instances)+len(insts) > l.player.StorageCapacity {
		l.mu.Unlock()
		return domain.ErrInventoryFull
	}
	if err := l.spend(price); err != nil {
		l.mu.Unlock()
		return err
	}
	l.player.Instances = append(l.player.Instances, insts...)
	l.mu.Unlock()

	l.publish(ctx, event.NewItemBoughtEvent(itemID, itemName, price))
	for _, inst := range insts {
		l.publish(ctx, event.NewLootGrantedEvent(inst, itemID))
	}
	return nil
}

// GrantLoot stores an item without charging or checking capacity. Conversion
// rewards land through here so consumed ingredients are never lost to a full
// storage.
func (l *Ledger) GrantLoot(ctx context.Context, inst domain.Instance, source string) {
	l.mu.Lock()
	l.player.Instances = append(l.player.Instances, inst)
	l.mu.Unlock()

	l.publish(ctx, event.NewLootGrantedEvent(inst, source))
}

// GrantGated stores an item if there is room, forfeiting it otherwise.
func (l *Ledger) GrantGated(ctx context.Context, inst domain.Instance, source string) bool {
	l.mu.Lock()
	granted := len(l.player.Instances) < l.player.StorageCapacity
	if granted {
		l.player.Instances = append(l.player.Instances, inst)
	}
	l.mu.Unlock()

	if granted {
		l.publish(ctx, event.NewLootGrantedEvent(inst, source))
		return true
	}
	logger.FromContext(ctx).Info(LogMsgLootForfeited, "item", inst.Name, "rarity", inst.Rarity)
	l.publish(ctx, event.NewLootForfeitedEvent(inst.Name, string(inst.Rarity), source))
	return false
}

// Sell removes an instance and credits half its sticker price, rounded down.
func (l *Ledger) Sell(ctx context.Context, instanceID string) (float64, error) {
	l.mu.Lock()
	idx := l.player.FindInstance(instanceID)
	if idx == -1 {
		l.mu.Unlock()
		return 0, domain.ErrInstanceNotFound
	}
	inst := l.player.Instances[idx]
	l.player.Instances = append(l.player.Instances[:idx], l.player.Instances[idx+1:]...)
	proceeds := math.Floor(inst.Price * domain.SellRate)
	l.setBalance(l.player.Balance + proceeds)
	l.mu.Unlock()

	l.publish(ctx, event.NewItemSoldEvent(inst, proceeds))
	return proceeds, nil
}

// ConsumeInstances removes the given instances atomically. Either every id is
// present exactly once and all are removed, or nothing changes.
func (l *Ledger) ConsumeInstances(instanceIDs []string) ([]domain.Instance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.player.OwnsAll(instanceIDs) {
		return nil, domain.ErrInvalidSelection
	}

	consumed := make([]domain.Instance, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		idx := l.player.FindInstance(id)
		consumed = append(consumed, l.player.Instances[idx])
		l.player.Instances = append(l.player.Instances[:idx], l.player.Instances[idx+1:]...)
	}
	return consumed, nil
}

// ConsumeByName removes up to count instances whose display name matches.
// Fails without changes when fewer than count are owned.
func (l *Ledger) ConsumeByName(name string, count int) ([]domain.Instance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var idxs []int
	for i := range l.player.Instances {
		if l.player.Instances[i].Name == name {
			idxs = append(idxs, i)
			if len(idxs) == count {
				break
			}
		}
	}
	if len(idxs) < count {
		return nil, domain.ErrInvalidSelection
	}

	consumed := make([]domain.Instance, 0, count)
	// Remove back to front so earlier indexes stay valid.
	for i := len(idxs) - 1; i >= 0; i-- {
		idx := idxs[i]
		consumed = append(consumed, l.player.Instances[idx])
		l.player.Instances = append(l.player.Instances[:idx], l.player.Instances[idx+1:]...)
	}
	return consumed, nil
}

// ConsumeByNames removes instances matching each display name count, all
// under one lock. Either the full bill of materials is available and removed,
// or nothing changes.
func (l *Ledger) ConsumeByNames(counts map[string]int) ([]domain.Instance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var idxs []int
	taken := make(map[int]bool)
	for name, count := range counts {
		found := 0
		for i := range l.player.Instances {
			if taken[i] || l.player.Instances[i].Name != name {
				continue
			}
			taken[i] = true
			idxs = append(idxs, i)
			found++
			if found == count {
				break
			}
		}
		if found < count {
			return nil, domain.ErrInvalidSelection
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
	consumed := make([]domain.Instance, 0, len(idxs))
	for _, idx := range idxs {
		consumed = append(consumed, l.player.Instances[idx])
		l.player.Instances = append(l.player.Instances[:idx], l.player.Instances[idx+1:]...)
	}
	return consumed, nil
}

// CountByName reports how many owned instances share the display name.
func (l *Ledger) CountByName(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for i := range l.player.Instances {
		if l.player.Instances[i].Name == name {
			count++
		}
	}
	return count
}
