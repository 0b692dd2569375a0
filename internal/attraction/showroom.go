package attraction

import (
	"context"
	"sync"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
)

// Showroom stocking.
const (
	ShowroomStockSize       = 5
	ShowroomRestockInterval = 5 * time.Minute
)

// Showroom sells a small rotating stock at sticker price. Luck at restock
// time decides how good the shelf is.
type Showroom struct {
	mu        sync.Mutex
	stock     []domain.Archetype
	restocked time.Time

	led    *ledger.Ledger
	roller *roll.Engine
	now    func() time.Time
}

// NewShowroom builds a showroom with an initial stock.
func NewShowroom(led *ledger.Ledger, roller *roll.Engine, now func() time.Time) *Showroom {
	if now == nil {
		now = time.Now
	}
	s := &Showroom{led: led, roller: roller, now: now}
	s.Restock()
	return s
}

// Stock returns the current shelf.
func (s *Showroom) Stock() []domain.Archetype {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Archetype, len(s.stock))
	copy(out, s.stock)
	return out
}

// RestockedAt returns when the shelf last rotated.
func (s *Showroom) RestockedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restocked
}

// Restock rolls a fresh shelf at the current luck factor.
func (s *Showroom) Restock() {
	luck := s.led.BaseLuck() * s.roller.LuckModifier()

	fresh := make([]domain.Archetype, 0, ShowroomStockSize)
	for i := 0; i < ShowroomStockSize; i++ {
		fresh = append(fresh, s.roller.RollShowroom(luck))
	}

	s.mu.Lock()
	s.stock = fresh
	s.restocked = s.now()
	s.mu.Unlock()
}

// Buy purchases one shelf slot at sticker price and removes it.
func (s *Showroom) Buy(ctx context.Context, archetypeID string) (domain.Instance, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.stock {
		if s.stock[i].ID == archetypeID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return domain.Instance{}, domain.ErrItemNotFound
	}
	arch := s.stock[idx]
	s.mu.Unlock()

	inst, err := s.led.BuyArchetype(ctx, arch, ledger.SourceShowroom)
	if err != nil {
		return domain.Instance{}, err
	}

	s.mu.Lock()
	// Re-find: the shelf may have rotated mid-purchase
	for i := range s.stock {
		if s.stock[i].ID == archetypeID {
			s.stock = append(s.stock[:i], s.stock[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return inst, nil
}

// RestockJob adapts Restock to the worker pool.
type RestockJob struct {
	Showroom *Showroom
}

// Process rotates the shelf.
func (j *RestockJob) Process(ctx context.Context) error {
	j.Showroom.Restock()
	return nil
}
