package domain

// Pass effect tags.
const (
	PassEffectIncome  = "income"
	PassEffectSpeed   = "speed"
	PassEffectLuck    = "luck"
	PassEffectStorage = "storage"
)

// PassGodID is special-cased: the god pass multiplies both income and luck
// regardless of its effect tag.
const PassGodID = "pass_god"

// GamePass is a one-time idempotent purchase with a permanent effect.
type GamePass struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Effect     string  `json:"effect"`
	Multiplier float64 `json:"multiplier"`
	BonusSlots int     `json:"bonus_slots,omitempty"`
	Icon       string  `json:"icon"`
}

// GamePasses is the full pass shop, in display order.
var GamePasses = []GamePass{
	{ID: "pass_income", Name: "Tycoon Pass", Price: 50_000, Effect: PassEffectIncome, Multiplier: 2, Icon: "💰"},
	{ID: "pass_income_2", Name: "Mogul Pass", Price: 2_500_000, Effect: PassEffectIncome, Multiplier: 3, Icon: "🏦"},
	{ID: "pass_speed", Name: "Speed Demon", Price: 25_000, Effect: PassEffectSpeed, Multiplier: 2, Icon: "👟"},
	{ID: "pass_luck", Name: "Lucky Charm", Price: 100_000, Effect: PassEffectLuck, Multiplier: 2, Icon: "🍀"},
	{ID: "pass_storage", Name: "Hoarder Pass", Price: 75_000, Effect: PassEffectStorage, Multiplier: 1, BonusSlots: 20, Icon: "📦"},
	{ID: PassGodID, Name: "God Pass", Price: 1_000_000_000, Effect: PassEffectIncome, Multiplier: 5, Icon: "⚡"},
}

// FindGamePass returns the pass with the given id.
func FindGamePass(id string) (GamePass, bool) {
	for _, p := range GamePasses {
		if p.ID == id {
			return p, true
		}
	}
	return GamePass{}, false
}

// PassIncomeMultiplier folds the owned income passes (and the god pass) into
// a single factor.
func PassIncomeMultiplier(owned map[string]bool) float64 {
	mult := 1.0
	for _, p := range GamePasses {
		if !owned[p.ID] {
			continue
		}
		if p.Effect == PassEffectIncome || p.ID == PassGodID {
			mult *= p.Multiplier
		}
	}
	return mult
}

// PassLuckMultiplier folds the owned luck passes (and the god pass) into a
// single factor.
func PassLuckMultiplier(owned map[string]bool) float64 {
	mult := 1.0
	for _, p := range GamePasses {
		if !owned[p.ID] {
			continue
		}
		if p.Effect == PassEffectLuck || p.ID == PassGodID {
			mult *= p.Multiplier
		}
	}
	return mult
}
