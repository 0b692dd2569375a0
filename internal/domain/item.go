package domain

// Archetype is a catalog entry: the immutable definition an owned instance is
// stamped from.
type Archetype struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BaseIncome  float64 `json:"base_income"`
	Price       float64 `json:"price"`
	Rarity      Rarity  `json:"rarity"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`

	// MutationMultiplier overrides the default 1x for a few catalog entries
	// that ship with a built-in multiplier. Zero means unset.
	MutationMultiplier float64 `json:"mutation_multiplier,omitempty"`
}

// Mutation names stamped onto instances by the surface that produced them.
const (
	MutationFused   = "Fused"
	MutationCrafted = "Crafted"
	MutationTraded  = "Traded"
	MutationQuantum = "Quantum"
	MutationLucky   = "Lucky"
	MutationBulk    = "Bulk"
	MutationStarter = "Starter"
	MutationOG      = "OG"
)

// Instance is an owned copy of an archetype. Income-relevant fields are
// denormalized at acquisition time so later catalog edits never change owned
// items.
type Instance struct {
	InstanceID  string  `json:"instance_id"`
	ArchetypeID string  `json:"archetype_id"`
	Name        string  `json:"name"`
	BaseIncome  float64 `json:"base_income"`
	Price       float64 `json:"price"`
	Rarity      Rarity  `json:"rarity"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`

	Mutation           string  `json:"mutation,omitempty"`
	MutationMultiplier float64 `json:"mutation_multiplier"`
	Battery            float64 `json:"battery"`
}

// IncomeContribution is the instance's share of the base income rate. An
// instance with a drained battery contributes nothing.
func (i Instance) IncomeContribution() float64 {
	if i.Battery <= 0 {
		return 0
	}
	mult := i.MutationMultiplier
	if mult == 0 {
		mult = 1
	}
	return i.BaseIncome * mult
}

// Weapon is a cosmetic-leaning sidearm; the amulet is the one with a gameplay
// effect (flat luck bonus).
type Weapon struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Icon      string  `json:"icon"`
	LuckBonus float64 `json:"luck_bonus,omitempty"`
}
