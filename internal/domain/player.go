package domain

// Player is the full mutable game state for the single local player. All
// access goes through the ledger, which owns the lock.
type Player struct {
	Balance          float64            `json:"balance"`
	Instances        []Instance         `json:"instances"`
	StorageCapacity  int                `json:"storage_capacity"`
	Passes           map[string]bool    `json:"passes"`
	Weapons          map[string]bool    `json:"weapons"`
	HasFastCharger   bool               `json:"has_fast_charger"`
	RebirthTier      int                `json:"rebirth_tier"`
	GlobalMultiplier float64            `json:"global_multiplier"`
	TraitMultiplier  float64            `json:"trait_multiplier"`
}

// NewPlayer returns the starting state: empty inventory, base storage, no
// upgrades.
func NewPlayer() Player {
	return Player{
		Instances:        make([]Instance, 0),
		StorageCapacity:  StorageBaseCapacity,
		Passes:           make(map[string]bool),
		Weapons:          make(map[string]bool),
		GlobalMultiplier: 1,
		TraitMultiplier:  1,
	}
}

// Clone returns a deep copy safe to hand out while the original keeps
// mutating under the ledger lock.
func (p Player) Clone() Player {
	out := p
	out.Instances = make([]Instance, len(p.Instances))
	copy(out.Instances, p.Instances)
	out.Passes = make(map[string]bool, len(p.Passes))
	for k, v := range p.Passes {
		out.Passes[k] = v
	}
	out.Weapons = make(map[string]bool, len(p.Weapons))
	for k, v := range p.Weapons {
		out.Weapons[k] = v
	}
	return out
}

// FindInstance returns the index of the instance with the given id, or -1.
func (p Player) FindInstance(instanceID string) int {
	for i := range p.Instances {
		if p.Instances[i].InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// OwnsAll reports whether every id in instanceIDs is present exactly once.
// Duplicate ids in the input count as missing.
func (p Player) OwnsAll(instanceIDs []string) bool {
	seen := make(map[string]bool, len(instanceIDs))
	for _, id := range instanceIDs {
		if seen[id] {
			return false
		}
		seen[id] = true
		if p.FindInstance(id) == -1 {
			return false
		}
	}
	return true
}
