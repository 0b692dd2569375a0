package domain

// BaseIncome sums the per-second income of every powered instance.
func BaseIncome(p *Player) float64 {
	var total float64
	for i := range p.Instances {
		total += p.Instances[i].IncomeContribution()
	}
	return total
}

// FinalMultiplier combines every persistent income multiplier. Boost events
// are additive and excluded here.
func FinalMultiplier(p *Player) float64 {
	return p.GlobalMultiplier *
		PassIncomeMultiplier(p.Passes) *
		RebirthMultiplier(p.RebirthTier) *
		p.TraitMultiplier
}

// IncomeRate is the full per-second payout including the active event boost.
func IncomeRate(p *Player, eventBoost float64) float64 {
	return BaseIncome(p)*FinalMultiplier(p) + eventBoost
}

// BaseLuck is the player-owned part of the luck factor: weapon bonuses on top
// of 1, scaled by luck passes. Admin overrides and temporary buffs stack on
// elsewhere.
func BaseLuck(p *Player) float64 {
	luck := 1.0
	for id, owned := range p.Weapons {
		if !owned {
			continue
		}
		if w, ok := FindWeapon(id); ok {
			luck += w.LuckBonus
		}
	}
	return luck * PassLuckMultiplier(p.Passes)
}
