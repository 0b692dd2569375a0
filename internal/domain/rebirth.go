package domain

// RebirthTier is one prestige level: the balance required to take it and the
// permanent income multiplier it grants.
type RebirthTier struct {
	Level      int     `json:"level"`
	Cost       float64 `json:"cost"`
	Multiplier float64 `json:"multiplier"`
}

// RebirthTiers is the full prestige ladder. Costs and multipliers are strictly
// increasing; tier 0 (never rebirthed) is implicit with multiplier 1.
var RebirthTiers = []RebirthTier{
	{Level: 1, Cost: 1_200_000, Multiplier: 1.5},
	{Level: 2, Cost: 5_200_000, Multiplier: 2.0},
	{Level: 3, Cost: 10_100_000, Multiplier: 2.5},
	{Level: 4, Cost: 150_000_000, Multiplier: 3.5},
	{Level: 5, Cost: 1_000_000_000, Multiplier: 5.0},
	{Level: 6, Cost: 5_000_000_000, Multiplier: 7.5},
	{Level: 7, Cost: 25_000_000_000, Multiplier: 10.0},
	{Level: 8, Cost: 100_000_000_000, Multiplier: 15.0},
	{Level: 9, Cost: 500_000_000_000, Multiplier: 25.0},
	{Level: 10, Cost: 1_000_000_000_000, Multiplier: 50.0},
	{Level: 11, Cost: 5_000_000_000_000, Multiplier: 100.0},
	{Level: 12, Cost: 15_000_000_000_000, Multiplier: 250.0},
	{Level: 13, Cost: 50_000_000_000_000, Multiplier: 500.0},
	{Level: 14, Cost: 100_000_000_000_000, Multiplier: 1_000.0},
	{Level: 15, Cost: 250_000_000_000_000, Multiplier: 2_500.0},
	{Level: 16, Cost: 500_000_000_000_000, Multiplier: 5_000.0},
	{Level: 17, Cost: 750_000_000_000_000, Multiplier: 10_000.0},
	{Level: 18, Cost: 900_000_000_000_000, Multiplier: 25_000.0},
	{Level: 19, Cost: 999_000_000_000_000, Multiplier: 50_000.0},
	{Level: 20, Cost: 1_100_000_000_000_000, Multiplier: 100_000.0},
}

// RebirthMultiplier returns the income multiplier for a player at the given
// tier. Tiers past the end of the ladder keep the final multiplier.
func RebirthMultiplier(tier int) float64 {
	if tier <= 0 {
		return 1
	}
	if tier > len(RebirthTiers) {
		tier = len(RebirthTiers)
	}
	return RebirthTiers[tier-1].Multiplier
}

// NextRebirthTier returns the tier a player at the given level would take
// next, or false if the ladder is exhausted.
func NextRebirthTier(current int) (RebirthTier, bool) {
	if current < 0 || current >= len(RebirthTiers) {
		return RebirthTier{}, false
	}
	return RebirthTiers[current], true
}
