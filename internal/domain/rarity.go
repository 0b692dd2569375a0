package domain

// Rarity classifies archetypes in the catalog. The declaration order below is
// the display order; it carries no gameplay meaning.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
	RarityGod       Rarity = "God"
	RaritySecret    Rarity = "Secret"
	RarityTabletPro Rarity = "Tablet Pro"
	RarityOG        Rarity = "OG"
	RarityOP        Rarity = "OP"
	RarityLimited   Rarity = "Limited"
)

// AllRarities lists every rarity in display order.
var AllRarities = []Rarity{
	RarityCommon,
	RarityRare,
	RarityLegendary,
	RarityMythic,
	RarityGod,
	RaritySecret,
	RarityTabletPro,
	RarityOG,
	RarityOP,
	RarityLimited,
}

// luckBoosted marks the rarities whose weights scale with the luck factor in
// weighted rolls. Everything below God stays at its base weight.
var luckBoosted = map[Rarity]bool{
	RarityGod:    true,
	RaritySecret: true,
	RarityOG:     true,
	RarityOP:     true,
}

// IsLuckBoosted reports whether luck scales this rarity's roll weight.
func (r Rarity) IsLuckBoosted() bool {
	return luckBoosted[r]
}

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	for _, known := range AllRarities {
		if r == known {
			return true
		}
	}
	return false
}
