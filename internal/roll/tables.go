package roll

import "github.com/grapnel-games/tablet-tycoon/internal/domain"

// ThresholdEntry maps the open interval (Above, 100] down the cascade: the
// first entry whose bound the roll exceeds wins.
type ThresholdEntry struct {
	Above  float64
	Rarity domain.Rarity
}

// ThresholdTable is a percent-roll cascade. Entries must be ordered from the
// highest bound down; Fallback catches everything below the last bound.
type ThresholdTable struct {
	Name     string
	Entries  []ThresholdEntry
	Fallback domain.Rarity
}

// FuseTable is the normal fusion outcome distribution.
var FuseTable = ThresholdTable{
	Name: "fuse",
	Entries: []ThresholdEntry{
		{Above: 99.9, Rarity: domain.RarityOG},
		{Above: 98.4, Rarity: domain.RaritySecret},
		{Above: 83.4, Rarity: domain.RarityGod},
		{Above: 40.0, Rarity: domain.RarityMythic},
		{Above: 20.0, Rarity: domain.RarityLegendary},
		{Above: 5.0, Rarity: domain.RarityRare},
	},
	Fallback: domain.RarityCommon,
}

// FuseLuckTable replaces FuseTable while the fuse luck boost is active.
// Common drops out entirely.
var FuseLuckTable = ThresholdTable{
	Name: "fuse_luck",
	Entries: []ThresholdEntry{
		{Above: 70, Rarity: domain.RarityOG},
		{Above: 68, Rarity: domain.RaritySecret},
		{Above: 50, Rarity: domain.RarityGod},
		{Above: 30, Rarity: domain.RarityMythic},
		{Above: 10, Rarity: domain.RarityLegendary},
	},
	Fallback: domain.RarityRare,
}

// BulkTable is the coarse distribution used for bulk block opening.
var BulkTable = ThresholdTable{
	Name: "bulk",
	Entries: []ThresholdEntry{
		{Above: 98, Rarity: domain.RarityLegendary},
		{Above: 85, Rarity: domain.RarityRare},
	},
	Fallback: domain.RarityCommon,
}

// BlockTier is one purchasable lucky block with its rarity weight map.
type BlockTier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`

	Weights map[domain.Rarity]float64 `json:"-"`
}

// weightOrder fixes the pool construction order from rarest down; luck only
// scales the first four.
var weightOrder = []domain.Rarity{
	domain.RarityOP,
	domain.RarityOG,
	domain.RaritySecret,
	domain.RarityGod,
	domain.RarityMythic,
	domain.RarityLegendary,
	domain.RarityRare,
	domain.RarityCommon,
}

// BlockTiers is the lucky block shop, cheapest first.
var BlockTiers = []BlockTier{
	{
		ID: "common", Name: "Common Lucky Block", Price: 1_000, Description: "Mostly common items.",
		Weights: map[domain.Rarity]float64{
			domain.RarityCommon: 80, domain.RarityRare: 15, domain.RarityLegendary: 4,
			domain.RarityMythic: 0.9, domain.RarityGod: 0.09, domain.RaritySecret: 0.01,
		},
	},
	{
		ID: "rare", Name: "Rare Lucky Block", Price: 5_000, Description: "Better chance for rare items.",
		Weights: map[domain.Rarity]float64{
			domain.RarityCommon: 50, domain.RarityRare: 40, domain.RarityLegendary: 8,
			domain.RarityMythic: 1.5, domain.RarityGod: 0.4, domain.RaritySecret: 0.1,
		},
	},
	{
		ID: "epic", Name: "Epic Lucky Block", Price: 25_000, Description: "Good chance for Epics.",
		Weights: map[domain.Rarity]float64{
			domain.RarityCommon: 30, domain.RarityRare: 40, domain.RarityLegendary: 20,
			domain.RarityMythic: 8, domain.RarityGod: 1.5, domain.RaritySecret: 0.4, domain.RarityOG: 0.1,
		},
	},
	{
		ID: "legendary", Name: "Legendary Lucky Block", Price: 100_000, Description: "High Legendary chance.",
		Weights: map[domain.Rarity]float64{
			domain.RarityCommon: 10, domain.RarityRare: 20, domain.RarityLegendary: 40,
			domain.RarityMythic: 20, domain.RarityGod: 8, domain.RaritySecret: 1.5, domain.RarityOG: 0.5,
		},
	},
	{
		ID: "mythic", Name: "Mythic Lucky Block", Price: 1_000_000, Description: "Contains Mythics.",
		Weights: map[domain.Rarity]float64{
			domain.RarityRare: 10, domain.RarityLegendary: 30, domain.RarityMythic: 40,
			domain.RarityGod: 15, domain.RaritySecret: 4, domain.RarityOG: 1,
		},
	},
	{
		ID: "secret", Name: "Secret Lucky Block", Price: 500_000_000, Description: "High chance for Secrets.",
		Weights: map[domain.Rarity]float64{
			domain.RarityLegendary: 10, domain.RarityMythic: 30, domain.RarityGod: 30,
			domain.RaritySecret: 20, domain.RarityOG: 10,
		},
	},
	{
		// The only block with a shot at OP
		ID: "og", Name: "OG Lucky Block", Price: 10_000_000_000, Description: "The ultimate gamble.",
		Weights: map[domain.Rarity]float64{
			domain.RarityMythic: 10, domain.RarityGod: 20, domain.RaritySecret: 30,
			domain.RarityOG: 40, domain.RarityOP: 0.1,
		},
	},
}

// FindBlockTier returns the block tier with the given id.
func FindBlockTier(id string) (BlockTier, bool) {
	for _, t := range BlockTiers {
		if t.ID == id {
			return t, true
		}
	}
	return BlockTier{}, false
}

// BulkOffer is a fixed-size bulk block purchase.
type BulkOffer struct {
	Count int     `json:"count"`
	Price float64 `json:"price"`
}

// BulkOffers lists the bulk deals.
var BulkOffers = []BulkOffer{
	{Count: 3, Price: 7_221},
	{Count: 20, Price: 25_000},
	{Count: 50, Price: 121_000},
}

// FindBulkOffer returns the bulk offer for the given count.
func FindBulkOffer(count int) (BulkOffer, bool) {
	for _, o := range BulkOffers {
		if o.Count == count {
			return o, true
		}
	}
	return BulkOffer{}, false
}

// MysteryBoxPrice is the legacy mystery box sticker price.
const MysteryBoxPrice = 1_000.0

// mysteryCascade maps the legacy box roll (0-100, inclusive bounds) straight
// to archetype ids. The gaps are intentional; the Horrible absorbs the rest.
var mysteryCascade = []struct {
	UpTo        float64
	ArchetypeID string
}{
	{UpTo: 0.01, ArchetypeID: "la_og"},
	{UpTo: 0.51, ArchetypeID: "la_secret"},
	{UpTo: 1.51, ArchetypeID: "hotspot"},
	{UpTo: 6.51, ArchetypeID: "good_tablet"},
}

// mysteryFallbackID is what the mystery box yields the vast majority of the time.
const mysteryFallbackID = "horrible"

// Showroom bucket chances, each scaled by the luck factor.
const (
	showroomGodChance  = 0.05
	showroomLegChance  = 0.15
	showroomRareChance = 0.30
)
