package catalog

import (
	"fmt"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

const (
	machineCount = 54
	limitedCount = 67
)

// machineSeries builds the 54 machine-shop prototypes. Stats scale linearly
// with the series index; rarity steps up at fixed cutoffs.
func machineSeries() []domain.Archetype {
	out := make([]domain.Archetype, machineCount)
	for i := 0; i < machineCount; i++ {
		rarity := domain.RarityRare
		switch {
		case i > 50:
			rarity = domain.RarityGod
		case i > 40:
			rarity = domain.RarityMythic
		case i > 25:
			rarity = domain.RarityLegendary
		}
		out[i] = domain.Archetype{
			ID:          fmt.Sprintf("machine_mk%d", i+1),
			Name:        fmt.Sprintf("Machine Prototype MK-%d", i+1),
			BaseIncome:  5_000 * float64(i+1),
			Price:       100_000 * float64(i+1),
			Description: fmt.Sprintf("Experimental tablet #%d from the machine.", i+1),
			Rarity:      rarity,
			Icon:        "⚙️",
		}
	}
	return out
}

var (
	limitedPrefixes = []string{"Void", "Star", "Nebula", "Quantum", "Cyber", "Neon", "Solar", "Lunar", "Chrono", "Aero", "Hydro", "Terra", "Pyro", "Electro", "Nano", "Giga", "Omega", "Alpha", "Hyper", "Ultra"}
	limitedSuffixes = []string{"Walker", "Slayer", "Engine", "Core", "Shard", "Plate", "Gate", "Key", "Blade", "Shield", "Link", "Mind", "Soul", "Heart", "Eye", "Hand", "Wing", "Claw", "Fang", "Horn"}
	limitedIcons    = []string{"🏵️", "💠", "🌀", "⚜️", "🔱", "🔰", "⭕", "🧿", "💎", "🛸"}
)

// limitedSeries builds the 67 collectable Limited tablets with readable
// prefix/suffix names.
func limitedSeries() []domain.Archetype {
	out := make([]domain.Archetype, limitedCount)
	for i := 0; i < limitedCount; i++ {
		prefix := limitedPrefixes[i%len(limitedPrefixes)]
		suffix := limitedSuffixes[(i/len(limitedPrefixes))%len(limitedSuffixes)]
		out[i] = domain.Archetype{
			ID:          fmt.Sprintf("limited_%d", i),
			Name:        fmt.Sprintf("The %s %s", prefix, suffix),
			BaseIncome:  250_000_000 + float64(i)*5_000_000,
			Price:       800_000_000 + float64(i)*20_000_000,
			Description: fmt.Sprintf("Limited Edition Series #%d/%d. Collectable.", i+1, limitedCount),
			Rarity:      domain.RarityLimited,
			Icon:        limitedIcons[i%len(limitedIcons)],
		}
	}
	return out
}
