package catalog

// StarterPackItem is one line of a starter pack bundle.
type StarterPackItem struct {
	ArchetypeID string `json:"archetype_id"`
	Count       int    `json:"count"`
	IsWeapon    bool   `json:"is_weapon,omitempty"`
}

// StarterPack is a fixed bundle sold once per purchase; items arrive with the
// Starter mutation.
type StarterPack struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Price       float64           `json:"price"`
	Items       []StarterPackItem `json:"items"`
	Description string            `json:"description"`
}

// StarterPacks is the pack shop, in display order.
var StarterPacks = []StarterPack{
	{
		ID:    "noob_pack",
		Name:  "Noob Starter Pack",
		Price: 100,
		Items: []StarterPackItem{
			{ArchetypeID: "paper", Count: 10},
			{ArchetypeID: "cardboard", Count: 5},
		},
		Description: "A small boost for beginners.",
	},
	{
		ID:    "pro_pack",
		Name:  "Pro Thief Pack",
		Price: 5_000,
		Items: []StarterPackItem{
			{ArchetypeID: "ipad", Count: 1},
			{ArchetypeID: "surface_pro", Count: 1},
			{ArchetypeID: "crowbar", Count: 1, IsWeapon: true},
		},
		Description: "Get straight to business.",
	},
}

// FindStarterPack returns the pack with the given id.
func FindStarterPack(id string) (StarterPack, bool) {
	for _, p := range StarterPacks {
		if p.ID == id {
			return p, true
		}
	}
	return StarterPack{}, false
}
