package domain

// Weapons is the sidearm shop. Only the amulet affects rolls.
var Weapons = []Weapon{
	{ID: "crowbar", Name: "Crowbar", Price: 500, Icon: "🔧"},
	{ID: "bat", Name: "Baseball Bat", Price: 2_500, Icon: "🏏"},
	{ID: "katana", Name: "Neon Katana", Price: 50_000, Icon: "⚔️"},
	{ID: "amulet", Name: "Lucky Amulet", Price: 250_000, Icon: "🧿", LuckBonus: 2},
}

// FindWeapon returns the weapon with the given id.
func FindWeapon(id string) (Weapon, bool) {
	for _, w := range Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return Weapon{}, false
}
