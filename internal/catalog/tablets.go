package catalog

import "github.com/grapnel-games/tablet-tycoon/internal/domain"

// handListed is the curated part of the catalog, grouped by rarity band.
// Order matters only for display and for the first-entry roll fallback.
var handListed = []domain.Archetype{
	// Special limited
	{ID: "w_or_l", Name: "W or L Tablet", BaseIncome: 500_000_000, Price: 1_000_000_000, Description: "Is it a Win or a Loss? 50/50 stats.", Rarity: domain.RarityLimited, Icon: "⚖️"},

	// Built-in multiplier exclusives
	{ID: "diamond_candy", Name: "Diamond Candy", BaseIncome: 10_000_000, Price: 80_000_000, Description: "Sweet and expensive.", Rarity: domain.RarityGod, Icon: "🍬", MutationMultiplier: 25},
	{ID: "diamond_youtube", Name: "Diamond YouTube", BaseIncome: 15_000_000, Price: 100_000_000, Description: "Stream in 80K resolution. 30x Multiplier applied.", Rarity: domain.RarityGod, Icon: "▶️", MutationMultiplier: 30},
	{ID: "lava", Name: "Lava Tablet", BaseIncome: 12_000_000, Price: 90_000_000, Description: "Don't touch the screen.", Rarity: domain.RarityGod, Icon: "🌋", MutationMultiplier: 25},
	{ID: "galaxy_tab_x", Name: "Galaxy X", BaseIncome: 14_000_000, Price: 95_000_000, Description: "Contains a small universe.", Rarity: domain.RarityGod, Icon: "🌌", MutationMultiplier: 25},

	// Mystery box exclusives
	{ID: "horrible", Name: "The Horrible", BaseIncome: 0.1, Price: 1, Description: "It is terrible. Just awful.", Rarity: domain.RarityCommon, Icon: "💩"},
	{ID: "good_tablet", Name: "The Good Tablet", BaseIncome: 5_000, Price: 500_000, Description: "It's actually quite decent.", Rarity: domain.RarityLegendary, Icon: "👍"},
	{ID: "hotspot", Name: "The Hotspot", BaseIncome: 500_000, Price: 50_000_000, Description: "Radiates internet everywhere.", Rarity: domain.RarityGod, Icon: "📶"},
	{ID: "la_secret", Name: "La Secret Combination", BaseIncome: 50_000_000, Price: 5_000_000_000, Description: "A mystery wrapped in an enigma.", Rarity: domain.RaritySecret, Icon: "🤫"},

	// Common
	{ID: "paper", Name: "Piece of Paper", BaseIncome: 1, Price: 10, Description: "It has a drawing of a screen on it.", Rarity: domain.RarityCommon, Icon: "📄"},
	{ID: "cardboard", Name: "Cardboard Cutout", BaseIncome: 1, Price: 12, Description: "Realistic from a distance.", Rarity: domain.RarityCommon, Icon: "📦"},
	{ID: "rock", Name: "Flat Rock", BaseIncome: 1, Price: 15, Description: "The original tablet. Very durable.", Rarity: domain.RarityCommon, Icon: "🪨"},
	{ID: "toast", Name: "Burnt Toast", BaseIncome: 1, Price: 18, Description: "Looks like a screen if you squint.", Rarity: domain.RarityCommon, Icon: "🍞"},
	{ID: "slate", Name: "Chalk Slate", BaseIncome: 1, Price: 20, Description: "School supplies from 1890.", Rarity: domain.RarityCommon, Icon: "⬛"},
	{ID: "mirror", Name: "Hand Mirror", BaseIncome: 2, Price: 22, Description: "Shows your own reflection.", Rarity: domain.RarityCommon, Icon: "🪞"},
	{ID: "calculator", Name: "Old Calculator", BaseIncome: 2, Price: 25, Description: "Can spell 80085.", Rarity: domain.RarityCommon, Icon: "🧮"},
	{ID: "shingle", Name: "Roof Shingle", BaseIncome: 2, Price: 28, Description: "Rough texture.", Rarity: domain.RarityCommon, Icon: "🏠"},
	{ID: "etch", Name: "Etch-A-Sketch", BaseIncome: 2, Price: 30, Description: "Shake to clear cache.", Rarity: domain.RarityCommon, Icon: "〰️"},
	{ID: "tile", Name: "Bathroom Tile", BaseIncome: 2, Price: 32, Description: "Cold to the touch.", Rarity: domain.RarityCommon, Icon: "⬜"},
	{ID: "tamagotchi", Name: "Digital Pet", BaseIncome: 2, Price: 35, Description: "Don't let it die.", Rarity: domain.RarityCommon, Icon: "🥚"},
	{ID: "brick", Name: "Brick Game", BaseIncome: 3, Price: 40, Description: "9999 in 1 games.", Rarity: domain.RarityCommon, Icon: "🧱"},
	{ID: "plate", Name: "Dinner Plate", BaseIncome: 3, Price: 42, Description: "Ceramic display.", Rarity: domain.RarityCommon, Icon: "🍽️"},
	{ID: "pager", Name: "Beeper Pager", BaseIncome: 3, Price: 45, Description: "Only receives numbers.", Rarity: domain.RarityCommon, Icon: "📟"},
	{ID: "fire_gen1", Name: "Amazon Fire Gen 1", BaseIncome: 3, Price: 50, Description: "Laggy, but functional.", Rarity: domain.RarityCommon, Icon: "🕯️"},
	{ID: "mp3", Name: "Cheap MP3 Player", BaseIncome: 4, Price: 55, Description: "Holds 12 songs.", Rarity: domain.RarityCommon, Icon: "🎵"},
	{ID: "knockoff", Name: "Pony Station", BaseIncome: 4, Price: 60, Description: "Cheap knockoff console.", Rarity: domain.RarityCommon, Icon: "🎮"},
	{ID: "pda", Name: "Palm Pilot", BaseIncome: 4, Price: 65, Description: "Business chic from the 90s.", Rarity: domain.RarityCommon, Icon: "🖊️"},
	{ID: "cracked", Name: "Shattered iPad", BaseIncome: 4, Price: 70, Description: "The screen cuts your fingers.", Rarity: domain.RarityCommon, Icon: "🕸️"},
	{ID: "traffic", Name: "Traffic Sign", BaseIncome: 5, Price: 75, Description: "Stolen from the street.", Rarity: domain.RarityCommon, Icon: "🛑"},
	{ID: "fire", Name: "Amazon Fire HD", BaseIncome: 5, Price: 80, Description: "Basic tablet, low resale value.", Rarity: domain.RarityCommon, Icon: "🔥"},
	{ID: "leapfrog", Name: "LeapFrog Pad", BaseIncome: 5, Price: 90, Description: "For advanced toddlers.", Rarity: domain.RarityCommon, Icon: "🐸"},
	{ID: "nook", Name: "Nook Color", BaseIncome: 6, Price: 110, Description: "Remember these?", Rarity: domain.RarityCommon, Icon: "📚"},
	{ID: "kindle", Name: "E-Reader", BaseIncome: 6, Price: 120, Description: "Black and white screen.", Rarity: domain.RarityCommon, Icon: "📖"},
	{ID: "nexus7", Name: "Nexus 7", BaseIncome: 7, Price: 130, Description: "A classic Android device.", Rarity: domain.RarityCommon, Icon: "🤖"},
	{ID: "blackberry", Name: "PlayBook", BaseIncome: 7, Price: 140, Description: "No email client included.", Rarity: domain.RarityCommon, Icon: "🍇"},

	// Rare
	{ID: "lenovo", Name: "Lenovo Tab", BaseIncome: 8, Price: 150, Description: "Reliable mid-range device.", Rarity: domain.RarityRare, Icon: "💻"},
	{ID: "asus", Name: "ZenPad", BaseIncome: 8, Price: 160, Description: "Decent specs.", Rarity: domain.RarityRare, Icon: "🖥️"},
	{ID: "galaxy_a", Name: "Galaxy Tab A", BaseIncome: 9, Price: 180, Description: "Solid budget choice.", Rarity: domain.RarityRare, Icon: "🌌"},
	{ID: "honor", Name: "Honor Pad", BaseIncome: 9, Price: 190, Description: "Budget friendly.", Rarity: domain.RarityRare, Icon: "🎖️"},
	{ID: "huawei", Name: "Huawei MatePad", BaseIncome: 10, Price: 200, Description: "Popular in overseas markets.", Rarity: domain.RarityRare, Icon: "🌸"},
	{ID: "xiaomi", Name: "Xiaomi Pad 5", BaseIncome: 12, Price: 220, Description: "Great value for money.", Rarity: domain.RarityRare, Icon: "🍚"},
	{ID: "nokia", Name: "Nokia T20", BaseIncome: 13, Price: 230, Description: "Indestructible... maybe.", Rarity: domain.RarityRare, Icon: "🧱"},
	{ID: "crt", Name: "CRT Monitor", BaseIncome: 14, Price: 240, Description: "Heavy and bulky.", Rarity: domain.RarityRare, Icon: "📺"},
	{ID: "galaxy", Name: "Samsung Galaxy Tab S9", BaseIncome: 15, Price: 250, Description: "High-end Android experience.", Rarity: domain.RarityRare, Icon: "🌠"},
	{ID: "ipad_mini", Name: "iPad Mini", BaseIncome: 18, Price: 280, Description: "Small but powerful.", Rarity: domain.RarityRare, Icon: "🤏"},
	{ID: "ipad", Name: "iPad Pro", BaseIncome: 20, Price: 300, Description: "The gold standard of tablets.", Rarity: domain.RarityRare, Icon: "🍎"},
	{ID: "surface_go", Name: "Surface Go", BaseIncome: 22, Price: 350, Description: "A tiny PC in your hand.", Rarity: domain.RarityRare, Icon: "🧊"},
	{ID: "pixel", Name: "Pixel Tablet", BaseIncome: 25, Price: 400, Description: "Comes with a speaker dock.", Rarity: domain.RarityRare, Icon: "🌈"},
	{ID: "remarkable", Name: "ReMarkable 2", BaseIncome: 28, Price: 450, Description: "Paper-like feel.", Rarity: domain.RarityRare, Icon: "📝"},
	{ID: "steamdeck", Name: "Steam Deck", BaseIncome: 30, Price: 480, Description: "It's basically a tablet.", Rarity: domain.RarityRare, Icon: "🕹️"},
	{ID: "surface_pro", Name: "Surface Pro 9", BaseIncome: 35, Price: 600, Description: "Replaces your laptop.", Rarity: domain.RarityRare, Icon: "💼"},
	{ID: "rog", Name: "ROG Flow Z13", BaseIncome: 38, Price: 700, Description: "Gaming tablet.", Rarity: domain.RarityRare, Icon: "👹"},
	{ID: "galaxy_ultra", Name: "Tab S9 Ultra", BaseIncome: 40, Price: 800, Description: "Massive screen real estate.", Rarity: domain.RarityRare, Icon: "📏"},
	{ID: "ipad_m4", Name: "iPad Pro M4", BaseIncome: 50, Price: 1_000, Description: "Overkill for candy crush.", Rarity: domain.RarityRare, Icon: "🚀"},
	{ID: "prototype", Name: "Secret Prototype X", BaseIncome: 60, Price: 1_200, Description: "Stolen from a top-secret lab.", Rarity: domain.RarityRare, Icon: "🧪"},

	// Legendary
	{ID: "rugged", Name: "Panasonic Toughbook", BaseIncome: 65, Price: 1_300, Description: "Can survive a bomb.", Rarity: domain.RarityLegendary, Icon: "🛡️"},
	{ID: "dual_screen", Name: "Gemini Duo", BaseIncome: 70, Price: 1_500, Description: "Two screens are better than one.", Rarity: domain.RarityLegendary, Icon: "📖"},
	{ID: "fold", Name: "Galaxy Z Fold Tab", BaseIncome: 80, Price: 1_800, Description: "Folds three times.", Rarity: domain.RarityLegendary, Icon: "📂"},
	{ID: "tough", Name: "Military Grade Pad", BaseIncome: 90, Price: 2_000, Description: "Bulletproof casing.", Rarity: domain.RarityLegendary, Icon: "🏗️"},
	{ID: "medical", Name: "Medi-Slate", BaseIncome: 100, Price: 2_200, Description: "Used by surgeons.", Rarity: domain.RarityLegendary, Icon: "🏥"},
	{ID: "industrial", Name: "Factory Controller", BaseIncome: 120, Price: 2_500, Description: "Controls assembly lines.", Rarity: domain.RarityLegendary, Icon: "🏭"},
	{ID: "gold", Name: "24k Gold iPad", BaseIncome: 150, Price: 3_000, Description: "Heavy and impractical.", Rarity: domain.RarityLegendary, Icon: "🏆"},
	{ID: "server", Name: "Server Blade", BaseIncome: 180, Price: 3_500, Description: "Why is this a tablet?", Rarity: domain.RarityLegendary, Icon: "💾"},
	{ID: "satellite", Name: "Sat-Link", BaseIncome: 190, Price: 4_000, Description: "Direct link to orbit.", Rarity: domain.RarityLegendary, Icon: "📡"},
	{ID: "diamond", Name: "Diamond Encrusted Tab", BaseIncome: 200, Price: 4_500, Description: "Sparkles distraction.", Rarity: domain.RarityLegendary, Icon: "💎"},
	{ID: "quantum_lite", Name: "Quantum Slate Lite", BaseIncome: 250, Price: 5_000, Description: "Mines crypto passively.", Rarity: domain.RarityLegendary, Icon: "⚛️"},
	{ID: "artist", Name: "Wacom Cintiq Pro", BaseIncome: 300, Price: 6_000, Description: "For professional digital art.", Rarity: domain.RarityLegendary, Icon: "🎨"},
	{ID: "crypto", Name: "Cold Storage Wallet", BaseIncome: 320, Price: 7_000, Description: "Contains lost bitcoin.", Rarity: domain.RarityLegendary, Icon: "🔑"},
	{ID: "fashion", Name: "Gucci Smart Slab", BaseIncome: 350, Price: 8_000, Description: "You pay for the logo.", Rarity: domain.RarityLegendary, Icon: "👜"},
	{ID: "transparent", Name: "Transparent OLED", BaseIncome: 400, Price: 9_000, Description: "See-through technology.", Rarity: domain.RarityLegendary, Icon: "🪟"},
	{ID: "hacker_deck", Name: "Cyberdeck", BaseIncome: 500, Price: 12_000, Description: "Hacks nearby ATMs.", Rarity: domain.RarityLegendary, Icon: "💀"},
	{ID: "holo", Name: "Holo-Projector", BaseIncome: 600, Price: 15_000, Description: "3D displays in thin air.", Rarity: domain.RarityLegendary, Icon: "👻"},
	{ID: "pipboy", Name: "Wrist Computer", BaseIncome: 700, Price: 20_000, Description: "Checks radiation levels.", Rarity: domain.RarityLegendary, Icon: "☢️"},
	{ID: "neural", Name: "Neural Link Pad", BaseIncome: 800, Price: 25_000, Description: "Connects directly to your brain.", Rarity: domain.RarityLegendary, Icon: "🧠"},
	{ID: "implant", Name: "Ocular Implant", BaseIncome: 900, Price: 30_000, Description: "The screen is in your eye.", Rarity: domain.RarityLegendary, Icon: "👁️"},

	// Mythic
	{ID: "flexible", Name: "Liquid Screen", BaseIncome: 1_000, Price: 40_000, Description: "Rolls up like a scroll.", Rarity: domain.RarityMythic, Icon: "🐍"},
	{ID: "dna", Name: "DNA Sequencer", BaseIncome: 1_200, Price: 50_000, Description: "Edits genes on the fly.", Rarity: domain.RarityMythic, Icon: "🧬"},
	{ID: "ai_core", Name: "AI Core Module", BaseIncome: 1_500, Price: 60_000, Description: "Sentient operating system.", Rarity: domain.RarityMythic, Icon: "🤖"},
	{ID: "antigrav", Name: "Floating Monitor", BaseIncome: 2_000, Price: 80_000, Description: "Hovers next to you.", Rarity: domain.RarityMythic, Icon: "🛸"},
	{ID: "drone", Name: "Drone Controller", BaseIncome: 2_500, Price: 90_000, Description: "Commands an army of drones.", Rarity: domain.RarityMythic, Icon: "🚁"},
	{ID: "wood_elf", Name: "Elven Tablet", BaseIncome: 2_800, Price: 120_000, Description: "Grown from a sacred tree.", Rarity: domain.RarityMythic, Icon: "🌳"},
	{ID: "fusion", Name: "Nuclear Battery Tab", BaseIncome: 3_000, Price: 150_000, Description: "Infinite battery life.", Rarity: domain.RarityMythic, Icon: "☢️"},
	{ID: "forcefield", Name: "Shield Generator", BaseIncome: 3_500, Price: 200_000, Description: "Projects a hard light barrier.", Rarity: domain.RarityMythic, Icon: "🛡️"},
	{ID: "hardlight", Name: "Hardlight Interface", BaseIncome: 5_000, Price: 300_000, Description: "Touch solid light.", Rarity: domain.RarityMythic, Icon: "💡"},
	{ID: "dwarven", Name: "Dwarven Slate", BaseIncome: 5_500, Price: 400_000, Description: "Forged in the mountain.", Rarity: domain.RarityMythic, Icon: "🔨"},
	{ID: "plasma", Name: "Plasma Screen", BaseIncome: 6_000, Price: 450_000, Description: "Hot to the touch.", Rarity: domain.RarityMythic, Icon: "⚡"},
	{ID: "nanotech", Name: "Nanobot Swarm", BaseIncome: 8_000, Price: 600_000, Description: "Reshapes into any device.", Rarity: domain.RarityMythic, Icon: "🦠"},
	{ID: "water_elem", Name: "Tablet of Water", BaseIncome: 9_000, Price: 700_000, Description: "Always wet.", Rarity: domain.RarityMythic, Icon: "💧"},
	{ID: "fire_elem", Name: "Tablet of Fire", BaseIncome: 10_000, Price: 800_000, Description: "Burns with eternal flame.", Rarity: domain.RarityMythic, Icon: "🔥"},
	{ID: "ice_elem", Name: "Tablet of Ice", BaseIncome: 11_000, Price: 900_000, Description: "Absolute zero cooling.", Rarity: domain.RarityMythic, Icon: "❄️"},
	{ID: "earth_elem", Name: "Tablet of Earth", BaseIncome: 11_500, Price: 950_000, Description: "Solid as a rock.", Rarity: domain.RarityMythic, Icon: "🌍"},
	{ID: "air_elem", Name: "Tablet of Air", BaseIncome: 11_800, Price: 1_200_000, Description: "Light as a feather.", Rarity: domain.RarityMythic, Icon: "💨"},
	{ID: "martian", Name: "Martian Slab", BaseIncome: 12_000, Price: 1_500_000, Description: "Dug up from Mars.", Rarity: domain.RarityMythic, Icon: "👽"},
	{ID: "thunder", Name: "Storm Caller", BaseIncome: 15_000, Price: 2_000_000, Description: "Charged with lightning.", Rarity: domain.RarityMythic, Icon: "🌩️"},
	{ID: "void", Name: "Void Glass", BaseIncome: 20_000, Price: 3_000_000, Description: "Stares back at you.", Rarity: domain.RarityMythic, Icon: "⚫"},

	// God
	{ID: "light", Name: "Tablet of Light", BaseIncome: 25_000, Price: 4_000_000, Description: "Blindingly bright.", Rarity: domain.RarityGod, Icon: "☀️"},
	{ID: "crystal", Name: "Atlantean Crystal", BaseIncome: 35_000, Price: 5_000_000, Description: "Ancient advanced tech.", Rarity: domain.RarityGod, Icon: "🔮"},
	{ID: "demon", Name: "Demon Hide", BaseIncome: 40_000, Price: 7_000_000, Description: "Smells like sulfur.", Rarity: domain.RarityGod, Icon: "👿"},
	{ID: "cursed", Name: "Necronomicon Pad", BaseIncome: 45_000, Price: 8_000_000, Description: "Bound in... leather.", Rarity: domain.RarityGod, Icon: "🧟"},
	{ID: "dragon", Name: "Dragon Scale", BaseIncome: 48_000, Price: 9_000_000, Description: "Indestructible.", Rarity: domain.RarityGod, Icon: "🐉"},
	{ID: "rune", Name: "Rune Stone", BaseIncome: 50_000, Price: 10_000_000, Description: "Magical income generation.", Rarity: domain.RarityGod, Icon: "🗿"},
	{ID: "glitch", Name: "MissingNo.", BaseIncome: 80_000, Price: 25_000_000, Description: "Corrupts reality.", Rarity: domain.RarityGod, Icon: "👾"},
	{ID: "error", Name: "404 Tablet", BaseIncome: 90_000, Price: 35_000_000, Description: "Item not found.", Rarity: domain.RarityGod, Icon: "⚠️"},
	{ID: "bsod", Name: "Blue Screen", BaseIncome: 95_000, Price: 40_000_000, Description: "Fatal Error.", Rarity: domain.RarityGod, Icon: "🟦"},
	{ID: "time", Name: "Chrono-Pad", BaseIncome: 100_000, Price: 50_000_000, Description: "Mines bitcoin from the future.", Rarity: domain.RarityGod, Icon: "⏳"},
	{ID: "portal", Name: "Portal Device", BaseIncome: 150_000, Price: 60_000_000, Description: "Thinking with portals.", Rarity: domain.RarityGod, Icon: "🌀"},
	{ID: "dark_matter", Name: "Dark Matter Slate", BaseIncome: 200_000, Price: 80_000_000, Description: "Extremely heavy.", Rarity: domain.RarityGod, Icon: "🌑"},
	{ID: "antimatter", Name: "Antimatter Screen", BaseIncome: 250_000, Price: 90_000_000, Description: "Don't drop it.", Rarity: domain.RarityGod, Icon: "⚛️"},
	{ID: "blackhole", Name: "Singularity", BaseIncome: 300_000, Price: 100_000_000, Description: "Spaghettifies fingers.", Rarity: domain.RarityGod, Icon: "🕳️"},
	{ID: "star", Name: "Neutron Star Fragment", BaseIncome: 500_000, Price: 150_000_000, Description: "Radiates pure profit.", Rarity: domain.RarityGod, Icon: "⭐"},
	{ID: "supernova", Name: "Supernova Remnant", BaseIncome: 600_000, Price: 200_000_000, Description: "Blindingly bright.", Rarity: domain.RarityGod, Icon: "💥"},
	{ID: "akashic", Name: "Akashic Record", BaseIncome: 1_000_000, Price: 300_000_000, Description: "Contains all knowledge.", Rarity: domain.RarityGod, Icon: "📚"},
	{ID: "prophecy", Name: "The Prophecy", BaseIncome: 2_000_000, Price: 500_000_000, Description: "It was written.", Rarity: domain.RarityGod, Icon: "📜"},
	{ID: "grail", Name: "Holy Grail Pad", BaseIncome: 3_000_000, Price: 800_000_000, Description: "Choose wisely.", Rarity: domain.RarityGod, Icon: "🍷"},
	{ID: "infinity", Name: "Infinity Tablet", BaseIncome: 5_000_000, Price: 1_500_000_000, Description: "Snap to delete debt.", Rarity: domain.RarityGod, Icon: "♾️"},

	// Secret
	{ID: "gauntlet", Name: "Infinity Gauntlet", BaseIncome: 6_000_000, Price: 2_500_000_000, Description: "Fine, I'll do it myself.", Rarity: domain.RaritySecret, Icon: "🥊"},
	{ID: "multiverse", Name: "Multiverse Viewer", BaseIncome: 10_000_000, Price: 5_000_000_000, Description: "Stream TV from other dimensions.", Rarity: domain.RaritySecret, Icon: "🌌"},
	{ID: "timeline", Name: "Timeline Editor", BaseIncome: 15_000_000, Price: 8_000_000_000, Description: "Undo your mistakes.", Rarity: domain.RaritySecret, Icon: "🕰️"},
	{ID: "simulation", Name: "The Simulation", BaseIncome: 20_000_000, Price: 10_000_000_000, Description: "We are all code.", Rarity: domain.RaritySecret, Icon: "💻"},
	{ID: "matrix", Name: "Red Pill", BaseIncome: 25_000_000, Price: 15_000_000_000, Description: "Wake up.", Rarity: domain.RaritySecret, Icon: "💊"},
	{ID: "reality", Name: "Reality Bender", BaseIncome: 50_000_000, Price: 20_000_000_000, Description: "Edit the source code of life.", Rarity: domain.RaritySecret, Icon: "🎨"},
	{ID: "genesis", Name: "Genesis Block", BaseIncome: 60_000_000, Price: 40_000_000_000, Description: "The beginning.", Rarity: domain.RaritySecret, Icon: "🥚"},
	{ID: "omega", Name: "Omega Point", BaseIncome: 80_000_000, Price: 80_000_000_000, Description: "The end.", Rarity: domain.RaritySecret, Icon: "Ω"},
	{ID: "dream", Name: "Dream Shard", BaseIncome: 90_000_000, Price: 90_000_000_000, Description: "Made of pure imagination.", Rarity: domain.RaritySecret, Icon: "☁️"},
	{ID: "dev", Name: "The Developer's Laptop", BaseIncome: 300_000_000, Price: 300_000_000_000, Description: "The tool that made this world.", Rarity: domain.RaritySecret, Icon: "👨‍💻"},
	{ID: "admin", Name: "Admin Console", BaseIncome: 400_000_000, Price: 400_000_000_000, Description: "/give_money infinite", Rarity: domain.RaritySecret, Icon: "🛠️"},
	{ID: "console", Name: "Root Access", BaseIncome: 500_000_000, Price: 500_000_000_000, Description: "sudo rm -rf /", Rarity: domain.RaritySecret, Icon: "⌨️"},
	{ID: "banana", Name: "Banana Phone", BaseIncome: 150_000_000, Price: 150_000_000_000, Description: "Ring ring ring ring.", Rarity: domain.RaritySecret, Icon: "🍌"},
	{ID: "invisible", Name: "Invisible Pad", BaseIncome: 200_000_000, Price: 200_000_000_000, Description: "I can't find it.", Rarity: domain.RaritySecret, Icon: "👻"},

	// Tablet Pro
	{ID: "pro_max", Name: "Tablet Pro Max", BaseIncome: 1_000_000_000, Price: 5_000_000_000_000, Description: "Better than the best.", Rarity: domain.RarityTabletPro, Icon: "📱"},
	{ID: "pro_elite", Name: "Elite Slate Pro", BaseIncome: 2_000_000_000, Price: 10_000_000_000_000, Description: "Only for professionals.", Rarity: domain.RarityTabletPro, Icon: "💼"},
	{ID: "pro_ultra", Name: "Ultra Tab Pro", BaseIncome: 4_000_000_000, Price: 20_000_000_000_000, Description: "Maximum productivity.", Rarity: domain.RarityTabletPro, Icon: "🚀"},

	// OG
	{ID: "strawberry", Name: "Strawberry Elephant", BaseIncome: 1_000_000_000, Price: 9_999_999_999_999, Description: "THE OG LEGEND. Incomprehensible value.", Rarity: domain.RarityOG, Icon: "🐘"},
	{ID: "horseman", Name: "Headless Horseman", BaseIncome: 400_000_000, Price: 1_200_000_000_000, Description: "The cursed tablet. Gives 400M/s.", Rarity: domain.RarityOG, Icon: "🎃"},
	{ID: "walking", Name: "Tablets Walking", BaseIncome: 250_000_000, Price: 500_000_000_000, Description: "It grew legs and ran away.", Rarity: domain.RarityOG, Icon: "🏃"},
	{ID: "bird", Name: "Flying Bird", BaseIncome: 950_000_000, Price: 550_000_000_000, Description: "It defies gravity.", Rarity: domain.RarityOG, Icon: "🐦"},
	{ID: "six_seven", Name: "6 7", BaseIncome: 10_500_000_000, Price: 5_500_000_000_000, Description: "Because 7 8 9.", Rarity: domain.RarityOG, Icon: "🔢"},
	{ID: "la_og", Name: "La OG Combination", BaseIncome: 100_000_000_000, Price: 10_000_000_000_000, Description: "The ultimate fusion of legends.", Rarity: domain.RarityOG, Icon: "👑"},
	{ID: "monolith", Name: "The Monolith", BaseIncome: 2_000_000_000, Price: 20_000_000_000_000, Description: "Full of stars.", Rarity: domain.RarityOG, Icon: "⬛"},
	{ID: "void_slate", Name: "Void Slate", BaseIncome: 3_000_000_000, Price: 30_000_000_000_000, Description: "Absorbs all light.", Rarity: domain.RarityOG, Icon: "🕶️"},

	// OP
	{ID: "op_1", Name: "Quantum Overlord", BaseIncome: 500_000_000_000, Price: 50_000_000_000_000, Description: "Calculates every possible outcome.", Rarity: domain.RarityOP, Icon: "⚛️"},
	{ID: "op_2", Name: "Dimensional Rift", BaseIncome: 1_000_000_000_000, Price: 100_000_000_000_000, Description: "Tears a hole in spacetime.", Rarity: domain.RarityOP, Icon: "🌀"},
	{ID: "op_3", Name: "Cosmic Slate", BaseIncome: 5_000_000_000_000, Price: 500_000_000_000_000, Description: "Forged from the Big Bang.", Rarity: domain.RarityOP, Icon: "🌌"},
	{ID: "op_4", Name: "Eternity Pad", BaseIncome: 10_000_000_000_000, Price: 1_000_000_000_000_000, Description: "Battery lasts forever. Literally.", Rarity: domain.RarityOP, Icon: "⏳"},
	{ID: "op_5", Name: "The Singularity Pro", BaseIncome: 50_000_000_000_000, Price: 5_000_000_000_000_000, Description: "The event horizon of productivity.", Rarity: domain.RarityOP, Icon: "🕳️"},
	{ID: "op_6", Name: "God's Canvas", BaseIncome: 100_000_000_000_000, Price: 10_000_000_000_000_000, Description: "Create your own universe.", Rarity: domain.RarityOP, Icon: "🎨"},
	{ID: "op_combo", Name: "The OP Collection", BaseIncome: 1_000_000_000_000_000, Price: 100_000_000_000_000_000, Description: "Power overwhelming.", Rarity: domain.RarityOP, Icon: "👑"},
}
