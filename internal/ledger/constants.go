package ledger

// Loot sources reported on grant and forfeit events.
const (
	SourceLuckyBlock  = "lucky_block"
	SourceBulk        = "bulk"
	SourceMysteryBox  = "mystery_box"
	SourceShowroom    = "showroom"
	SourceMachineShop = "machine_shop"
	SourceStarterPack = "starter_pack"
	SourceConversion  = "conversion"
	SourceAttraction  = "attraction"
	SourceAdmin       = "admin"
)

// Log messages
const (
	LogMsgPublishFailed = "event publish failed"
	LogMsgLootForfeited = "storage full, loot forfeited"
)
