package domain

// Economy tuning values. These are gameplay data, not configuration; they are
// compiled in on purpose.
const (
	// Storage
	StorageBaseCapacity  = 64
	StorageUpgradeSlots  = 10
	StorageUpgradeBase   = 500.0
	StorageUpgradeStep   = 500.0
	StorageBaselineSlots = 60.0 // the upgrade cost curve anchors at 60, not 64

	// Batteries
	BatteryMax          = 100.0
	BatteryDrainPerTick = 0.5
	BatteryChargeStep   = 10.0
	FastChargerPrice    = 10_000.0

	// Selling returns half the sticker price, floored.
	SellRate = 0.5

	// Conversions
	SkipWaitFee         = 100_000_000.0
	FuseIngredientCount = 3
	FuseMultiplier      = 1.1
	RecipeMultiplier    = 1.5
	QuantumCost         = 9
	QuantumMultiplier   = 5.0

	// Instant payouts
	ClickBaseGain   = 100.0
	AdRewardPerItem = 500.0

	// Global multiplier upgrade: doubles each purchase, cost scales 5x per
	// doubling from a 10M base.
	GlobalMultiplierBaseCost = 10_000_000.0
)
