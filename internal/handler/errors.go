package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Shop operation error messages
	ErrMsgBuyItemFailed  = "Failed to buy item"
	ErrMsgSellItemFailed = "Failed to sell item"

	// Block operation error messages
	ErrMsgOpenBlockFailed = "Failed to open block"
	ErrMsgUnknownBlock    = "Unknown block tier"
	ErrMsgUnknownBundle   = "No bundle of that size"

	// Conversion error messages
	ErrMsgFuseFailed  = "Failed to fuse"
	ErrMsgCraftFailed = "Failed to craft"
	ErrMsgTradeFailed = "Failed to trade"
	ErrMsgSkipFailed  = "Failed to skip wait"

	// Rebirth error messages
	ErrMsgRebirthFailed = "Failed to rebirth"

	// Attraction error messages
	ErrMsgExchangeFailed = "Failed to exchange"
	ErrMsgSpinFailed     = "Failed to spin"

	// Admin error messages
	ErrMsgSpawnFailed        = "Failed to spawn item"
	ErrMsgTriggerEventFailed = "Failed to trigger event"
)

// Success messages for API responses
const (
	MsgItemSoldSuccess      = "Item sold"
	MsgChargedSuccess       = "Charged"
	MsgPassPurchasedSuccess = "Pass purchased"
	MsgMessageSetSuccess    = "Server message updated"
	MsgEventDisabledSuccess = "Event toggled"
)
