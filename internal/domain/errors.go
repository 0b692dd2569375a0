package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInventoryFull     = "inventory is full"

	// Catalog errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgInstanceNotFound = "instance not found"

	// Purchase errors
	ErrMsgAlreadyOwned = "already owned"
	ErrMsgMaxedOut     = "already at maximum"

	// Conversion errors
	ErrMsgInvalidSelection    = "invalid ingredient selection"
	ErrMsgConversionPending   = "a conversion is already in progress"
	ErrMsgNoPendingConversion = "no conversion in progress"
	ErrMsgRecipeNotFound      = "recipe not found"

	// Prestige errors
	ErrMsgMaxRebirth = "maximum rebirth tier reached"

	// Availability errors (timed attractions)
	ErrMsgNotAvailable = "not available right now"

	// Event errors
	ErrMsgEventDisabled = "event is disabled"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInventoryFull     = errors.New(ErrMsgInventoryFull)

	// Catalog errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrInstanceNotFound = errors.New(ErrMsgInstanceNotFound)

	// Purchase errors
	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrMaxedOut     = errors.New(ErrMsgMaxedOut)

	// Conversion errors
	ErrInvalidSelection    = errors.New(ErrMsgInvalidSelection)
	ErrConversionPending   = errors.New(ErrMsgConversionPending)
	ErrNoPendingConversion = errors.New(ErrMsgNoPendingConversion)
	ErrRecipeNotFound      = errors.New(ErrMsgRecipeNotFound)

	// Prestige errors
	ErrMaxRebirth = errors.New(ErrMsgMaxRebirth)

	// Availability errors
	ErrNotAvailable = errors.New(ErrMsgNotAvailable)

	// Event errors
	ErrEventDisabled = errors.New(ErrMsgEventDisabled)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
