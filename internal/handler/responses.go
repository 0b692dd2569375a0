package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotEnoughMoneyError   = "Not enough money"
	ErrMsgStorageFullError      = "Storage is full"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgNotInInventoryError   = "You don't have that item"
	ErrMsgAlreadyOwnedError     = "You already own that"
	ErrMsgMaxedOutError         = "Already maxed out"
	ErrMsgInvalidSelectionError = "Invalid selection"
	ErrMsgConversionBusyError   = "A conversion is already in progress"
	ErrMsgNothingPendingError   = "Nothing is in progress"
	ErrMsgRecipeNotFoundError   = "Recipe not found"
	ErrMsgMaxRebirthError       = "You are at the final rebirth tier"
	ErrMsgNotAvailableError     = "Not available right now"
	ErrMsgEventDisabledError    = "That event is disabled"
	ErrMsgInvalidInputError     = "Invalid input"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses with appropriate status codes.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusBadRequest, ErrMsgStorageFullError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInstanceNotFound):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusBadRequest, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrMaxedOut):
		return http.StatusBadRequest, ErrMsgMaxedOutError
	case errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest, ErrMsgInvalidSelectionError
	case errors.Is(err, domain.ErrConversionPending):
		return http.StatusConflict, ErrMsgConversionBusyError
	case errors.Is(err, domain.ErrNoPendingConversion):
		return http.StatusBadRequest, ErrMsgNothingPendingError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusBadRequest, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrMaxRebirth):
		return http.StatusBadRequest, ErrMsgMaxRebirthError
	case errors.Is(err, domain.ErrNotAvailable):
		return http.StatusConflict, ErrMsgNotAvailableError
	case errors.Is(err, domain.ErrEventDisabled):
		return http.StatusBadRequest, ErrMsgEventDisabledError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages pass through; long or system-level ones do not
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the failure and writes the mapped user message.
func respondServiceError(w http.ResponseWriter, log *slog.Logger, opName string, err error) {
	log.Error(opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
