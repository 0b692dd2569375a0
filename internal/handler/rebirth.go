package handler

import (
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// HandleGetRebirthStatus returns the current tier and the next offer.
// @Summary Get rebirth status
// @Tags rebirth
// @Produce json
// @Success 200 {object} ledger.RebirthStatus
// @Router /api/v1/rebirth [get]
func HandleGetRebirthStatus(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, led.RebirthStatus())
	}
}

// RebirthResponse reports the tier reached by a completed rebirth.
type RebirthResponse struct {
	Tier       int     `json:"tier"`
	Multiplier float64 `json:"multiplier"`
}

// HandleRebirth wipes progress in exchange for a permanent multiplier.
// @Summary Rebirth
// @Description Resets money, items and upgrades for the next tier's permanent income multiplier
// @Tags rebirth
// @Produce json
// @Success 200 {object} RebirthResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rebirth [post]
func HandleRebirth(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		tier, err := led.Rebirth(r.Context())
		if err != nil {
			respondServiceError(w, log, ErrMsgRebirthFailed, err)
			return
		}

		log.Info("Rebirth completed", "tier", tier.Level, "multiplier", tier.Multiplier)
		respondJSON(w, http.StatusOK, RebirthResponse{Tier: tier.Level, Multiplier: tier.Multiplier})
	}
}

// HandleListRebirthTiers lists the whole ladder for the progression screen.
// @Summary List rebirth tiers
// @Tags rebirth
// @Produce json
// @Success 200 {array} domain.RebirthTier
// @Router /api/v1/rebirth/tiers [get]
func HandleListRebirthTiers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, domain.RebirthTiers)
	}
}
