package handler

import (
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
)

// EventStatusResponse reports the boost event rotation state.
type EventStatusResponse struct {
	Active        *gameevent.ActiveBoost `json:"active,omitempty"`
	Pool          []gameevent.BoostEvent `json:"pool"`
	Disabled      []string               `json:"disabled,omitempty"`
	ServerMessage string                 `json:"server_message,omitempty"`
}

// HandleGetEvents returns the active boost, the rotation pool and any admin
// broadcast.
// @Summary Get boost event status
// @Tags events
// @Produce json
// @Success 200 {object} EventStatusResponse
// @Router /api/v1/events [get]
func HandleGetEvents(boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := EventStatusResponse{
			Pool:          gameevent.Events,
			Disabled:      boosts.DisabledEvents(),
			ServerMessage: boosts.ServerMessage(),
		}
		if active, ok := boosts.ActiveEvent(); ok {
			resp.Active = &active
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
