package handler

import (
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
)

// AdminSpawnRequest names the archetype to conjure into storage.
type AdminSpawnRequest struct {
	ArchetypeID string `json:"archetype_id" validate:"required"`
	Mutation    string `json:"mutation,omitempty"`
}

// HandleAdminSpawnItem grants any catalog item directly. Spawned items carry
// the OG mark unless a mutation is named, and the storage gate still applies.
// @Summary Spawn an item (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminSpawnRequest true "Item to spawn"
// @Success 200 {object} RollResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/spawn [post]
func HandleAdminSpawnItem(cat *catalog.Catalog, led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminSpawnRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin spawn"); err != nil {
			return
		}

		arch, ok := cat.ByID(req.ArchetypeID)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgItemNotFoundError)
			return
		}

		mutation := req.Mutation
		if mutation == "" {
			mutation = domain.MutationOG
		}
		// Spawned items keep their base income: marker only, multiplier 1
		inst := catalog.Stamp(arch, mutation, 1)
		granted := led.GrantGated(r.Context(), inst, ledger.SourceAdmin)

		log.Warn("Admin spawned item", "item", arch.Name, "granted", granted)
		respondJSON(w, http.StatusOK, RollResponse{Item: inst, Granted: granted, Balance: led.Balance()})
	}
}

// AdminLuckRequest sets the global admin luck factor.
type AdminLuckRequest struct {
	Factor float64 `json:"factor" validate:"required,gt=0"`
}

// HandleAdminSetLuck scales every roll surface by the given factor.
// @Summary Set global luck (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLuckRequest true "Luck factor"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/luck [post]
func HandleAdminSetLuck(roller *roll.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminLuckRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin set luck"); err != nil {
			return
		}

		roller.SetAdminLuck(req.Factor)
		log.Warn("Admin luck changed", "factor", req.Factor)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Luck updated"})
	}
}

// AdminEventRequest names a boost event.
type AdminEventRequest struct {
	Name string `json:"name" validate:"required"`
}

// HandleAdminTriggerEvent force-starts a named boost event.
// @Summary Trigger a boost event (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminEventRequest true "Event name"
// @Success 200 {object} gameevent.ActiveBoost
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/events/trigger [post]
func HandleAdminTriggerEvent(boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminEventRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin trigger event"); err != nil {
			return
		}

		active, err := boosts.Activate(r.Context(), req.Name)
		if err != nil {
			respondServiceError(w, log, ErrMsgTriggerEventFailed, err)
			return
		}

		log.Warn("Admin triggered event", "event", active.Name, "boost", active.Boost)
		respondJSON(w, http.StatusOK, active)
	}
}

// HandleAdminChaos stacks every enabled boost into one short burst.
// @Summary Trigger chaos (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} gameevent.ActiveBoost
// @Router /api/v1/admin/events/chaos [post]
func HandleAdminChaos(boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		active := boosts.Chaos(r.Context())
		log.Warn("Admin triggered chaos", "boost", active.Boost)
		respondJSON(w, http.StatusOK, active)
	}
}

// AdminDisableEventRequest toggles one event in the rotation.
type AdminDisableEventRequest struct {
	Name     string `json:"name" validate:"required"`
	Disabled bool   `json:"disabled"`
}

// HandleAdminDisableEvent removes or restores an event in the roll pool.
// @Summary Disable or enable a boost event (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminDisableEventRequest true "Event toggle"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/events/disable [post]
func HandleAdminDisableEvent(boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminDisableEventRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin disable event"); err != nil {
			return
		}

		if err := boosts.SetDisabled(req.Name, req.Disabled); err != nil {
			respondServiceError(w, log, ErrMsgTriggerEventFailed, err)
			return
		}

		log.Warn("Admin toggled event", "event", req.Name, "disabled", req.Disabled)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventDisabledSuccess})
	}
}

// AdminDurationRequest sets the boost event duration.
type AdminDurationRequest struct {
	Minutes int `json:"minutes" validate:"required,min=1"`
}

// HandleAdminSetDuration changes how long boost events run.
// @Summary Set boost event duration (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminDurationRequest true "Duration in minutes"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/events/duration [post]
func HandleAdminSetDuration(boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminDurationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin set duration"); err != nil {
			return
		}

		if err := boosts.SetDurationMinutes(req.Minutes); err != nil {
			respondServiceError(w, log, ErrMsgTriggerEventFailed, err)
			return
		}

		log.Warn("Admin changed event duration", "minutes", req.Minutes)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Duration updated"})
	}
}

// AdminMessageRequest carries the broadcast text.
type AdminMessageRequest struct {
	Message string `json:"message" validate:"required,max=200"`
}

// HandleAdminServerMessage broadcasts a message to connected clients.
// @Summary Set the server message (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminMessageRequest true "Message"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/message [post]
func HandleAdminServerMessage(boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin server message"); err != nil {
			return
		}

		boosts.SetServerMessage(r.Context(), req.Message)
		log.Warn("Admin set server message", "message", req.Message)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMessageSetSuccess})
	}
}

// AdminTraitRequest sets the experimental trait income multiplier.
type AdminTraitRequest struct {
	Multiplier float64 `json:"multiplier" validate:"required,gt=0"`
}

// HandleAdminSetTrait sets the trait multiplier folded into income.
// @Summary Set trait multiplier (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminTraitRequest true "Trait multiplier"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/trait [post]
func HandleAdminSetTrait(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminTraitRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin set trait"); err != nil {
			return
		}

		led.SetTraitMultiplier(req.Multiplier)
		log.Warn("Admin changed trait multiplier", "multiplier", req.Multiplier)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Trait multiplier updated"})
	}
}

// AdminMoneyRequest carries a direct money grant.
type AdminMoneyRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// AdminMoneyResponse reports the balance after a grant.
type AdminMoneyResponse struct {
	Granted float64 `json:"granted"`
	Balance float64 `json:"balance"`
}

// HandleAdminGrantMoney credits money straight into the balance.
// @Summary Grant money (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminMoneyRequest true "Amount to grant"
// @Success 200 {object} AdminMoneyResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/money [post]
func HandleAdminGrantMoney(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminMoneyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin grant money"); err != nil {
			return
		}

		led.Credit(r.Context(), req.Amount)
		log.Warn("Admin granted money", "amount", req.Amount)
		respondJSON(w, http.StatusOK, AdminMoneyResponse{Granted: req.Amount, Balance: led.Balance()})
	}
}

// AdminRebirthRequest jumps the prestige ladder.
type AdminRebirthRequest struct {
	Tier int `json:"tier" validate:"min=0"`
}

// HandleAdminSetRebirthTier sets the prestige tier without the run reset.
// @Summary Set rebirth tier (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminRebirthRequest true "Tier to set"
// @Success 200 {object} ledger.RebirthStatus
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/rebirth [post]
func HandleAdminSetRebirthTier(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminRebirthRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin set rebirth tier"); err != nil {
			return
		}

		if err := led.SetRebirthTier(req.Tier); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		log.Warn("Admin set rebirth tier", "tier", req.Tier)
		respondJSON(w, http.StatusOK, led.RebirthStatus())
	}
}

// AdminMultiplierRequest overrides the global income multiplier.
type AdminMultiplierRequest struct {
	Multiplier float64 `json:"multiplier" validate:"required,gte=1"`
}

// HandleAdminSetGlobalMultiplier overrides the bought global multiplier.
// @Summary Set global multiplier (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminMultiplierRequest true "Multiplier to set"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/multiplier [post]
func HandleAdminSetGlobalMultiplier(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdminMultiplierRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin set global multiplier"); err != nil {
			return
		}

		if err := led.SetGlobalMultiplier(req.Multiplier); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		log.Warn("Admin set global multiplier", "multiplier", req.Multiplier)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Global multiplier updated"})
	}
}
