package handler

import (
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/conversion"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// HandleListRecipes lists craft and trade recipes.
// @Summary List recipes
// @Tags convert
// @Produce json
// @Success 200 {array} conversion.Recipe
// @Router /api/v1/convert/recipes [get]
func HandleListRecipes(eng *conversion.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, eng.Recipes())
	}
}

// FuseRequest selects exactly three owned instances to melt together.
type FuseRequest struct {
	InstanceIDs []string `json:"instance_ids" validate:"required,len=3"`
}

// PendingResponse describes a scheduled conversion outcome.
type PendingResponse struct {
	Pending conversion.Pending `json:"pending"`
}

// HandleFuse consumes three items and schedules a rarity-rolled result.
// @Summary Fuse three items
// @Tags convert
// @Accept json
// @Produce json
// @Param request body FuseRequest true "Instances to fuse"
// @Success 200 {object} PendingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conversion already pending"
// @Router /api/v1/convert/fuse [post]
func HandleFuse(eng *conversion.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FuseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Fuse"); err != nil {
			return
		}

		pending, err := eng.Fuse(r.Context(), req.InstanceIDs)
		if err != nil {
			respondServiceError(w, log, ErrMsgFuseFailed, err)
			return
		}

		log.Info("Fuse started", "result", pending.Result.Name, "ready_at", pending.ReadyAt)
		respondJSON(w, http.StatusOK, PendingResponse{Pending: pending})
	}
}

// RecipeRequest names a recipe to execute.
type RecipeRequest struct {
	RecipeID string `json:"recipe_id" validate:"required"`
}

// HandleCraft consumes a recipe's ingredients and schedules the result.
// @Summary Craft a recipe
// @Tags convert
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe to craft"
// @Success 200 {object} PendingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conversion already pending"
// @Router /api/v1/convert/craft [post]
func HandleCraft(eng *conversion.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}

		pending, err := eng.Craft(r.Context(), req.RecipeID)
		if err != nil {
			respondServiceError(w, log, ErrMsgCraftFailed, err)
			return
		}

		log.Info("Craft started", "recipe", req.RecipeID, "ready_at", pending.ReadyAt)
		respondJSON(w, http.StatusOK, PendingResponse{Pending: pending})
	}
}

// TradeResponse reports an immediate conversion result.
type TradeResponse struct {
	Item domain.Instance `json:"item"`
}

// HandleTrade executes an instant trade recipe.
// @Summary Trade via a recipe
// @Tags convert
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe to trade"
// @Success 200 {object} TradeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/convert/trade [post]
func HandleTrade(eng *conversion.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Trade"); err != nil {
			return
		}

		inst, err := eng.Trade(r.Context(), req.RecipeID)
		if err != nil {
			respondServiceError(w, log, ErrMsgTradeFailed, err)
			return
		}

		log.Info("Trade completed", "recipe", req.RecipeID, "item", inst.Name)
		respondJSON(w, http.StatusOK, TradeResponse{Item: inst})
	}
}

// HandleGetPending lists in-flight conversions.
// @Summary List pending conversions
// @Tags convert
// @Produce json
// @Success 200 {array} conversion.Pending
// @Router /api/v1/convert/pending [get]
func HandleGetPending(eng *conversion.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, eng.Pending())
	}
}

// SkipRequest names the pending kind to finish early.
type SkipRequest struct {
	Kind string `json:"kind" validate:"required,oneof=fuse craft"`
}

// SkipResponse reports the delivered item and the fee paid.
type SkipResponse struct {
	Item    domain.Instance `json:"item"`
	FeePaid float64         `json:"fee_paid"`
	Balance float64         `json:"balance"`
}

// HandleSkip pays the wait fee and delivers the pending result now.
// @Summary Skip a conversion wait
// @Tags convert
// @Accept json
// @Produce json
// @Param request body SkipRequest true "Conversion kind"
// @Success 200 {object} SkipResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/convert/skip [post]
func HandleSkip(eng *conversion.Engine, led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SkipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Skip wait"); err != nil {
			return
		}

		inst, err := eng.Skip(r.Context(), req.Kind)
		if err != nil {
			respondServiceError(w, log, ErrMsgSkipFailed, err)
			return
		}

		log.Info("Conversion skipped", "kind", req.Kind, "item", inst.Name)
		respondJSON(w, http.StatusOK, SkipResponse{
			Item:    inst,
			FeePaid: domain.SkipWaitFee,
			Balance: led.Balance(),
		})
	}
}
