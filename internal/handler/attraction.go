package handler

import (
	"net/http"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/attraction"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// HandleGetTruck returns the current truck visit.
// @Summary Get the quantum truck offer
// @Tags attractions
// @Produce json
// @Success 200 {object} attraction.TruckOffer
// @Router /api/v1/truck [get]
func HandleGetTruck(truck *attraction.Truck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, truck.Offer())
	}
}

// ExchangeResponse reports the Limited received from the truck.
type ExchangeResponse struct {
	Item domain.Instance `json:"item"`
}

// HandleTruckExchange trades the wanted stack for the offered Limited.
// @Summary Exchange with the quantum truck
// @Tags attractions
// @Produce json
// @Success 200 {object} ExchangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Truck not parked"
// @Router /api/v1/truck/exchange [post]
func HandleTruckExchange(truck *attraction.Truck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		inst, err := truck.Exchange(r.Context())
		if err != nil {
			respondServiceError(w, log, ErrMsgExchangeFailed, err)
			return
		}

		log.Info("Truck exchange completed", "item", inst.Name)
		respondJSON(w, http.StatusOK, ExchangeResponse{Item: inst})
	}
}

// WheelStatusResponse reports the wheel cooldown state.
type WheelStatusResponse struct {
	CanSpin         bool       `json:"can_spin"`
	NextSpinAt      time.Time  `json:"next_spin_at"`
	SpeedBuffActive bool       `json:"speed_buff_active"`
	SpeedBuffUntil  *time.Time `json:"speed_buff_until,omitempty"`
}

// HandleGetWheel returns the wheel cooldown state.
// @Summary Get spin wheel status
// @Tags attractions
// @Produce json
// @Success 200 {object} WheelStatusResponse
// @Router /api/v1/wheel [get]
func HandleGetWheel(wheel *attraction.Wheel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := WheelStatusResponse{
			CanSpin:    wheel.CanSpin(),
			NextSpinAt: wheel.NextSpinAt(),
		}
		if until := wheel.SpeedBoostActiveUntil(); time.Now().Before(until) {
			resp.SpeedBuffActive = true
			resp.SpeedBuffUntil = &until
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleSpinWheel spins once if the cooldown has lapsed.
// @Summary Spin the prize wheel
// @Tags attractions
// @Produce json
// @Success 200 {object} attraction.SpinResult
// @Failure 409 {object} ErrorResponse "On cooldown"
// @Router /api/v1/wheel/spin [post]
func HandleSpinWheel(wheel *attraction.Wheel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		res, err := wheel.Spin(r.Context())
		if err != nil {
			respondServiceError(w, log, ErrMsgSpinFailed, err)
			return
		}

		log.Info("Wheel spun", "prize", res.Prize)
		respondJSON(w, http.StatusOK, res)
	}
}

// ShowroomResponse is the shelf plus its last rotation time.
type ShowroomResponse struct {
	Stock       []domain.Archetype `json:"stock"`
	RestockedAt time.Time          `json:"restocked_at"`
}

// HandleGetShowroom returns the current shelf.
// @Summary Get showroom stock
// @Tags attractions
// @Produce json
// @Success 200 {object} ShowroomResponse
// @Router /api/v1/showroom [get]
func HandleGetShowroom(room *attraction.Showroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ShowroomResponse{
			Stock:       room.Stock(),
			RestockedAt: room.RestockedAt(),
		})
	}
}

// ShowroomBuyRequest names the stocked archetype to buy.
type ShowroomBuyRequest struct {
	ArchetypeID string `json:"archetype_id" validate:"required"`
}

// HandleShowroomBuy buys one shelf slot at sticker price.
// @Summary Buy from the showroom
// @Tags attractions
// @Accept json
// @Produce json
// @Param request body ShowroomBuyRequest true "Stocked archetype"
// @Success 200 {object} PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/showroom/buy [post]
func HandleShowroomBuy(room *attraction.Showroom, led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ShowroomBuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Showroom buy"); err != nil {
			return
		}

		inst, err := room.Buy(r.Context(), req.ArchetypeID)
		if err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		log.Info("Showroom purchase", "item", inst.Name)
		respondJSON(w, http.StatusOK, PurchaseResponse{Item: inst, Balance: led.Balance()})
	}
}
