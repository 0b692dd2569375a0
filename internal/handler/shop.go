package handler

import (
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// HandleListMachines lists the always-available machine shop stock.
// @Summary List machine shop stock
// @Tags shop
// @Produce json
// @Success 200 {array} domain.Archetype
// @Router /api/v1/shop/machines [get]
func HandleListMachines(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cat.Machines())
	}
}

// BuyMachineRequest names the machine to buy at sticker price.
type BuyMachineRequest struct {
	ArchetypeID string `json:"archetype_id" validate:"required"`
}

// PurchaseResponse reports a granted item and the remaining balance.
type PurchaseResponse struct {
	Item    domain.Instance `json:"item"`
	Balance float64         `json:"balance"`
}

// HandleBuyMachine handles fixed-price machine purchases.
// @Summary Buy a machine
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyMachineRequest true "Machine to buy"
// @Success 200 {object} PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/machines [post]
func HandleBuyMachine(cat *catalog.Catalog, led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyMachineRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy machine"); err != nil {
			return
		}

		arch, ok := cat.ByID(req.ArchetypeID)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgItemNotFoundError)
			return
		}

		inst, err := led.BuyArchetype(r.Context(), arch, ledger.SourceMachineShop)
		if err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		log.Info("Machine bought", "item", arch.Name, "price", arch.Price)
		respondJSON(w, http.StatusOK, PurchaseResponse{Item: inst, Balance: led.Balance()})
	}
}

// SellRequest names the owned instance to sell back.
type SellRequest struct {
	InstanceID string `json:"instance_id" validate:"required"`
}

// SellResponse reports the sale proceeds.
type SellResponse struct {
	Proceeds float64 `json:"proceeds"`
	Balance  float64 `json:"balance"`
}

// HandleSell handles selling an owned item at half sticker price.
// @Summary Sell an item
// @Tags shop
// @Accept json
// @Produce json
// @Param request body SellRequest true "Instance to sell"
// @Success 200 {object} SellResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/sell [post]
func HandleSell(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
			return
		}

		proceeds, err := led.Sell(r.Context(), req.InstanceID)
		if err != nil {
			respondServiceError(w, log, ErrMsgSellItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SellResponse{Proceeds: proceeds, Balance: led.Balance()})
	}
}

// StorageResponse reports capacity after an upgrade plus the next step's cost.
type StorageResponse struct {
	Capacity int     `json:"capacity"`
	NextCost float64 `json:"next_cost"`
	Balance  float64 `json:"balance"`
}

// HandleGetStorage returns the current capacity and upgrade pricing.
// @Summary Get storage status
// @Tags shop
// @Produce json
// @Success 200 {object} StorageResponse
// @Router /api/v1/shop/storage [get]
func HandleGetStorage(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StorageResponse{
			Capacity: led.Snapshot().StorageCapacity,
			NextCost: led.StorageUpgradeCost(),
			Balance:  led.Balance(),
		})
	}
}

// HandleBuyStorageUpgrade adds a storage row.
// @Summary Buy a storage upgrade
// @Tags shop
// @Produce json
// @Success 200 {object} StorageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/storage [post]
func HandleBuyStorageUpgrade(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		capacity, err := led.BuyStorageUpgrade(r.Context())
		if err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		log.Info("Storage upgraded", "capacity", capacity)
		respondJSON(w, http.StatusOK, StorageResponse{
			Capacity: capacity,
			NextCost: led.StorageUpgradeCost(),
			Balance:  led.Balance(),
		})
	}
}

// HandleBuyFastCharger buys the permanent instant-charge upgrade.
// @Summary Buy the fast charger
// @Tags shop
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/fast-charger [post]
func HandleBuyFastCharger(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := led.BuyFastCharger(r.Context()); err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Fast charger installed"})
	}
}

// ChargeRequest targets one instance, or everything at once.
type ChargeRequest struct {
	InstanceID string `json:"instance_id,omitempty"`
	All        bool   `json:"all,omitempty"`
}

// ChargeResponse reports the battery level (single) or count (all).
type ChargeResponse struct {
	Battery float64 `json:"battery,omitempty"`
	Charged int     `json:"charged,omitempty"`
}

// HandleCharge tops up batteries.
// @Summary Charge item batteries
// @Tags shop
// @Accept json
// @Produce json
// @Param request body ChargeRequest true "Charge target"
// @Success 200 {object} ChargeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/charge [post]
func HandleCharge(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ChargeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Charge"); err != nil {
			return
		}

		if req.All {
			charged := led.ChargeAll(r.Context())
			respondJSON(w, http.StatusOK, ChargeResponse{Charged: charged})
			return
		}
		if req.InstanceID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		battery, err := led.Charge(r.Context(), req.InstanceID)
		if err != nil {
			respondServiceError(w, log, MsgChargedSuccess, err)
			return
		}

		respondJSON(w, http.StatusOK, ChargeResponse{Battery: battery})
	}
}

// PassView is a game pass with its ownership flag.
type PassView struct {
	domain.GamePass
	Owned bool `json:"owned"`
}

// HandleListPasses lists passes and what the player already owns.
// @Summary List game passes
// @Tags shop
// @Produce json
// @Success 200 {array} PassView
// @Router /api/v1/shop/passes [get]
func HandleListPasses(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owned := led.Snapshot().Passes
		out := make([]PassView, 0, len(domain.GamePasses))
		for _, p := range domain.GamePasses {
			out = append(out, PassView{GamePass: p, Owned: owned[p.ID]})
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// BuyPassRequest names the pass to buy.
type BuyPassRequest struct {
	PassID string `json:"pass_id" validate:"required"`
}

// HandleBuyPass buys a permanent game pass.
// @Summary Buy a game pass
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyPassRequest true "Pass to buy"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/passes [post]
func HandleBuyPass(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyPassRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy pass"); err != nil {
			return
		}

		if err := led.BuyPass(r.Context(), req.PassID); err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		log.Info("Pass bought", "pass", req.PassID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPassPurchasedSuccess})
	}
}

// WeaponView is a weapon with its ownership flag.
type WeaponView struct {
	domain.Weapon
	Owned bool `json:"owned"`
}

// HandleListWeapons lists the weapon rack.
// @Summary List weapons
// @Tags shop
// @Produce json
// @Success 200 {array} WeaponView
// @Router /api/v1/shop/weapons [get]
func HandleListWeapons(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owned := led.Snapshot().Weapons
		out := make([]WeaponView, 0, len(domain.Weapons))
		for _, wp := range domain.Weapons {
			out = append(out, WeaponView{Weapon: wp, Owned: owned[wp.ID]})
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// BuyWeaponRequest names the weapon to buy.
type BuyWeaponRequest struct {
	WeaponID string `json:"weapon_id" validate:"required"`
}

// HandleBuyWeapon buys a weapon; the amulet raises luck.
// @Summary Buy a weapon
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyWeaponRequest true "Weapon to buy"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/weapons [post]
func HandleBuyWeapon(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyWeaponRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy weapon"); err != nil {
			return
		}

		if err := led.BuyWeapon(r.Context(), req.WeaponID); err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Weapon acquired"})
	}
}

// GlobalMultiplierResponse reports the doubling upgrade state.
type GlobalMultiplierResponse struct {
	Multiplier float64 `json:"multiplier"`
	NextCost   float64 `json:"next_cost"`
	Balance    float64 `json:"balance"`
}

// HandleGetGlobalMultiplier returns the current multiplier and next price.
// @Summary Get global multiplier status
// @Tags shop
// @Produce json
// @Success 200 {object} GlobalMultiplierResponse
// @Router /api/v1/shop/multiplier [get]
func HandleGetGlobalMultiplier(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, GlobalMultiplierResponse{
			Multiplier: led.Snapshot().GlobalMultiplier,
			NextCost:   led.GlobalMultiplierCost(),
			Balance:    led.Balance(),
		})
	}
}

// HandleBuyGlobalMultiplier doubles the global income multiplier.
// @Summary Buy a global multiplier step
// @Tags shop
// @Produce json
// @Success 200 {object} GlobalMultiplierResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/multiplier [post]
func HandleBuyGlobalMultiplier(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		mult, err := led.BuyGlobalMultiplier(r.Context())
		if err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		log.Info("Global multiplier bought", "multiplier", mult)
		respondJSON(w, http.StatusOK, GlobalMultiplierResponse{
			Multiplier: mult,
			NextCost:   led.GlobalMultiplierCost(),
			Balance:    led.Balance(),
		})
	}
}

// HandleListStarterPacks lists the starter bundles.
// @Summary List starter packs
// @Tags shop
// @Produce json
// @Success 200 {array} catalog.StarterPack
// @Router /api/v1/shop/packs [get]
func HandleListStarterPacks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, catalog.StarterPacks)
	}
}

// BuyPackRequest names the starter pack to buy.
type BuyPackRequest struct {
	PackID string `json:"pack_id" validate:"required"`
}

// BuyPackResponse lists the bundle contents that arrived.
type BuyPackResponse struct {
	Items   []domain.Instance `json:"items"`
	Balance float64           `json:"balance"`
}

// HandleBuyStarterPack buys a fixed bundle.
// @Summary Buy a starter pack
// @Tags shop
// @Accept json
// @Produce json
// @Param request body BuyPackRequest true "Pack to buy"
// @Success 200 {object} BuyPackResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shop/packs [post]
func HandleBuyStarterPack(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyPackRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy starter pack"); err != nil {
			return
		}

		pack, ok := catalog.FindStarterPack(req.PackID)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgItemNotFoundError)
			return
		}

		items, err := led.BuyStarterPack(r.Context(), pack)
		if err != nil {
			respondServiceError(w, log, ErrMsgBuyItemFailed, err)
			return
		}

		log.Info("Starter pack bought", "pack", pack.Name, "items", len(items))
		respondJSON(w, http.StatusOK, BuyPackResponse{Items: items, Balance: led.Balance()})
	}
}
