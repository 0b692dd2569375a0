package handler

import (
	"fmt"
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
	"github.com/grapnel-games/tablet-tycoon/internal/metrics"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
)

// BlockShopResponse lists everything the lucky block shop sells.
type BlockShopResponse struct {
	Tiers           []roll.BlockTier `json:"tiers"`
	BulkOffers      []roll.BulkOffer `json:"bulk_offers"`
	MysteryBoxPrice float64          `json:"mystery_box_price"`
}

// HandleListBlocks returns tiers, bundles and the mystery box price.
// @Summary List lucky block offers
// @Tags blocks
// @Produce json
// @Success 200 {object} BlockShopResponse
// @Router /api/v1/blocks [get]
func HandleListBlocks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, BlockShopResponse{
			Tiers:           roll.BlockTiers,
			BulkOffers:      roll.BulkOffers,
			MysteryBoxPrice: roll.MysteryBoxPrice,
		})
	}
}

// OpenBlockRequest names the tier to buy and open.
type OpenBlockRequest struct {
	TierID string `json:"tier_id" validate:"required"`
}

// RollResponse reports what came out of a roll. Granted is false when the
// item was forfeited to a full storage; the money stays spent.
type RollResponse struct {
	Item    domain.Instance `json:"item"`
	Granted bool            `json:"granted"`
	Balance float64         `json:"balance"`
}

// HandleOpenBlock buys one lucky block and rolls it at the current luck.
// @Summary Open a lucky block
// @Tags blocks
// @Accept json
// @Produce json
// @Param request body OpenBlockRequest true "Block tier"
// @Success 200 {object} RollResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/blocks/open [post]
func HandleOpenBlock(led *ledger.Ledger, roller *roll.Engine, boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OpenBlockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open block"); err != nil {
			return
		}

		tier, ok := roll.FindBlockTier(req.TierID)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgUnknownBlock)
			return
		}

		luck := led.BaseLuck() * roller.LuckModifier()
		inst := catalog.Stamp(roller.OpenBlock(tier, luck), "", 0)

		granted, err := led.PurchaseLoot(r.Context(), tier.ID, tier.Name, tier.Price, inst)
		if err != nil {
			respondServiceError(w, log, ErrMsgOpenBlockFailed, err)
			return
		}
		metrics.BlocksOpened.WithLabelValues(tier.ID).Inc()
		boosts.OnItemAcquired(r.Context(), inst.Name)

		log.Info("Block opened",
			"tier", tier.ID,
			"item", inst.Name,
			"rarity", inst.Rarity,
			"granted", granted)
		respondJSON(w, http.StatusOK, RollResponse{Item: inst, Granted: granted, Balance: led.Balance()})
	}
}

// OpenBulkRequest picks one of the fixed bundle sizes.
type OpenBulkRequest struct {
	Count int `json:"count" validate:"required,gt=0"`
}

// BulkResponse lists every rolled item in the bundle.
type BulkResponse struct {
	Items   []domain.Instance `json:"items"`
	Balance float64           `json:"balance"`
}

// HandleOpenBulk buys a discounted bundle; all items must fit or nothing is
// bought.
// @Summary Open a bulk bundle
// @Tags blocks
// @Accept json
// @Produce json
// @Param request body OpenBulkRequest true "Bundle size"
// @Success 200 {object} BulkResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/blocks/bulk [post]
func HandleOpenBulk(led *ledger.Ledger, roller *roll.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OpenBulkRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open bulk"); err != nil {
			return
		}

		offer, ok := roll.FindBulkOffer(req.Count)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgUnknownBundle)
			return
		}

		insts := make([]domain.Instance, 0, offer.Count)
		for i := 0; i < offer.Count; i++ {
			insts = append(insts, catalog.Stamp(roller.RollBulk(), domain.MutationBulk, 0))
		}

		name := fmt.Sprintf("Bulk x%d", offer.Count)
		if err := led.PurchaseBulk(r.Context(), "bulk", name, offer.Price, insts); err != nil {
			respondServiceError(w, log, ErrMsgOpenBlockFailed, err)
			return
		}
		metrics.BlocksOpened.WithLabelValues("bulk").Add(float64(offer.Count))

		log.Info("Bulk bundle opened", "count", offer.Count, "price", offer.Price)
		respondJSON(w, http.StatusOK, BulkResponse{Items: insts, Balance: led.Balance()})
	}
}

// HandleOpenMystery buys one mystery box.
// @Summary Open a mystery box
// @Tags blocks
// @Produce json
// @Success 200 {object} RollResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/blocks/mystery [post]
func HandleOpenMystery(led *ledger.Ledger, roller *roll.Engine, boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		inst := catalog.Stamp(roller.RollMystery(), "", 0)

		granted, err := led.PurchaseLoot(r.Context(), "mystery_box", "Mystery Box", roll.MysteryBoxPrice, inst)
		if err != nil {
			respondServiceError(w, log, ErrMsgOpenBlockFailed, err)
			return
		}
		metrics.BlocksOpened.WithLabelValues("mystery").Inc()
		boosts.OnItemAcquired(r.Context(), inst.Name)

		log.Info("Mystery box opened", "item", inst.Name, "rarity", inst.Rarity, "granted", granted)
		respondJSON(w, http.StatusOK, RollResponse{Item: inst, Granted: granted, Balance: led.Balance()})
	}
}
