package handler

import (
	"math"
	"net/http"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/income"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
)

// StateResponse is the full client-facing game state.
type StateResponse struct {
	Player        PlayerView            `json:"player"`
	Income        income.Breakdown      `json:"income"`
	ActiveEvent   *gameevent.ActiveBoost `json:"active_event,omitempty"`
	ServerMessage string                `json:"server_message,omitempty"`
}

// PlayerView is the snapshot plus a few derived figures the UI shows.
type PlayerView struct {
	Balance          float64 `json:"balance"`
	BalanceDisplay   string  `json:"balance_display"`
	StorageUsed      int     `json:"storage_used"`
	StorageCapacity  int     `json:"storage_capacity"`
	RebirthTier      int     `json:"rebirth_tier"`
	GlobalMultiplier float64 `json:"global_multiplier"`
	HasFastCharger   bool    `json:"has_fast_charger"`
	Luck             float64 `json:"luck"`

	Passes    []string      `json:"passes"`
	Weapons   []string      `json:"weapons"`
	Inventory []ItemView    `json:"inventory"`
}

// ItemView is one owned instance as shown in the collection.
type ItemView struct {
	InstanceID         string  `json:"instance_id"`
	ArchetypeID        string  `json:"archetype_id"`
	Name               string  `json:"name"`
	Rarity             string  `json:"rarity"`
	Mutation           string  `json:"mutation,omitempty"`
	MutationMultiplier float64 `json:"mutation_multiplier,omitempty"`
	IncomePerSecond    float64 `json:"income_per_second"`
	Battery            float64 `json:"battery"`
	SellPrice          float64 `json:"sell_price"`
}

// HandleGetState returns the whole game state in one call.
// @Summary Get game state
// @Description Full player snapshot with income breakdown and active event
// @Tags state
// @Produce json
// @Success 200 {object} StateResponse
// @Router /api/v1/state [get]
func HandleGetState(led *ledger.Ledger, roller LuckSource, boosts *gameevent.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := led.Snapshot()
		boost := boosts.CurrentBoost(r.Context())

		resp := StateResponse{
			Income:        income.Explain(player, boost),
			ServerMessage: boosts.ServerMessage(),
		}
		if active, ok := boosts.ActiveEvent(); ok {
			resp.ActiveEvent = &active
		}

		view := PlayerView{
			Balance:          player.Balance,
			BalanceDisplay:   FormatMoney(player.Balance),
			StorageUsed:      len(player.Instances),
			StorageCapacity:  player.StorageCapacity,
			RebirthTier:      player.RebirthTier,
			GlobalMultiplier: player.GlobalMultiplier,
			HasFastCharger:   player.HasFastCharger,
			Luck:             led.BaseLuck() * roller.LuckModifier(),
			Passes:           make([]string, 0, len(player.Passes)),
			Weapons:          make([]string, 0, len(player.Weapons)),
			Inventory:        make([]ItemView, 0, len(player.Instances)),
		}
		for id := range player.Passes {
			view.Passes = append(view.Passes, id)
		}
		for id := range player.Weapons {
			view.Weapons = append(view.Weapons, id)
		}
		for _, inst := range player.Instances {
			view.Inventory = append(view.Inventory, ItemView{
				InstanceID:         inst.InstanceID,
				ArchetypeID:        inst.ArchetypeID,
				Name:               inst.Name,
				Rarity:             string(inst.Rarity),
				Mutation:           inst.Mutation,
				MutationMultiplier: inst.MutationMultiplier,
				IncomePerSecond:    inst.IncomeContribution(),
				Battery:            inst.Battery,
				SellPrice:          math.Floor(inst.Price * domain.SellRate),
			})
		}
		resp.Player = view

		respondJSON(w, http.StatusOK, resp)
	}
}

// LuckSource reports the current global luck modifier.
type LuckSource interface {
	LuckModifier() float64
}

// ClickResponse reports a manual click payout.
type ClickResponse struct {
	Gained  float64 `json:"gained"`
	Balance float64 `json:"balance"`
}

// HandleClick handles the manual money button.
// @Summary Click for money
// @Tags state
// @Produce json
// @Success 200 {object} ClickResponse
// @Router /api/v1/click [post]
func HandleClick(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gained := led.Click(r.Context())
		respondJSON(w, http.StatusOK, ClickResponse{Gained: gained, Balance: led.Balance()})
	}
}

// HandleWatchAd handles the simulated ad reward.
// @Summary Watch an ad for a reward
// @Tags state
// @Produce json
// @Success 200 {object} ClickResponse
// @Router /api/v1/ad [post]
func HandleWatchAd(led *ledger.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		gained := led.WatchAd(r.Context())
		log.Info("Ad reward granted", "gained", gained)
		respondJSON(w, http.StatusOK, ClickResponse{Gained: gained, Balance: led.Balance()})
	}
}
