// Package income runs the one-second economy tick and explains the payout.
package income

import (
	"context"
	"time"

	"github.com/grapnel-games/tablet-tycoon/internal/domain"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
)

// TickInterval is the economy heartbeat.
const TickInterval = time.Second

// Breakdown itemizes one tick so clients can show where the money comes from.
type Breakdown struct {
	Base            float64 `json:"base"`
	GlobalMult      float64 `json:"global_multiplier"`
	PassMult        float64 `json:"pass_multiplier"`
	RebirthMult     float64 `json:"rebirth_multiplier"`
	TraitMult       float64 `json:"trait_multiplier"`
	FinalMultiplier float64 `json:"final_multiplier"`
	EventBoost      float64 `json:"event_boost"`
	Total           float64 `json:"total"`
}

// Explain decomposes the income rate for a player snapshot.
func Explain(p domain.Player, eventBoost float64) Breakdown {
	b := Breakdown{
		Base:        domain.BaseIncome(&p),
		GlobalMult:  p.GlobalMultiplier,
		PassMult:    domain.PassIncomeMultiplier(p.Passes),
		RebirthMult: domain.RebirthMultiplier(p.RebirthTier),
		TraitMult:   p.TraitMultiplier,
		EventBoost:  eventBoost,
	}
	b.FinalMultiplier = domain.FinalMultiplier(&p)
	b.Total = b.Base*b.FinalMultiplier + b.EventBoost
	return b
}

// Job credits one second of income and drains batteries.
type Job struct {
	Ledger *ledger.Ledger
	Boosts *gameevent.Manager
}

// Process runs one economy tick.
func (j *Job) Process(ctx context.Context) error {
	var boost float64
	if j.Boosts != nil {
		boost = j.Boosts.CurrentBoost(ctx)
	}
	j.Ledger.Tick(ctx, boost)
	return nil
}
