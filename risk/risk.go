// Package risk measures a journaled trade against the plan recorded with it:
// the stop and target the trader set before entry.
package risk

import (
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/shopspring/decimal"
)

// PlannedRisk is the amount the trade stood to lose if its stop was hit:
// the distance from entry to stop times the position size. ok is false when
// no stop was set or the stop sits at the entry price.
func PlannedRisk(r journal.TradeRecord) (decimal.Decimal, bool) {
	if r.StopLoss.IsZero() {
		return decimal.Zero, false
	}
	move := r.EntryPrice.Sub(r.StopLoss).Abs()
	if move.IsZero() {
		return decimal.Zero, false
	}
	return move.Mul(decimal.NewFromInt(r.Size)), true
}

// RewardRisk is the planned reward to risk ratio, |target-entry| over
// |entry-stop|. Both a stop and a target must be set.
func RewardRisk(r journal.TradeRecord) (float64, bool) {
	if r.StopLoss.IsZero() || r.TakeProfit.IsZero() {
		return 0, false
	}
	risk := r.EntryPrice.Sub(r.StopLoss).Abs()
	if risk.IsZero() {
		return 0, false
	}
	reward := r.TakeProfit.Sub(r.EntryPrice).Abs()
	return reward.Div(risk).InexactFloat64(), true
}

// RMultiple expresses the realized P/L in units of planned risk. A trade
// stopped out exactly at its stop is -1R.
func RMultiple(r journal.TradeRecord) (decimal.Decimal, bool) {
	risk, ok := PlannedRisk(r)
	if !ok {
		return decimal.Zero, false
	}
	return r.ProfitLoss.Div(risk), true
}
