package risk

import (
	"fmt"

	"github.com/rustyeddy/tradejournal/journal"
)

const (
	CodeNoStop          = "NO_STOP"
	CodeStopWrongSide   = "STOP_WRONG_SIDE"
	CodeTargetWrongSide = "TARGET_WRONG_SIDE"
	CodeLossBeyondStop  = "LOSS_BEYOND_STOP"
)

type Violation struct {
	Code string
	Msg  string
}

func (v Violation) String() string { return v.Code + ": " + v.Msg }

// Check reviews a trade against its own plan. An empty result means the
// trade had a stop on the right side and did not lose more than it risked.
func Check(r journal.TradeRecord) []Violation {
	var out []Violation
	add := func(code, msg string) {
		out = append(out, Violation{Code: code, Msg: msg})
	}

	if r.StopLoss.IsZero() {
		add(CodeNoStop, "no stop loss recorded")
	} else if wrongSide(r.Direction, r.EntryPrice.Cmp(r.StopLoss), true) {
		add(CodeStopWrongSide, fmt.Sprintf("stop %s is on the wrong side of entry %s for a %s trade",
			r.StopLoss.String(), r.EntryPrice.String(), r.Direction))
	}

	if !r.TakeProfit.IsZero() && wrongSide(r.Direction, r.EntryPrice.Cmp(r.TakeProfit), false) {
		add(CodeTargetWrongSide, fmt.Sprintf("target %s is on the wrong side of entry %s for a %s trade",
			r.TakeProfit.String(), r.EntryPrice.String(), r.Direction))
	}

	if risk, ok := PlannedRisk(r); ok && r.ProfitLoss.Neg().GreaterThan(risk) {
		add(CodeLossBeyondStop, fmt.Sprintf("lost %s against a planned risk of %s",
			r.ProfitLoss.Neg().StringFixed(2), risk.StringFixed(2)))
	}
	return out
}

// wrongSide reports whether a level is placed against the trade. cmp is
// entry compared with the level. Stops belong below a long entry and above a
// short one; targets the other way round.
func wrongSide(d journal.Direction, cmp int, stop bool) bool {
	below := cmp > 0
	above := cmp < 0
	if d == journal.Short {
		below, above = above, below
	}
	if stop {
		return above
	}
	return below
}
