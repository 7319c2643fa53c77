package risk

import (
	"testing"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func trade(dir journal.Direction, entry, exit, tp, sl string, size int64) journal.TradeRecord {
	return journal.TradeRecord{
		Market:     journal.MicroNasdaq,
		Direction:  dir,
		EntryPrice: d(entry),
		ExitPrice:  d(exit),
		TakeProfit: d(tp),
		StopLoss:   d(sl),
		Size:       size,
		ProfitLoss: journal.ProfitLoss(dir, d(entry), d(exit), size),
	}
}

func TestPlannedRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    journal.TradeRecord
		want string
		ok   bool
	}{
		{"long", trade(journal.Long, "100", "110", "0", "95", 2), "10", true},
		{"short", trade(journal.Short, "100", "90", "0", "104", 3), "12", true},
		{"no stop", trade(journal.Long, "100", "110", "0", "0", 2), "0", false},
		{"stop at entry", trade(journal.Long, "100", "110", "0", "100", 2), "0", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := PlannedRisk(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRewardRisk(t *testing.T) {
	t.Parallel()

	rr, ok := RewardRisk(trade(journal.Long, "100", "110", "115", "95", 1))
	require.True(t, ok)
	assert.InDelta(t, 3.0, rr, 1e-9)

	rr, ok = RewardRisk(trade(journal.Short, "100", "90", "90", "104", 1))
	require.True(t, ok)
	assert.InDelta(t, 2.5, rr, 1e-9)

	_, ok = RewardRisk(trade(journal.Long, "100", "110", "0", "95", 1))
	assert.False(t, ok)
	_, ok = RewardRisk(trade(journal.Long, "100", "110", "115", "0", 1))
	assert.False(t, ok)
}

func TestRMultiple(t *testing.T) {
	t.Parallel()

	r, ok := RMultiple(trade(journal.Long, "100", "110", "0", "95", 2))
	require.True(t, ok)
	assert.True(t, d("2").Equal(r), "got %s", r)

	r, ok = RMultiple(trade(journal.Short, "100", "104", "0", "104", 1))
	require.True(t, ok)
	assert.True(t, d("-1").Equal(r), "got %s", r)

	_, ok = RMultiple(trade(journal.Short, "100", "104", "0", "0", 1))
	assert.False(t, ok)
}

func codes(vs []Violation) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Code)
	}
	return out
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    journal.TradeRecord
		want []string
	}{
		{"clean long", trade(journal.Long, "100", "110", "110", "95", 1), nil},
		{"clean short", trade(journal.Short, "100", "96", "90", "104", 1), nil},
		{"stopped at stop", trade(journal.Long, "100", "95", "110", "95", 1), nil},
		{"no stop", trade(journal.Long, "100", "110", "0", "0", 1), []string{CodeNoStop}},
		{"long stop above", trade(journal.Long, "100", "110", "0", "101", 1), []string{CodeStopWrongSide}},
		{"short stop below", trade(journal.Short, "100", "90", "0", "99", 1), []string{CodeStopWrongSide}},
		{"long target below", trade(journal.Long, "100", "99", "98", "95", 1), []string{CodeTargetWrongSide}},
		{"short target above", trade(journal.Short, "100", "101", "102", "105", 1), []string{CodeTargetWrongSide}},
		{"blew through stop", trade(journal.Long, "100", "90", "0", "95", 2), []string{CodeLossBeyondStop}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, codes(Check(tt.r)))
		})
	}
}

func TestViolationString(t *testing.T) {
	t.Parallel()

	vs := Check(trade(journal.Long, "100", "90", "0", "95", 2))
	require.Len(t, vs, 1)
	assert.Equal(t, "LOSS_BEYOND_STOP: lost 20.00 against a planned risk of 10.00", vs[0].String())
}
