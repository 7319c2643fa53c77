// Package metrics aggregates a trade journal into summary statistics and a
// cumulative P/L series. Everything is recomputed from the table on each call.
package metrics

import (
	"sort"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
	"github.com/shopspring/decimal"
)

// Summary is the aggregate view of a journal.
type Summary struct {
	TotalTrades int
	TotalPL     decimal.Decimal

	// Wins counts P/L > 0 and Losses P/L < 0. Flat trades count in neither.
	Wins   int
	Losses int

	GrossProfit decimal.Decimal
	GrossLoss   decimal.Decimal // positive magnitude
	LargestWin  decimal.Decimal
	LargestLoss decimal.Decimal // most negative P/L, zero when no losses

	// MaxDrawdown is the largest peak-to-trough fall of the cumulative
	// series, as a positive amount.
	MaxDrawdown decimal.Decimal

	// Planned counts trades with a usable stop; TotalR sums their
	// R-multiples. OffPlan counts trades with at least one plan violation.
	Planned int
	TotalR  decimal.Decimal
	OffPlan int

	ByMarket []MarketSummary
}

// MarketSummary breaks the totals down per market. The rows always add up
// to the totals; trades without a market are grouped under "".
type MarketSummary struct {
	Market  journal.Market
	Trades  int
	Wins    int
	Losses  int
	TotalPL decimal.Decimal
}

func (m MarketSummary) WinRate() (float64, bool) {
	return rate(m.Wins, m.Trades)
}

// Empty reports whether there was nothing to summarize.
func (s Summary) Empty() bool { return s.TotalTrades == 0 }

// WinRate is wins as a percentage of all trades. ok is false for an empty
// journal.
func (s Summary) WinRate() (pct float64, ok bool) {
	return rate(s.Wins, s.TotalTrades)
}

// ProfitFactor is gross profit over gross loss. ok is false when there are
// no losing trades.
func (s Summary) ProfitFactor() (float64, bool) {
	if s.GrossLoss.IsZero() {
		return 0, false
	}
	return s.GrossProfit.Div(s.GrossLoss).InexactFloat64(), true
}

// AvgWin is the mean P/L of winning trades.
func (s Summary) AvgWin() (decimal.Decimal, bool) {
	if s.Wins == 0 {
		return decimal.Zero, false
	}
	return s.GrossProfit.Div(decimal.NewFromInt(int64(s.Wins))), true
}

// AvgLoss is the mean P/L of losing trades, as a negative amount.
func (s Summary) AvgLoss() (decimal.Decimal, bool) {
	if s.Losses == 0 {
		return decimal.Zero, false
	}
	return s.GrossLoss.Neg().Div(decimal.NewFromInt(int64(s.Losses))), true
}

// AvgR is the mean R-multiple of the trades that recorded a stop.
func (s Summary) AvgR() (decimal.Decimal, bool) {
	if s.Planned == 0 {
		return decimal.Zero, false
	}
	return s.TotalR.Div(decimal.NewFromInt(int64(s.Planned))), true
}

func rate(wins, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return float64(wins) / float64(total) * 100, true
}

// Summarize computes the summary of every record in t.
func Summarize(t journal.Table) Summary {
	s := Summary{
		TotalTrades: t.Len(),
		TotalPL:     decimal.Zero,
		GrossProfit: decimal.Zero,
		GrossLoss:   decimal.Zero,
		LargestWin:  decimal.Zero,
		LargestLoss: decimal.Zero,
		MaxDrawdown: decimal.Zero,
		TotalR:      decimal.Zero,
	}

	byMarket := map[journal.Market]*MarketSummary{}
	for _, r := range t.Records {
		pl := r.ProfitLoss
		s.TotalPL = s.TotalPL.Add(pl)

		ms, ok := byMarket[r.Market]
		if !ok {
			ms = &MarketSummary{Market: r.Market, TotalPL: decimal.Zero}
			byMarket[r.Market] = ms
		}
		ms.Trades++
		ms.TotalPL = ms.TotalPL.Add(pl)

		if rm, ok := risk.RMultiple(r); ok {
			s.Planned++
			s.TotalR = s.TotalR.Add(rm)
		}
		if len(risk.Check(r)) > 0 {
			s.OffPlan++
		}

		switch pl.Sign() {
		case 1:
			s.Wins++
			ms.Wins++
			s.GrossProfit = s.GrossProfit.Add(pl)
			if pl.GreaterThan(s.LargestWin) {
				s.LargestWin = pl
			}
		case -1:
			s.Losses++
			ms.Losses++
			s.GrossLoss = s.GrossLoss.Sub(pl)
			if pl.LessThan(s.LargestLoss) {
				s.LargestLoss = pl
			}
		}
	}

	s.MaxDrawdown = MaxDrawdown(CumulativeSeries(t))

	for _, m := range journal.Markets {
		if ms, ok := byMarket[m]; ok {
			s.ByMarket = append(s.ByMarket, *ms)
			delete(byMarket, m)
		}
	}
	// Rows loaded without a Market column land in the "" bucket.
	rest := make([]journal.Market, 0, len(byMarket))
	for m := range byMarket {
		rest = append(rest, m)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, m := range rest {
		s.ByMarket = append(s.ByMarket, *byMarket[m])
	}
	return s
}

// Point is one date of the cumulative series.
type Point struct {
	Date       time.Time
	DayPL      decimal.Decimal
	Cumulative decimal.Decimal
}

// CumulativeSeries groups P/L by calendar date, orders the dates and keeps a
// running total. A date with several trades yields a single point.
func CumulativeSeries(t journal.Table) []Point {
	if t.Empty() {
		return nil
	}

	daily := map[time.Time]decimal.Decimal{}
	for _, r := range t.Records {
		day := journal.DateOf(r.Date)
		if v, ok := daily[day]; ok {
			daily[day] = v.Add(r.ProfitLoss)
		} else {
			daily[day] = r.ProfitLoss
		}
	}

	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]Point, 0, len(days))
	running := decimal.Zero
	for _, day := range days {
		running = running.Add(daily[day])
		out = append(out, Point{Date: day, DayPL: daily[day], Cumulative: running})
	}
	return out
}

// MaxDrawdown returns the largest fall from a running peak in series. The
// peak starts at zero, before the first trade.
func MaxDrawdown(series []Point) decimal.Decimal {
	peak := decimal.Zero
	dd := decimal.Zero
	for _, p := range series {
		if p.Cumulative.GreaterThan(peak) {
			peak = p.Cumulative
		}
		if fall := peak.Sub(p.Cumulative); fall.GreaterThan(dd) {
			dd = fall
		}
	}
	return dd
}
