package metrics

import (
	"fmt"
	"io"

	"github.com/rustyeddy/tradejournal/journal"
)

const noTrades = "No trades to display."

func PrintSummary(w io.Writer, s Summary) {
	if s.Empty() {
		fmt.Fprintln(w, noTrades)
		return
	}

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Metrics")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Total Trades:      %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Total Profit/Loss: $%s\n", s.TotalPL.StringFixed(2))
	fmt.Fprintf(w, "Winning Trades:    %d\n", s.Wins)
	fmt.Fprintf(w, "Losing Trades:     %d\n", s.Losses)
	if wr, ok := s.WinRate(); ok {
		fmt.Fprintf(w, "Win Rate:          %.2f%%\n", wr)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Distribution")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Gross Profit:      $%s\n", s.GrossProfit.StringFixed(2))
	fmt.Fprintf(w, "Gross Loss:        $%s\n", s.GrossLoss.StringFixed(2))
	if pf, ok := s.ProfitFactor(); ok {
		fmt.Fprintf(w, "Profit Factor:     %.2f\n", pf)
	}
	if avg, ok := s.AvgWin(); ok {
		fmt.Fprintf(w, "Average Win:       $%s\n", avg.StringFixed(2))
		fmt.Fprintf(w, "Largest Win:       $%s\n", s.LargestWin.StringFixed(2))
	}
	if avg, ok := s.AvgLoss(); ok {
		fmt.Fprintf(w, "Average Loss:      $%s\n", avg.StringFixed(2))
		fmt.Fprintf(w, "Largest Loss:      $%s\n", s.LargestLoss.StringFixed(2))
	}
	if s.MaxDrawdown.IsPositive() {
		fmt.Fprintf(w, "Max Drawdown:      $%s\n", s.MaxDrawdown.StringFixed(2))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Plan")
	fmt.Fprintln(w, "--------------------------------------------------")
	if avg, ok := s.AvgR(); ok {
		fmt.Fprintf(w, "Average R:         %sR (%d trades with a stop)\n", avg.StringFixed(2), s.Planned)
	}
	fmt.Fprintf(w, "Off-Plan Trades:   %d\n", s.OffPlan)

	if len(s.ByMarket) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By Market")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, m := range s.ByMarket {
			wr, _ := m.WinRate()
			name := string(m.Market)
			if name == "" {
				name = "(unknown)"
			}
			fmt.Fprintf(w, "%-22s %3d trades  $%10s  %6.2f%%\n",
				name, m.Trades, m.TotalPL.StringFixed(2), wr)
		}
	}
}

func PrintSeries(w io.Writer, series []Point) {
	if len(series) == 0 {
		fmt.Fprintln(w, noTrades)
		return
	}

	fmt.Fprintf(w, "%-10s  %12s  %14s\n", "Date", "Day P/L", "Cumulative P/L")
	for _, p := range series {
		fmt.Fprintf(w, "%-10s  %12s  %14s\n",
			p.Date.Format(journal.DateLayout), p.DayPL.StringFixed(2), p.Cumulative.StringFixed(2))
	}
}
