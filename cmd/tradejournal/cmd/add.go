package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade",
	Long: `Append a trade to the journal. Profit/loss is derived from the
direction, prices and position size.

Example:
  tradejournal add --market "E-mini S&P 500" --direction Short \
    --entry 5123.25 --exit 5110.75 --size 1 \
    --rationale "rejection at prior high" --conditions "range day"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var addOpts struct {
	date, clock       string
	market, direction string
	entry, exit       string
	tp, sl            string
	size              int64

	rationale, conditions, emotions, review string
}

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.StringVar(&addOpts.date, "date", "", "trade date YYYY-MM-DD (default today)")
	f.StringVar(&addOpts.clock, "time", "", "entry time HH:MM[:SS] (default now)")
	f.StringVarP(&addOpts.market, "market", "m", string(journal.MicroNasdaq), "market traded")
	f.StringVarP(&addOpts.direction, "direction", "d", string(journal.Long), "Long or Short")
	f.StringVar(&addOpts.entry, "entry", "", "entry price (required)")
	f.StringVar(&addOpts.exit, "exit", "", "exit price (required)")
	f.Int64VarP(&addOpts.size, "size", "s", 1, "position size in contracts")
	f.StringVar(&addOpts.tp, "tp", "0", "take profit price, 0 for none")
	f.StringVar(&addOpts.sl, "sl", "0", "stop loss price, 0 for none")
	f.StringVar(&addOpts.rationale, "rationale", "", "trade rationale")
	f.StringVar(&addOpts.conditions, "conditions", "", "market conditions")
	f.StringVar(&addOpts.emotions, "emotions", "", "emotional reflection")
	f.StringVar(&addOpts.review, "review", "", "post-trade analysis")

	addCmd.MarkFlagRequired("entry")
	addCmd.MarkFlagRequired("exit")
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := parseEntry(time.Now())
	if err != nil {
		return err
	}

	store := openStore()
	t, err := store.Load()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	t, err = journal.Record(t, e)
	if err != nil {
		return err
	}
	if err := store.Save(t); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	rec := t.Records[t.Len()-1]
	log.Info("trade recorded",
		zap.String("market", string(rec.Market)),
		zap.String("direction", string(rec.Direction)),
		zap.String("profit_loss", rec.ProfitLoss.StringFixed(2)),
		zap.Int("trades", t.Len()))

	fmt.Fprintf(cmd.OutOrStdout(), "Trade saved successfully! P/L: $%s\n", rec.ProfitLoss.StringFixed(2))
	return nil
}

func parseEntry(now time.Time) (journal.Entry, error) {
	var (
		e   journal.Entry
		err error
	)

	e.Date = journal.DateOf(now)
	if addOpts.date != "" {
		if e.Date, err = journal.ParseDate(addOpts.date); err != nil {
			return e, err
		}
	}
	e.EntryTime = journal.ClockOf(now)
	if addOpts.clock != "" {
		if e.EntryTime, err = journal.ParseClock(addOpts.clock); err != nil {
			return e, err
		}
	}
	if e.Market, err = journal.ParseMarket(addOpts.market); err != nil {
		return e, err
	}
	if e.Direction, err = journal.ParseDirection(addOpts.direction); err != nil {
		return e, err
	}

	prices := []struct {
		name string
		in   string
		out  *decimal.Decimal
	}{
		{"entry", addOpts.entry, &e.EntryPrice},
		{"exit", addOpts.exit, &e.ExitPrice},
		{"tp", addOpts.tp, &e.TakeProfit},
		{"sl", addOpts.sl, &e.StopLoss},
	}
	for _, p := range prices {
		v, err := decimal.NewFromString(p.in)
		if err != nil {
			return e, fmt.Errorf("--%s: invalid price %q", p.name, p.in)
		}
		*p.out = v
	}

	e.Size = addOpts.size
	e.Rationale = addOpts.rationale
	e.MarketConditions = addOpts.conditions
	e.Emotions = addOpts.emotions
	e.Review = addOpts.review
	return e, nil
}
