package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show journaled trades",
	Long: `Print the trades in the journal, oldest first.

Examples:
  tradejournal list
  tradejournal list --from 2024-05-01 --to 2024-05-31
  tradejournal list --org > trades.org`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFrom, listTo string
	listOrg          bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFrom, "from", "", "first date YYYY-MM-DD")
	listCmd.Flags().StringVar(&listTo, "to", "", "last date YYYY-MM-DD")
	listCmd.Flags().BoolVar(&listOrg, "org", false, "render as Org-mode")
}

func runList(cmd *cobra.Command, args []string) error {
	t, err := loadRange(listFrom, listTo)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if t.Empty() {
		fmt.Fprintln(w, "No trades to display.")
		return nil
	}
	if listOrg {
		fmt.Fprintln(w, journal.FormatTradesOrg(t.Records))
		return nil
	}
	printTrades(w, t.Records)
	return nil
}

func printTrades(w io.Writer, recs []journal.TradeRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tTime\tMarket\tDirection\tSize\tEntry\tExit\tP/L\tR\t")
	for _, r := range recs {
		rm := "-"
		if v, ok := risk.RMultiple(r); ok {
			rm = v.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t\n",
			r.Date.Format(journal.DateLayout),
			r.EntryTime,
			r.Market,
			r.Direction,
			r.Size,
			r.EntryPrice.StringFixed(2),
			r.ExitPrice.StringFixed(2),
			r.ProfitLoss.StringFixed(2),
			rm)
	}
	tw.Flush()
}
