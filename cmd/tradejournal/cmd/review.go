package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/risk"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Check trades against their recorded stop and target",
	Long: `List trades that broke their own plan: no stop, a stop or target on
the wrong side of entry, or a loss larger than the planned risk.

Example:
  tradejournal review --from 2024-05-01`,
	Args: cobra.NoArgs,
	RunE: runReview,
}

var reviewFrom, reviewTo string

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().StringVar(&reviewFrom, "from", "", "first date YYYY-MM-DD")
	reviewCmd.Flags().StringVar(&reviewTo, "to", "", "last date YYYY-MM-DD")
}

func runReview(cmd *cobra.Command, args []string) error {
	t, err := loadRange(reviewFrom, reviewTo)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if t.Empty() {
		fmt.Fprintln(w, "No trades to display.")
		return nil
	}

	off := 0
	for _, r := range t.Records {
		vs := risk.Check(r)
		if len(vs) == 0 {
			continue
		}
		off++
		fmt.Fprintf(w, "%s %s %s %s\n", r.Date.Format(journal.DateLayout), r.EntryTime, r.Market, r.Direction)
		for _, v := range vs {
			fmt.Fprintf(w, "  - %s\n", v)
		}
	}
	fmt.Fprintf(w, "%d of %d trades off plan\n", off, t.Len())
	return nil
}
