package cmd

import (
	"github.com/rustyeddy/tradejournal/metrics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance metrics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show cumulative profit/loss over time",
	Args:  cobra.NoArgs,
	RunE:  runSeries,
}

var statsFrom, statsTo string

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seriesCmd)

	for _, c := range []*cobra.Command{statsCmd, seriesCmd} {
		c.Flags().StringVar(&statsFrom, "from", "", "first date YYYY-MM-DD")
		c.Flags().StringVar(&statsTo, "to", "", "last date YYYY-MM-DD")
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	t, err := loadRange(statsFrom, statsTo)
	if err != nil {
		return err
	}
	metrics.PrintSummary(cmd.OutOrStdout(), metrics.Summarize(t))
	return nil
}

func runSeries(cmd *cobra.Command, args []string) error {
	t, err := loadRange(statsFrom, statsTo)
	if err != nil {
		return err
	}
	metrics.PrintSeries(cmd.OutOrStdout(), metrics.CumulativeSeries(t))
	return nil
}
