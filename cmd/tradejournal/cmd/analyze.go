package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rustyeddy/tradejournal/analyst"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ask a local language model to review your trades",
	Long: `Send the journal (date, market, direction, prices, P/L, rationale and
market conditions) to an Ollama server and print its feedback.

The request is bounded by analyst.timeout and is cancelled on Ctrl-C.

Examples:
  tradejournal analyze
  tradejournal analyze --model llama3 --timeout 5m --from 2024-05-01`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var (
	analyzeFrom, analyzeTo string
	analyzeModel           string
	analyzeTimeout         time.Duration
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "first date YYYY-MM-DD")
	analyzeCmd.Flags().StringVar(&analyzeTo, "to", "", "last date YYYY-MM-DD")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "model name (overrides config)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 0, "request timeout (overrides config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	t, err := loadRange(analyzeFrom, analyzeTo)
	if err != nil {
		return err
	}

	model := cfg.Analyst.Model
	if analyzeModel != "" {
		model = analyzeModel
	}
	timeout, err := cfg.Analyst.ParseTimeout()
	if err != nil {
		return err
	}
	if analyzeTimeout > 0 {
		timeout = analyzeTimeout
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	req := analyst.New(analyst.NewOllama(cfg.Analyst.BaseURL, log), model, timeout, log)
	return analyze(ctx, cmd, req, t)
}

type requester interface {
	Request(ctx context.Context, t journal.Table) (string, error)
}

func analyze(ctx context.Context, cmd *cobra.Command, req requester, t journal.Table) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	fmt.Fprintln(errOut, "Analyzing trades...")
	text, err := req.Request(ctx, t)
	switch {
	case errors.Is(err, analyst.ErrMissingColumns):
		fmt.Fprintf(errOut, "Warning: %v. Please ensure trades have been saved correctly.\n", err)
		return nil
	case errors.Is(err, analyst.ErrNoTrades):
		fmt.Fprintln(out, "No trades to display.")
		return nil
	case errors.Is(err, context.Canceled):
		return errors.New("analysis cancelled")
	case err != nil:
		return fmt.Errorf("analysis: %w", err)
	}

	fmt.Fprintln(out, "AI Analysis:")
	fmt.Fprintln(out, text)
	return nil
}
