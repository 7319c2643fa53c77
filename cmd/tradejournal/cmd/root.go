package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/internal/logger"
	"github.com/rustyeddy/tradejournal/internal/tracing"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "A personal trade journal with performance metrics and AI review",
	Long: `Tradejournal records manually entered futures trades to a CSV file.

It provides tools for:
  - Journaling trades with rationale, conditions and post-trade notes
  - Performance metrics (win rate, profit factor, drawdown)
  - Cumulative P/L over time
  - Asking a local language model (Ollama) to review your trades
  - Exporting the journal to SQLite or Org-mode`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

var (
	cfgFile     string
	journalPath string
	logLevel    string

	cfg        *config.Config
	log        *zap.Logger
	stopTracer func(context.Context) error
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&journalPath, "journal", "j", "", "journal CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
}

func setup(cmd *cobra.Command, args []string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if journalPath != "" {
		c.Journal.Path = journalPath
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	cfg = c

	log, err = logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	stopTracer = nil
	if cfg.Trace.Enabled {
		stopTracer, err = tracing.Init(os.Stderr, version)
		if err != nil {
			log.Warn("tracing disabled", zap.Error(err))
		}
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if stopTracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stopTracer(ctx); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}
	if log != nil {
		_ = log.Sync()
	}
	return nil
}

func openStore() *journal.CSVStore {
	return journal.NewCSV(cfg.Journal.Path, log)
}

// loadRange loads the journal and keeps the records dated within the
// --from/--to bounds, when given.
func loadRange(from, to string) (journal.Table, error) {
	t, err := openStore().Load()
	if err != nil {
		return journal.Table{}, fmt.Errorf("load journal: %w", err)
	}
	if from == "" && to == "" {
		return t, nil
	}

	var start, end time.Time
	if from != "" {
		if start, err = journal.ParseDate(from); err != nil {
			return journal.Table{}, fmt.Errorf("--from: %w", err)
		}
	}
	if to != "" {
		if end, err = journal.ParseDate(to); err != nil {
			return journal.Table{}, fmt.Errorf("--to: %w", err)
		}
	}
	return journal.Between(t, start, end), nil
}
