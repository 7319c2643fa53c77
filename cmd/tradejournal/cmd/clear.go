package cmd

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all trades",
	Long: `Remove every trade from the journal, keeping its header.

Example:
  tradejournal clear --yes`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYes bool

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "confirm deleting all trades")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return errors.New("refusing to delete all trades without --yes")
	}

	store := openStore()
	t, err := store.Load()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	n := t.Len()
	if err := store.Save(journal.Clear(t)); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	log.Info("journal cleared", zap.Int("deleted", n))
	fmt.Fprintln(cmd.OutOrStdout(), "All trades deleted!")
	return nil
}
