package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to other formats",
	Long: `Export the journal.

Subcommands:
  sqlite - Mirror the journal into a SQLite database
  org    - Write the journal as Org-mode headings

Examples:
  tradejournal export sqlite --db trades.sqlite
  tradejournal export org --out trades.org`,
}

var exportSQLiteCmd = &cobra.Command{
	Use:   "sqlite",
	Short: "Mirror the journal into a SQLite database",
	Args:  cobra.NoArgs,
	RunE:  runExportSQLite,
}

var exportOrgCmd = &cobra.Command{
	Use:   "org",
	Short: "Write the journal as Org-mode",
	Args:  cobra.NoArgs,
	RunE:  runExportOrg,
}

var (
	exportDBPath  string
	exportOrgPath string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportSQLiteCmd)
	exportCmd.AddCommand(exportOrgCmd)

	exportSQLiteCmd.Flags().StringVar(&exportDBPath, "db", "", "SQLite database path (default journal.sqlite_path)")
	exportOrgCmd.Flags().StringVarP(&exportOrgPath, "out", "o", "", "output file (default stdout)")
}

func runExportSQLite(cmd *cobra.Command, args []string) error {
	path := exportDBPath
	if path == "" {
		path = cfg.Journal.SQLitePath
	}
	if path == "" {
		return fmt.Errorf("no database path: use --db or set journal.sqlite_path")
	}

	t, err := openStore().Load()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	db, err := journal.NewSQLite(path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := db.Replace(t); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	log.Info("journal exported", zap.String("db", path), zap.Int("trades", t.Len()))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d trades to %s\n", t.Len(), path)
	return nil
}

func runExportOrg(cmd *cobra.Command, args []string) error {
	t, err := openStore().Load()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	org := journal.FormatTradesOrg(t.Records)
	if exportOrgPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), org)
		return nil
	}
	if err := os.WriteFile(exportOrgPath, []byte(org), 0644); err != nil {
		return fmt.Errorf("write org: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d trades to %s\n", t.Len(), exportOrgPath)
	return nil
}
