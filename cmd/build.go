package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/agentic-research/csvjson/api"
	"github.com/agentic-research/csvjson/internal/ingest"
	"github.com/agentic-research/csvjson/internal/table"
	"github.com/spf13/cobra"
)

func newBuildCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "build [input.csv] [output.db]",
		Short: "Build a SQLite database with one row per record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			output := args[1]

			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}

			tbl, err := readTable(source)
			if err != nil {
				return err
			}

			start := time.Now()
			fmt.Fprintf(cmd.OutOrStdout(), "Building %s from %s...\n", output, source)
			if err := exportSQLite(cmd, newEngine(cmd, cfg), tbl, cfg.Metadata, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done in %v.\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

// exportSQLite writes tbl into a fresh database at output. On failure the
// database file is removed.
func exportSQLite(cmd *cobra.Command, engine *ingest.Engine, tbl *table.Table, meta api.Metadata, output string) error {
	_ = os.Remove(output) // Overwrite

	writer, err := ingest.NewSQLiteWriter(cmd.Context(), output)
	if err != nil {
		return err
	}

	fail := func(err error) error {
		_ = writer.Abort()
		_ = os.Remove(output)
		return err
	}

	if err := writer.SetMetadata(meta); err != nil {
		return fail(err)
	}
	if _, err := engine.Convert(tbl, writer); err != nil {
		return fail(err)
	}
	if err := writer.Commit(); err != nil {
		_ = os.Remove(output)
		return err
	}
	return nil
}
