package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentic-research/csvjson/api"
	"github.com/agentic-research/csvjson/internal/config"
	"github.com/agentic-research/csvjson/internal/files"
	"github.com/agentic-research/csvjson/internal/ingest"
	"github.com/agentic-research/csvjson/internal/nest"
	"github.com/agentic-research/csvjson/internal/table"
	"github.com/dustin/go-humanize"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the csvjson command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "csvjson [input.csv] [output.json]",
		Short: "Convert a CSV export into one nested JSON document",
		Long: `csvjson reads a CSV file whose headers are dotted paths
("address.city", "skills.0") and writes a JSON document with one nested
record per row, keyed by the row's "name" column.

Without arguments it converts export.csv into export.json.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			if len(args) > 1 {
				cfg.Output = args[1]
			}
			return runConvert(cmd, cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Path to a config file (yaml, json or toml)")
	pf.Int("max-index", nest.DefaultMaxIndex, "Largest list index a header may address; columns beyond it are skipped")
	pf.String("meta-name", api.DefaultMetadata().Name, "Value of the Name metadata entry")
	pf.String("meta-version", api.DefaultMetadata().Version, "Value of the Version metadata entry")
	pf.BoolP("verbose", "v", false, "Log every assembled record")

	f := rootCmd.Flags()
	f.StringP("input", "i", "export.csv", "CSV file to read")
	f.StringP("output", "o", "export.json", "JSON file to write")
	f.String("sqlite", "", "Also export the records to this SQLite database")
	f.Int("indent", 2, "Spaces per indent level (0 for compact output)")

	rootCmd.AddCommand(newBuildCmd(&configPath))
	rootCmd.AddCommand(newQueryCmd(&configPath))
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	return config.Load(path, cmd.Flags())
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newEngine(cmd *cobra.Command, cfg *config.Config) *ingest.Engine {
	return ingest.NewEngine(
		ingest.WithLogger(newLogger(cmd.ErrOrStderr(), cfg.Verbose)),
		ingest.WithMaxIndex(cfg.MaxIndex),
	)
}

// dirFS returns a filesystem rooted at path's directory and the base name
// of path within it.
func dirFS(path string) (billy.Filesystem, string) {
	return osfs.New(filepath.Dir(path)), filepath.Base(path)
}

func readTable(path string) (*table.Table, error) {
	fsys, name := dirFS(path)
	return files.ReadTable(fsys, name)
}

func runConvert(cmd *cobra.Command, cfg *config.Config) error {
	tbl, err := readTable(cfg.Input)
	if err != nil {
		return err
	}

	engine := newEngine(cmd, cfg)
	doc := ingest.NewDocument(cfg.Metadata)
	report, err := engine.Convert(tbl, doc)
	if err != nil {
		return err
	}

	fsys, name := dirFS(cfg.Output)
	n, err := files.WriteJSON(fsys, name, doc, cfg.Indent)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "JSON written: %s (%d records, %s)\n", cfg.Output, report.Records, humanize.Bytes(uint64(n)))
	if !report.Replaced.IsEmpty() {
		fmt.Fprintf(out, "%d rows replaced an earlier record with the same name\n", report.Replaced.GetCardinality())
	}
	if !report.Shadowed.IsEmpty() {
		fmt.Fprintf(out, "%d rows replaced a metadata entry\n", report.Shadowed.GetCardinality())
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(out, "skipped columns (index above %d): %s\n", cfg.MaxIndex, strings.Join(report.Skipped, ", "))
	}

	if cfg.SQLite != "" {
		// Row warnings were already logged by the JSON pass.
		quiet := ingest.NewEngine(
			ingest.WithLogger(slog.New(slog.DiscardHandler)),
			ingest.WithMaxIndex(cfg.MaxIndex),
		)
		if err := exportSQLite(cmd, quiet, tbl, cfg.Metadata, cfg.SQLite); err != nil {
			return err
		}
		fmt.Fprintf(out, "SQLite written: %s\n", cfg.SQLite)
	}
	return nil
}
