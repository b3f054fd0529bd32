package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/agentic-research/csvjson/internal/ingest"
	"github.com/spf13/cobra"
)

func newQueryCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "query [source] [jsonpath]",
		Short: "Print JSONPath matches from a CSV file or a built database",
		Long: `query converts the source in memory and prints every match of the
JSONPath expression, one JSON value per line. A source ending in .db is read
as a database written by "csvjson build".`,
		Example: `  csvjson query export.csv '$.alice.address.city'
  csvjson query export.db '$.*.skills[0]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, selector := args[0], args[1]

			doc, err := loadSource(cmd, *configPath, source)
			if err != nil {
				return err
			}

			matches, err := ingest.NewJsonWalker().Query(doc.Root, selector)
			if err != nil {
				return err
			}
			for _, m := range matches {
				line, err := json.Marshal(m.Value())
				if err != nil {
					return fmt.Errorf("encode match: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(line))
			}
			return nil
		},
	}
}

func loadSource(cmd *cobra.Command, configPath, source string) (*ingest.Document, error) {
	if filepath.Ext(source) == ".db" {
		return ingest.LoadDocument(cmd.Context(), source)
	}

	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return nil, err
	}
	tbl, err := readTable(source)
	if err != nil {
		return nil, err
	}
	doc := ingest.NewDocument(cfg.Metadata)
	if _, err := newEngine(cmd, cfg).Convert(tbl, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
