package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mdview/internal/blocks"
	"github.com/ziadkadry99/mdview/internal/terminal"
)

var (
	parseJSON     bool
	parseQuery    string
	parseHeadings bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [documents...]",
	Short: "Parse documents and print their blocks",
	Long: `Loads the given documents (or the configured ones) and prints the parsed
blocks, either styled for the terminal or as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		patterns := cfg.Documents
		if len(args) > 0 {
			patterns = args
		}
		docs, err := resolveDocuments(patterns, cfg)
		if err != nil {
			return err
		}

		bs, err := buildLoader(cfg).LoadAll(context.Background(), docs)
		if err != nil {
			return err
		}
		log.Debug("parsed", "documents", len(docs), "blocks", len(bs))

		if parseHeadings {
			bs = blocks.Headings(bs)
		}
		bs = blocks.Filter(bs, parseQuery)

		out := cmd.OutOrStdout()
		if parseJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(bs)
		}

		if len(bs) == 0 {
			fmt.Fprintln(out, terminal.DimStyle.Render("No matching blocks."))
			return nil
		}
		if parseHeadings {
			fmt.Fprint(out, terminal.RenderOutline(bs))
			return nil
		}
		fmt.Fprintln(out, terminal.Render(bs))
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print blocks as JSON")
	parseCmd.Flags().StringVarP(&parseQuery, "query", "q", "", "only print blocks containing this text")
	parseCmd.Flags().BoolVar(&parseHeadings, "headings", false, "only print headings")
	rootCmd.AddCommand(parseCmd)
}
