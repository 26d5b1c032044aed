package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mdview/internal/loader"
	"github.com/ziadkadry99/mdview/internal/progress"
	"github.com/ziadkadry99/mdview/internal/site"
	"github.com/ziadkadry99/mdview/internal/terminal"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the viewer as a static site",
	Long:  `Loads every configured document and writes a self-contained viewer page with its assets and a search index.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		docs, err := resolveDocuments(cfg.Documents, cfg)
		if err != nil {
			return err
		}

		prog := progress.Documents(progress.NewReporter())
		ld := buildLoader(cfg, loader.WithProgress(prog.Update))

		g := site.NewGenerator(ld, docs, cfg.OutputDir, cfg.Title)
		g.Dark = cfg.DefaultDark()
		g.Highlighter = newHighlighter(cfg)
		g.Log = log

		n, err := g.Generate(context.Background())
		prog.Finish()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), terminal.SuccessStyle.Render(
			fmt.Sprintf("Exported %d blocks from %d documents to %s", n, len(docs), cfg.OutputDir)))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides output_dir)")
	rootCmd.AddCommand(buildCmd)
}
