package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mdview/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mdview",
	Short: "Browse Markdown documents in the browser",
	Long: `mdview parses Markdown documents into headings, paragraphs, code blocks
and tables and serves them as a single searchable page with a heading
outline, dark mode and live reload. Documents can be local files, globs
or http(s) URLs.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
