package cmd

import (
	"fmt"

	"github.com/ziadkadry99/mdview/internal/config"
	"github.com/ziadkadry99/mdview/internal/highlight"
	"github.com/ziadkadry99/mdview/internal/loader"
	"github.com/ziadkadry99/mdview/internal/logger"
	"github.com/ziadkadry99/mdview/internal/parser"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `mdview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger for cfg and the --verbose flag.
func newLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.FromConfig(cfg.LogLevel, verbose)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log, nil
}

// resolveDocuments expands the configured document globs.
func resolveDocuments(patterns []string, cfg *config.Config) ([]string, error) {
	docs, err := loader.Expand(patterns, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %v matched nothing", loader.ErrNoDocuments, patterns)
	}
	return docs, nil
}

// newParser creates the block parser configured by cfg.
func newParser(cfg *config.Config) *parser.Parser {
	return parser.New(parser.WithFlushUnterminated(cfg.FlushUnterminated))
}

// buildLoader creates a loader that reads local files and fetches URLs.
func buildLoader(cfg *config.Config, opts ...loader.Option) *loader.Loader {
	fetcher := loader.Router{
		Local:  loader.FileFetcher{},
		Remote: loader.NewHTTPFetcher(cfg.FetchTimeout),
	}
	opts = append([]loader.Option{
		loader.WithConcurrency(cfg.Concurrency),
		loader.WithParser(newParser(cfg)),
	}, opts...)
	return loader.New(fetcher, opts...)
}

// newHighlighter creates the code highlighter for cfg.
func newHighlighter(cfg *config.Config) highlight.Highlighter {
	return highlight.NewGoldmark(cfg.HighlightStyle)
}
