package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".mdview.yml"

// DefaultExcludes are glob patterns never loaded as documents.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"vendor/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:          "Documentation",
		Documents:      []string{"docs/**/*.md"},
		Exclude:        append([]string(nil), DefaultExcludes...),
		Port:           8080,
		DataDir:        ".mdview",
		OutputDir:      "site",
		Concurrency:    4,
		FetchTimeout:   15 * time.Second,
		Theme:          ThemeLight,
		HighlightStyle: "github",
		LogLevel:       "info",
	}
}
