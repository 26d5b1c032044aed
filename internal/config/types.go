package config

import "time"

// Theme is the colour scheme used when no preference has been stored.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level mdview configuration, corresponding to .mdview.yml.
type Config struct {
	Title             string        `yaml:"title" koanf:"title"`
	Documents         []string      `yaml:"documents" koanf:"documents"`
	Exclude           []string      `yaml:"exclude" koanf:"exclude"`
	Port              int           `yaml:"port" koanf:"port"`
	DataDir           string        `yaml:"data_dir" koanf:"data_dir"`
	OutputDir         string        `yaml:"output_dir" koanf:"output_dir"`
	Concurrency       int           `yaml:"concurrency" koanf:"concurrency"`
	FetchTimeout      time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	Theme             Theme         `yaml:"theme" koanf:"theme"`
	HighlightStyle    string        `yaml:"highlight_style" koanf:"highlight_style"`
	FlushUnterminated bool          `yaml:"flush_unterminated" koanf:"flush_unterminated"`
	Watch             bool          `yaml:"watch" koanf:"watch"`
	LogLevel          string        `yaml:"log_level" koanf:"log_level"`
}
