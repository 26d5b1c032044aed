package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectDocuments suggests a documents glob based on what exists in the
// current directory.
func detectDocuments() string {
	for _, candidate := range []string{"docs/**/*.md", "*.md"} {
		base := strings.SplitN(candidate, "*", 2)[0]
		if base == "" {
			base = "."
		}
		if matches, _ := filepath.Glob(filepath.Join(base, "*.md")); len(matches) > 0 {
			return candidate
		}
	}
	return "docs/**/*.md"
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to mdview! Let's configure your viewer.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 2. Documents.
	docsPrompt := promptui.Prompt{
		Label:   "Documents (comma-separated paths, globs or URLs)",
		Default: detectDocuments(),
	}
	docsStr, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("documents: %w", err)
	}
	cfg.Documents = splitAndTrim(docsStr)

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Default theme.
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{string(ThemeLight), string(ThemeDark)},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = Theme(themeStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
