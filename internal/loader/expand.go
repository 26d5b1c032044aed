package loader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand turns configured document identifiers into a concrete ordered
// list. Glob patterns (including **) are expanded to sorted file paths,
// URLs and literal paths pass through unchanged, and paths matching any
// exclude pattern are dropped. Duplicates keep their first position.
func Expand(patterns, exclude []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	add := func(id string) {
		if seen[id] || matchesAny(id, exclude) {
			return
		}
		seen[id] = true
		out = append(out, id)
	}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if IsURL(p) || !hasMeta(p) {
			add(p)
			continue
		}

		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", p, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return out, nil
}

// hasMeta reports whether p contains glob metacharacters.
func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// matchesAny checks path against glob patterns, both as a full path and by
// base name.
func matchesAny(path string, patterns []string) bool {
	if len(patterns) == 0 || IsURL(path) {
		return false
	}
	normalized := filepath.ToSlash(path)
	base := filepath.Base(normalized)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
