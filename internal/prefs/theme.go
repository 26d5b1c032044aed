package prefs

import (
	"context"
	"errors"
)

const (
	themeKey   = "theme"
	themeDark  = "dark"
	themeLight = "light"
)

// ThemeStore persists the dark-mode preference in a DB.
type ThemeStore struct {
	db          *DB
	defaultDark bool
}

// NewThemeStore creates a ThemeStore. defaultDark is reported when nothing
// has been saved yet.
func NewThemeStore(db *DB, defaultDark bool) *ThemeStore {
	return &ThemeStore{db: db, defaultDark: defaultDark}
}

// LoadDark returns the stored preference.
func (s *ThemeStore) LoadDark(ctx context.Context) (bool, error) {
	v, err := s.db.Get(ctx, themeKey)
	if errors.Is(err, ErrNotFound) {
		return s.defaultDark, nil
	}
	if err != nil {
		return s.defaultDark, err
	}
	return v == themeDark, nil
}

// SaveDark stores the preference.
func (s *ThemeStore) SaveDark(ctx context.Context, dark bool) error {
	v := themeLight
	if dark {
		v = themeDark
	}
	return s.db.Set(ctx, themeKey, v)
}
