package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Adda-Baaj/newsfeed/internal/preferences"
)

// SettingsStore reads and writes the user's query preferences.
type SettingsStore interface {
	Get() (preferences.Values, error)
	Set(key, value string) error
}

var settingTitles = map[string]string{
	preferences.KeySearchKeywords: "Search keywords",
	preferences.KeyOrderBy:        "Order by",
}

// SettingsScreen lists preferences with their summaries and applies changes.
type SettingsScreen struct {
	store SettingsStore
	out   io.Writer
}

func NewSettingsScreen(store SettingsStore, out io.Writer) *SettingsScreen {
	return &SettingsScreen{store: store, out: out}
}

// Show prints every preference with its current summary.
func (s *SettingsScreen) Show() error {
	vals, err := s.store.Get()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, key := range preferences.Keys() {
		value, _ := vals.Lookup(key)
		fmt.Fprintf(tw, "%s\t%s\t(%s)\n", settingTitles[key], preferences.Summary(key, value), key)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	values := make([]string, len(preferences.OrderByEntries))
	for i, e := range preferences.OrderByEntries {
		values[i] = e.Value
	}
	_, err = fmt.Fprintf(s.out, "\norder_by accepts: %s\n", strings.Join(values, ", "))
	return err
}

// Change stores value under key (aliases like "keywords" and "order-by" are accepted)
// and prints the updated summary.
func (s *SettingsScreen) Change(key, value string) error {
	key = CanonicalKey(key)
	if err := s.store.Set(key, value); err != nil {
		return err
	}

	vals, err := s.store.Get()
	if err != nil {
		return err
	}
	current, _ := vals.Lookup(key)
	_, err = fmt.Fprintf(s.out, "%s: %s\n", settingTitles[key], preferences.Summary(key, current))
	return err
}

// CanonicalKey maps user-facing aliases onto preference keys.
func CanonicalKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, "-", "_")
	switch k {
	case "keywords", "q", "search", preferences.KeySearchKeywords:
		return preferences.KeySearchKeywords
	case "order", "orderby", "sort", preferences.KeyOrderBy:
		return preferences.KeyOrderBy
	}
	return k
}
