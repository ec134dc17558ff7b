package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Preference keys.
const (
	KeySearchKeywords = "search_keywords"
	KeyOrderBy        = "order_by"
)

const (
	DefaultSearchKeywords = "google"
	DefaultOrderBy        = "newest"
)

var bucketName = []byte("preferences")

// ErrUnknownKey is returned for keys outside the supported set.
var ErrUnknownKey = errors.New("unknown preference key")

// Entry is one selectable value of a list preference.
type Entry struct {
	Value string
	Label string
}

// OrderByEntries lists the accepted order-by values in display order.
var OrderByEntries = []Entry{
	{Value: "newest", Label: "Newest"},
	{Value: "oldest", Label: "Oldest"},
	{Value: "relevance", Label: "Relevance"},
}

// Values is a snapshot of the stored preferences.
type Values struct {
	SearchKeywords string
	OrderBy        string
}

// Store persists preferences in a bbolt key-value file.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the preferences file at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("preferences path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create preferences dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open preferences file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init preferences bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the stored preferences, substituting defaults for unset keys.
func (s *Store) Get() (Values, error) {
	vals := Values{SearchKeywords: DefaultSearchKeywords, OrderBy: DefaultOrderBy}

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(KeySearchKeywords)); v != nil {
			vals.SearchKeywords = string(v)
		}
		if v := b.Get([]byte(KeyOrderBy)); v != nil {
			vals.OrderBy = string(v)
		}
		return nil
	})
	if err != nil {
		return Values{}, fmt.Errorf("read preferences: %w", err)
	}
	return vals, nil
}

// Set validates and stores value under key. A blank value clears the key so the
// default applies again.
func (s *Store) Set(key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case KeySearchKeywords:
	case KeyOrderBy:
		value = strings.ToLower(value)
		if entryIndex(value) < 0 {
			return fmt.Errorf("order_by %q must be one of %s", value, strings.Join(entryValues(), ", "))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		if value == "" {
			return b.Delete([]byte(key))
		}
		return b.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("write preference %s: %w", key, err)
	}
	return nil
}

// Summary returns the text shown next to a preference: the entry label for list
// preferences, the raw value otherwise.
func Summary(key, value string) string {
	if key == KeyOrderBy {
		if idx := entryIndex(value); idx >= 0 {
			return OrderByEntries[idx].Label
		}
	}
	return value
}

// Keys returns the supported preference keys in display order.
func Keys() []string {
	return []string{KeySearchKeywords, KeyOrderBy}
}

// Lookup returns the value stored for key in vals.
func (v Values) Lookup(key string) (string, bool) {
	switch key {
	case KeySearchKeywords:
		return v.SearchKeywords, true
	case KeyOrderBy:
		return v.OrderBy, true
	}
	return "", false
}

func entryIndex(value string) int {
	for i, e := range OrderByEntries {
		if e.Value == value {
			return i
		}
	}
	return -1
}

func entryValues() []string {
	out := make([]string, len(OrderByEntries))
	for i, e := range OrderByEntries {
		out[i] = e.Value
	}
	return out
}
