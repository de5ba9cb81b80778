// Package itemdb keeps a local, per-locale cache of item metadata and rebuilds it from the remote API.
package itemdb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/gw2tracker/pkg/domain"
)

// ErrNoData returned when no cached item database exists for a locale
var ErrNoData = errors.New("no item database")

// Database is the in-memory item database of one locale, loaded wholesale from FileStore
type Database struct {
	store *FileStore

	mu      sync.RWMutex
	locale  domain.Locale
	entries map[int]domain.ItemEntry
}

// NewDatabase makes an empty database backed by store
func NewDatabase(store *FileStore) *Database {
	return &Database{store: store, entries: map[int]domain.ItemEntry{}}
}

// Load replaces in-memory entries with the content of the locale file
func (d *Database) Load(locale domain.Locale) error {
	entries, err := d.store.Load(locale)
	if err != nil {
		return fmt.Errorf("load items for %s: %w", locale, err)
	}
	d.replace(locale, entries)
	lgr.Printf("[INFO] loaded %d items for locale %s", len(entries), locale)
	return nil
}

// HasData tells if a cached database file exists for locale
func (d *Database) HasData(locale domain.Locale) bool {
	return d.store.Exists(locale)
}

// Locale returns locale of the loaded entries, empty if nothing loaded
func (d *Database) Locale() domain.Locale {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.locale
}

// Len returns number of loaded entries
func (d *Database) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Entry returns item by id
func (d *Database) Entry(id int) (domain.ItemEntry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.entries[id]
	return e, ok
}

// Name returns item display name by id
func (d *Database) Name(id int) (string, bool) {
	e, ok := d.Entry(id)
	return e.Name, ok
}

func (d *Database) replace(locale domain.Locale, entries map[int]domain.ItemEntry) {
	d.mu.Lock()
	d.locale = locale
	d.entries = entries
	d.mu.Unlock()
	itemsLoaded.WithLabelValues(string(locale)).Set(float64(len(entries)))
}
