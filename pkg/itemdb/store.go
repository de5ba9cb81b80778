package itemdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/renameio/v2"

	"github.com/umputun/gw2tracker/pkg/domain"
)

// FileStore keeps one item database file per locale in a directory
type FileStore struct {
	dir string
}

// fileEntry is the on-disk value of a single item, keyed by item id
type fileEntry struct {
	Name   string            `json:"name"`
	Rarity domain.ItemRarity `json:"rarity"`
	Level  int               `json:"level"`
}

// NewFileStore makes a store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the database file location for locale, e.g. <dir>/items_en.json
func (s *FileStore) Path(locale domain.Locale) string {
	return filepath.Join(s.dir, fmt.Sprintf("items_%s.json", locale))
}

// Exists checks if a database file for locale is present
func (s *FileStore) Exists(locale domain.Locale) bool {
	st, err := os.Stat(s.Path(locale))
	return err == nil && st.Mode().IsRegular()
}

// Save overwrites the locale file with entries
func (s *FileStore) Save(locale domain.Locale, entries map[int]domain.ItemEntry) error {
	doc := make(map[string]fileEntry, len(entries))
	for id, e := range entries {
		doc[strconv.Itoa(id)] = fileEntry{Name: e.Name, Rarity: e.Rarity, Level: e.Level}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal item database: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("make item database dir: %w", err)
	}
	if err := renameio.WriteFile(s.Path(locale), data, 0o600); err != nil {
		return fmt.Errorf("write item database %s: %w", s.Path(locale), err)
	}
	return nil
}

// Load reads all entries of the locale file
func (s *FileStore) Load(locale domain.Locale) (map[int]domain.ItemEntry, error) {
	data, err := os.ReadFile(s.Path(locale))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w for locale %s", ErrNoData, locale)
		}
		return nil, fmt.Errorf("read item database: %w", err)
	}

	var doc map[string]fileEntry
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse item database %s: %w", s.Path(locale), err)
	}

	res := make(map[int]domain.ItemEntry, len(doc))
	for key, e := range doc {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("bad item id %q in %s: %w", key, s.Path(locale), err)
		}
		res[id] = domain.ItemEntry{ID: id, Name: e.Name, Rarity: e.Rarity, Level: e.Level}
	}
	return res, nil
}
