// Package userdata provides user preference objects which save themselves on every change.
// Each object is backed by a Persister (usually FileStore) and reports changed property names
// to subscribers after the change was persisted.
package userdata

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
)

//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister

// Persister stores a serializable snapshot of user data
type Persister interface {
	Save(v any) error
}

// Loader reads a stored snapshot of user data
type Loader interface {
	Load(v any) error
}

// autoSaver is the shared part of all user data objects: lock, persister, autosave switch and listeners.
// mu guards the embedding struct fields as well.
type autoSaver struct {
	mu        sync.RWMutex
	persister Persister
	autosave  bool
	listeners []func(property string)
}

// EnableAutoSave turns on saving after each change
func (a *autoSaver) EnableAutoSave() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.autosave = a.persister != nil
}

// DisableAutoSave turns off saving, changes are kept in memory only
func (a *autoSaver) DisableAutoSave() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.autosave = false
}

// OnChange subscribes fn to property change notifications
func (a *autoSaver) OnChange(fn func(property string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// mutate applies change under lock. When change reports a modification the document built by doc
// is persisted once and listeners are notified with each of the given properties.
func (a *autoSaver) mutate(change func() bool, doc func() any, props ...string) error {
	a.mu.Lock()
	if !change() {
		a.mu.Unlock()
		return nil
	}
	var err error
	if a.autosave {
		if err = a.persister.Save(doc()); err != nil {
			lgr.Printf("[WARN] failed to save user data after %v change: %v", props, err)
			err = fmt.Errorf("save user data: %w", err)
		}
	}
	listeners := slices.Clone(a.listeners)
	a.mu.Unlock()

	for _, fn := range listeners {
		for _, p := range props {
			fn(p)
		}
	}
	return err
}

// idSet is a set of uuids, serialized as a sorted list
type idSet map[uuid.UUID]struct{}

func newIDSet(ids []uuid.UUID) idSet {
	res := make(idSet, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res
}

func (s idSet) has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) list() []uuid.UUID {
	res := make([]uuid.UUID, 0, len(s))
	for id := range s {
		res = append(res, id)
	}
	slices.SortFunc(res, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return res
}
