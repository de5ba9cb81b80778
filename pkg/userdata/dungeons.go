package userdata

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
)

// property names reported to change listeners of DungeonsUserData
const (
	PropCompletedPaths           = "CompletedPaths"
	PropHiddenDungeons           = "HiddenDungeons"
	PropAreCompletedPathsVisible = "AreCompletedPathsVisible"
)

// DungeonsUserData holds user progress and preferences of the dungeons tracker
type DungeonsUserData struct {
	autoSaver
	lastReset        time.Time
	completed        idSet
	hidden           idSet
	completedVisible bool
}

type dungeonsDoc struct {
	LastResetDateTime        time.Time   `json:"last_reset_date_time"`
	CompletedPaths           []uuid.UUID `json:"completed_paths"`
	HiddenDungeons           []uuid.UUID `json:"hidden_dungeons"`
	AreCompletedPathsVisible bool        `json:"are_completed_paths_visible"`
}

// NewDungeonsUserData makes dungeons user data with defaults. Autosave is on if persister is not nil.
func NewDungeonsUserData(persister Persister) *DungeonsUserData {
	return &DungeonsUserData{
		autoSaver:        autoSaver{persister: persister, autosave: persister != nil},
		completed:        idSet{},
		hidden:           idSet{},
		completedVisible: true,
	}
}

// LoadDungeonsUserData reads dungeons user data from store or returns defaults if nothing is stored
func LoadDungeonsUserData(store interface {
	Loader
	Persister
}) (*DungeonsUserData, error) {
	res := NewDungeonsUserData(store)
	var doc dungeonsDoc
	if err := store.Load(&doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			lgr.Printf("[INFO] no stored dungeons user data, using defaults")
			return res, nil
		}
		return nil, fmt.Errorf("load dungeons user data: %w", err)
	}
	res.lastReset = doc.LastResetDateTime.UTC()
	res.completed = newIDSet(doc.CompletedPaths)
	res.hidden = newIDSet(doc.HiddenDungeons)
	res.completedVisible = doc.AreCompletedPathsVisible
	return res, nil
}

// LastResetDateTime returns time of the last daily reset seen by the user
func (d *DungeonsUserData) LastResetDateTime() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastReset
}

// SetLastResetDateTime updates last reset time
func (d *DungeonsUserData) SetLastResetDateTime(t time.Time) error {
	return d.mutate(func() bool {
		if d.lastReset.Equal(t) {
			return false
		}
		d.lastReset = t.UTC()
		return true
	}, d.doc, PropLastResetDateTime)
}

// CompletedPaths returns ids of completed dungeon paths
func (d *DungeonsUserData) CompletedPaths() []uuid.UUID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.completed.list()
}

// IsPathCompleted checks path completion
func (d *DungeonsUserData) IsPathCompleted(id uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.completed.has(id)
}

// SetPathCompleted marks or unmarks path as completed
func (d *DungeonsUserData) SetPathCompleted(id uuid.UUID, completed bool) error {
	return d.mutate(func() bool {
		if d.completed.has(id) == completed {
			return false
		}
		if completed {
			d.completed[id] = struct{}{}
		} else {
			delete(d.completed, id)
		}
		return true
	}, d.doc, PropCompletedPaths)
}

// ClearCompletedPaths unmarks all paths, last reset time is kept
func (d *DungeonsUserData) ClearCompletedPaths() error {
	return d.mutate(func() bool {
		if len(d.completed) == 0 {
			return false
		}
		d.completed = idSet{}
		return true
	}, d.doc, PropCompletedPaths)
}

// Reset clears completed paths and records reset time as a single change
func (d *DungeonsUserData) Reset(at time.Time) error {
	return d.mutate(func() bool {
		if len(d.completed) == 0 && d.lastReset.Equal(at) {
			return false
		}
		d.completed = idSet{}
		d.lastReset = at.UTC()
		return true
	}, d.doc, PropCompletedPaths, PropLastResetDateTime)
}

// IsDungeonHidden checks if dungeon is hidden
func (d *DungeonsUserData) IsDungeonHidden(id uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.hidden.has(id)
}

// SetDungeonHidden hides or shows a dungeon
func (d *DungeonsUserData) SetDungeonHidden(id uuid.UUID, hidden bool) error {
	return d.mutate(func() bool {
		if d.hidden.has(id) == hidden {
			return false
		}
		if hidden {
			d.hidden[id] = struct{}{}
		} else {
			delete(d.hidden, id)
		}
		return true
	}, d.doc, PropHiddenDungeons)
}

// AreCompletedPathsVisible tells if completed paths should be listed
func (d *DungeonsUserData) AreCompletedPathsVisible() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.completedVisible
}

// SetCompletedPathsVisible sets visibility of completed paths
func (d *DungeonsUserData) SetCompletedPathsVisible(v bool) error {
	return d.mutate(func() bool {
		if d.completedVisible == v {
			return false
		}
		d.completedVisible = v
		return true
	}, d.doc, PropAreCompletedPathsVisible)
}

func (d *DungeonsUserData) doc() any {
	return dungeonsDoc{
		LastResetDateTime:        d.lastReset,
		CompletedPaths:           d.completed.list(),
		HiddenDungeons:           d.hidden.list(),
		AreCompletedPathsVisible: d.completedVisible,
	}
}
