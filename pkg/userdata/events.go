package userdata

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
)

// property names reported to change listeners of EventsUserData
const (
	PropLastResetDateTime        = "LastResetDateTime"
	PropHiddenEvents             = "HiddenEvents"
	PropAreInactiveEventsVisible = "AreInactiveEventsVisible"
	PropNotifyOnWarmup           = "NotifyOnWarmup"
)

// EventsUserData holds user preferences of the world events tracker
type EventsUserData struct {
	autoSaver
	lastReset       time.Time
	hidden          idSet
	inactiveVisible bool
	notifyOnWarmup  bool
}

// eventsDoc is the on-disk form of EventsUserData
type eventsDoc struct {
	LastResetDateTime        time.Time   `json:"last_reset_date_time"`
	HiddenEvents             []uuid.UUID `json:"hidden_events"`
	AreInactiveEventsVisible bool        `json:"are_inactive_events_visible"`
	NotifyOnWarmup           bool        `json:"notify_on_warmup"`
}

// NewEventsUserData makes events user data with defaults. Autosave is on if persister is not nil.
func NewEventsUserData(persister Persister) *EventsUserData {
	return &EventsUserData{
		autoSaver:       autoSaver{persister: persister, autosave: persister != nil},
		hidden:          idSet{},
		inactiveVisible: true,
		notifyOnWarmup:  true,
	}
}

// LoadEventsUserData reads events user data from store, falling back to defaults if nothing is stored yet.
// The returned object saves itself back to the same store.
func LoadEventsUserData(store interface {
	Loader
	Persister
}) (*EventsUserData, error) {
	res := NewEventsUserData(store)
	var doc eventsDoc
	if err := store.Load(&doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			lgr.Printf("[INFO] no stored events user data, using defaults")
			return res, nil
		}
		return nil, fmt.Errorf("load events user data: %w", err)
	}
	res.lastReset = doc.LastResetDateTime.UTC()
	res.hidden = newIDSet(doc.HiddenEvents)
	res.inactiveVisible = doc.AreInactiveEventsVisible
	res.notifyOnWarmup = doc.NotifyOnWarmup
	return res, nil
}

// LastResetDateTime returns time of the last daily reset seen by the user
func (d *EventsUserData) LastResetDateTime() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastReset
}

// SetLastResetDateTime updates last reset time
func (d *EventsUserData) SetLastResetDateTime(t time.Time) error {
	return d.mutate(func() bool {
		if d.lastReset.Equal(t) {
			return false
		}
		d.lastReset = t.UTC()
		return true
	}, d.doc, PropLastResetDateTime)
}

// HiddenEvents returns ids of events hidden by the user
func (d *EventsUserData) HiddenEvents() []uuid.UUID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.hidden.list()
}

// IsEventHidden checks if event is hidden
func (d *EventsUserData) IsEventHidden(id uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.hidden.has(id)
}

// HideEvent adds event to the hidden set
func (d *EventsUserData) HideEvent(id uuid.UUID) error {
	return d.mutate(func() bool {
		if d.hidden.has(id) {
			return false
		}
		d.hidden[id] = struct{}{}
		return true
	}, d.doc, PropHiddenEvents)
}

// UnhideEvent removes event from the hidden set
func (d *EventsUserData) UnhideEvent(id uuid.UUID) error {
	return d.mutate(func() bool {
		if !d.hidden.has(id) {
			return false
		}
		delete(d.hidden, id)
		return true
	}, d.doc, PropHiddenEvents)
}

// ClearHiddenEvents makes all events visible again
func (d *EventsUserData) ClearHiddenEvents() error {
	return d.mutate(func() bool {
		if len(d.hidden) == 0 {
			return false
		}
		d.hidden = idSet{}
		return true
	}, d.doc, PropHiddenEvents)
}

// Reset clears hidden events and records reset time as a single change
func (d *EventsUserData) Reset(at time.Time) error {
	return d.mutate(func() bool {
		if len(d.hidden) == 0 && d.lastReset.Equal(at) {
			return false
		}
		d.hidden = idSet{}
		d.lastReset = at.UTC()
		return true
	}, d.doc, PropHiddenEvents, PropLastResetDateTime)
}

// AreInactiveEventsVisible tells if inactive events should be listed
func (d *EventsUserData) AreInactiveEventsVisible() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inactiveVisible
}

// SetInactiveEventsVisible sets visibility of inactive events
func (d *EventsUserData) SetInactiveEventsVisible(v bool) error {
	return d.mutate(func() bool {
		if d.inactiveVisible == v {
			return false
		}
		d.inactiveVisible = v
		return true
	}, d.doc, PropAreInactiveEventsVisible)
}

// NotifyOnWarmup tells if user wants a notification when event enters warmup
func (d *EventsUserData) NotifyOnWarmup() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.notifyOnWarmup
}

// SetNotifyOnWarmup sets warmup notification preference
func (d *EventsUserData) SetNotifyOnWarmup(v bool) error {
	return d.mutate(func() bool {
		if d.notifyOnWarmup == v {
			return false
		}
		d.notifyOnWarmup = v
		return true
	}, d.doc, PropNotifyOnWarmup)
}

// doc builds on-disk form, caller holds the lock
func (d *EventsUserData) doc() any {
	return eventsDoc{
		LastResetDateTime:        d.lastReset,
		HiddenEvents:             d.hidden.list(),
		AreInactiveEventsVisible: d.inactiveVisible,
		NotifyOnWarmup:           d.notifyOnWarmup,
	}
}
