package tracker

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/userdata"
)

// EventsController tracks world event states and the user's hidden events
type EventsController struct {
	events   []domain.WorldEvent
	byID     map[uuid.UUID]domain.WorldEvent
	userData *userdata.EventsUserData

	mu       sync.Mutex
	notified map[uuid.UUID]time.Time // event id -> start already reported as warming up
}

// NewEventsController makes controller for the given events
func NewEventsController(events []domain.WorldEvent, ud *userdata.EventsUserData) *EventsController {
	res := &EventsController{
		events:   events,
		byID:     make(map[uuid.UUID]domain.WorldEvent, len(events)),
		userData: ud,
		notified: map[uuid.UUID]time.Time{},
	}
	for _, e := range events {
		res.byID[e.ID] = e
	}
	return res
}

// UserData returns underlying user data
func (c *EventsController) UserData() *userdata.EventsUserData { return c.userData }

// Events returns snapshots of all events at now, active first, then by next start
func (c *EventsController) Events(now time.Time) []domain.EventStatus {
	res := make([]domain.EventStatus, 0, len(c.events))
	for _, e := range c.events {
		st := EventStatusAt(e, now)
		st.Hidden = c.userData.IsEventHidden(e.ID)
		res = append(res, st)
	}
	sort.SliceStable(res, func(i, j int) bool {
		ai, aj := res[i].State == domain.EventActive, res[j].State == domain.EventActive
		if ai != aj {
			return ai
		}
		return res[i].NextStart.Before(res[j].NextStart)
	})
	return res
}

// VisibleEvents returns events not hidden by the user. Inactive events are dropped
// unless the user asked to see them.
func (c *EventsController) VisibleEvents(now time.Time) []domain.EventStatus {
	showInactive := c.userData.AreInactiveEventsVisible()
	all := c.Events(now)
	res := make([]domain.EventStatus, 0, len(all))
	for _, st := range all {
		if st.Hidden {
			continue
		}
		if st.State == domain.EventInactive && !showInactive {
			continue
		}
		res = append(res, st)
	}
	return res
}

// Hide hides event until the next daily reset
func (c *EventsController) Hide(id uuid.UUID) error {
	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("hide %s: %w", id, ErrUnknownEvent)
	}
	return c.userData.HideEvent(id)
}

// Unhide makes a hidden event visible again
func (c *EventsController) Unhide(id uuid.UUID) error {
	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("unhide %s: %w", id, ErrUnknownEvent)
	}
	return c.userData.UnhideEvent(id)
}

// ResetHidden makes all events visible
func (c *EventsController) ResetHidden() error {
	return c.userData.ClearHiddenEvents()
}

// CheckReset clears hidden events if a daily reset happened since the last check.
// Returns true if the reset was applied.
func (c *EventsController) CheckReset(now time.Time) (bool, error) {
	if !needsReset(c.userData.LastResetDateTime(), now) {
		return false, nil
	}
	at := LastDailyReset(now)
	if err := c.userData.Reset(at); err != nil {
		return false, fmt.Errorf("reset events: %w", err)
	}
	lgr.Printf("[INFO] events daily reset applied, %s", at.Format(time.RFC3339))
	return true, nil
}

// WarmupNotifications returns visible events which entered warmup since the previous call.
// Each event start is reported once. Nothing is reported if the user disabled warmup notifications.
func (c *EventsController) WarmupNotifications(now time.Time) []domain.EventStatus {
	if !c.userData.NotifyOnWarmup() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var res []domain.EventStatus
	for _, st := range c.Events(now) {
		if st.State != domain.EventWarmup || st.Hidden {
			continue
		}
		if c.notified[st.ID].Equal(st.NextStart) {
			continue
		}
		c.notified[st.ID] = st.NextStart
		res = append(res, st)
	}
	return res
}

// EventStatusAt computes event state at now from its daily schedule
func EventStatusAt(e domain.WorldEvent, now time.Time) domain.EventStatus {
	now = now.UTC()
	res := domain.EventStatus{WorldEvent: e, State: domain.EventInactive}
	if len(e.Schedule) == 0 {
		return res
	}

	var next time.Time
	midnight := LastDailyReset(now)
	// yesterday's late starts may still be running right after midnight
	for day := -1; day <= 1; day++ {
		base := midnight.AddDate(0, 0, day)
		for _, off := range e.Schedule {
			start := base.Add(off)
			if !now.Before(start) && now.Before(start.Add(e.Duration)) {
				res.State = domain.EventActive
				res.NextStart = start
				res.TimeUntil = 0
				return res
			}
			if start.After(now) && (next.IsZero() || start.Before(next)) {
				next = start
			}
		}
	}

	res.NextStart = next
	res.TimeUntil = next.Sub(now)
	if e.Warmup > 0 && res.TimeUntil <= e.Warmup {
		res.State = domain.EventWarmup
	}
	return res
}
