package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorldEvent is a recurring event with a fixed daily schedule
type WorldEvent struct {
	ID       uuid.UUID
	Name     string
	Map      string
	Schedule []time.Duration // start offsets from 00:00 UTC
	Duration time.Duration   // how long the event stays active after start
	Warmup   time.Duration   // pre-event window shown as warmup
}

// EventState represents where a world event is in its cycle
type EventState string

// event states
const (
	EventInactive EventState = "inactive"
	EventWarmup   EventState = "warmup"
	EventActive   EventState = "active"
)

// EventStatus is a world event snapshot at a given moment
type EventStatus struct {
	WorldEvent
	State     EventState
	NextStart time.Time
	TimeUntil time.Duration // zero when active
	Hidden    bool
}
