// Package tracker implements the world events and dungeons controllers.
// Controllers combine the static catalog with user data and expose snapshots and commands.
package tracker

import (
	"errors"
	"time"
)

var (
	// ErrUnknownEvent returned for event ids missing in the catalog
	ErrUnknownEvent = errors.New("unknown event")
	// ErrUnknownPath returned for dungeon path ids missing in the catalog
	ErrUnknownPath = errors.New("unknown dungeon path")
	// ErrUnknownDungeon returned for dungeon ids missing in the catalog
	ErrUnknownDungeon = errors.New("unknown dungeon")
)

// LastDailyReset returns the most recent daily reset (00:00 UTC) at or before now
func LastDailyReset(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextDailyReset returns the first daily reset after now
func NextDailyReset(now time.Time) time.Time {
	return LastDailyReset(now).AddDate(0, 0, 1)
}

// needsReset tells if a state last reset at lastReset is stale at now
func needsReset(lastReset, now time.Time) bool {
	return lastReset.Before(LastDailyReset(now))
}
