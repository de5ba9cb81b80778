package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dungeon represents an instanced dungeon with a set of paths
type Dungeon struct {
	ID    uuid.UUID
	Name  string
	Map   string
	Paths []DungeonPath
}

// DungeonPath is a single completable path of a dungeon
type DungeonPath struct {
	ID        uuid.UUID
	DungeonID uuid.UUID
	Name      string
	Nickname  string
}

// PathRun is a recorded completion of a dungeon path
type PathRun struct {
	ID          int64
	PathID      uuid.UUID
	Duration    time.Duration
	CompletedAt time.Time
}

// PathStatus is a dungeon path snapshot with user progress
type PathStatus struct {
	DungeonPath
	Completed bool
	BestRun   *PathRun
}

// DungeonStatus is a dungeon snapshot with per-path progress
type DungeonStatus struct {
	ID     uuid.UUID
	Name   string
	Map    string
	Hidden bool
	Paths  []PathStatus
}
