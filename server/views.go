package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/umputun/gw2tracker/pkg/domain"
)

// eventView is the json form of an event snapshot
type eventView struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Map       string            `json:"map"`
	State     domain.EventState `json:"state"`
	NextStart time.Time         `json:"next_start,omitzero"`
	TimeUntil int64             `json:"time_until_sec"`
	Hidden    bool              `json:"hidden"`
}

func newEventView(e domain.EventStatus) eventView {
	return eventView{
		ID:        e.ID,
		Name:      e.Name,
		Map:       e.Map,
		State:     e.State,
		NextStart: e.NextStart,
		TimeUntil: int64(e.TimeUntil / time.Second),
		Hidden:    e.Hidden,
	}
}

type dungeonView struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Map    string     `json:"map"`
	Hidden bool       `json:"hidden"`
	Paths  []pathView `json:"paths"`
}

type pathView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname,omitempty"`
	Completed bool      `json:"completed"`
	BestRun   *runView  `json:"best_run,omitempty"`
}

type runView struct {
	ID          int64     `json:"id"`
	PathID      uuid.UUID `json:"path_id"`
	Duration    string    `json:"duration"`
	DurationSec float64   `json:"duration_sec"`
	CompletedAt time.Time `json:"completed_at"`
}

func newDungeonView(d domain.DungeonStatus) dungeonView {
	res := dungeonView{ID: d.ID, Name: d.Name, Map: d.Map, Hidden: d.Hidden, Paths: make([]pathView, 0, len(d.Paths))}
	for _, p := range d.Paths {
		pv := pathView{ID: p.ID, Name: p.Name, Nickname: p.Nickname, Completed: p.Completed}
		if p.BestRun != nil {
			rv := newRunView(*p.BestRun)
			pv.BestRun = &rv
		}
		res.Paths = append(res.Paths, pv)
	}
	return res
}

func newRunView(r domain.PathRun) runView {
	return runView{
		ID:          r.ID,
		PathID:      r.PathID,
		Duration:    r.Duration.String(),
		DurationSec: r.Duration.Seconds(),
		CompletedAt: r.CompletedAt,
	}
}

// itemView is the json form of an item entry, rarity_rank orders rarities from Junk (0) up
type itemView struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	Rarity     domain.ItemRarity `json:"rarity"`
	RarityRank int               `json:"rarity_rank"`
	Level      int               `json:"level"`
}

func newItemView(e domain.ItemEntry) itemView {
	return itemView{ID: e.ID, Name: e.Name, Rarity: e.Rarity, RarityRank: e.Rarity.Rank(), Level: e.Level}
}
