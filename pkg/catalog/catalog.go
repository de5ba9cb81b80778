// Package catalog provides the static list of world events and dungeons known to the tracker.
// The default catalog is embedded, a file with the same layout can replace it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/umputun/gw2tracker/pkg/domain"
)

//go:embed catalog.yml
var defaultCatalog []byte

// Catalog holds world events and dungeons with lookups by id
type Catalog struct {
	events   []domain.WorldEvent
	dungeons []domain.Dungeon

	eventByID   map[uuid.UUID]int
	dungeonByID map[uuid.UUID]int
	pathByID    map[uuid.UUID]domain.DungeonPath
}

type catalogDoc struct {
	Events   []eventDoc   `yaml:"events"`
	Dungeons []dungeonDoc `yaml:"dungeons"`
}

type eventDoc struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Map      string        `yaml:"map"`
	Duration time.Duration `yaml:"duration"`
	Warmup   time.Duration `yaml:"warmup"`
	Schedule []string      `yaml:"schedule"`
	Every    time.Duration `yaml:"every"`
	Offset   string        `yaml:"offset"`
}

type dungeonDoc struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Map   string    `yaml:"map"`
	Paths []pathDoc `yaml:"paths"`
}

type pathDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Nickname string `yaml:"nickname"`
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads catalog from a yaml file
func LoadFile(path string) (*Catalog, error) {
	fh, err := os.Open(path) //nolint:gosec // path from trusted config
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer fh.Close()
	return Load(fh)
}

// Load parses and validates catalog yaml
func Load(r io.Reader) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		eventByID:   make(map[uuid.UUID]int, len(doc.Events)),
		dungeonByID: make(map[uuid.UUID]int, len(doc.Dungeons)),
		pathByID:    make(map[uuid.UUID]domain.DungeonPath),
	}
	seen := map[uuid.UUID]string{}
	register := func(raw, name, kind string) (uuid.UUID, error) {
		if strings.TrimSpace(name) == "" {
			return uuid.Nil, fmt.Errorf("%s %q has no name", kind, raw)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s %q: bad id %q: %w", kind, name, raw, err)
		}
		if prev, ok := seen[id]; ok {
			return uuid.Nil, fmt.Errorf("%s %q: id %s already used by %q", kind, name, id, prev)
		}
		seen[id] = name
		return id, nil
	}

	for _, ed := range doc.Events {
		id, err := register(ed.ID, ed.Name, "event")
		if err != nil {
			return nil, err
		}
		schedule, err := ed.schedule()
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", ed.Name, err)
		}
		if ed.Duration <= 0 {
			return nil, fmt.Errorf("event %q: duration must be positive", ed.Name)
		}
		c.eventByID[id] = len(c.events)
		c.events = append(c.events, domain.WorldEvent{ID: id, Name: ed.Name, Map: ed.Map,
			Schedule: schedule, Duration: ed.Duration, Warmup: ed.Warmup})
	}

	for _, dd := range doc.Dungeons {
		id, err := register(dd.ID, dd.Name, "dungeon")
		if err != nil {
			return nil, err
		}
		if len(dd.Paths) == 0 {
			return nil, fmt.Errorf("dungeon %q has no paths", dd.Name)
		}
		d := domain.Dungeon{ID: id, Name: dd.Name, Map: dd.Map}
		for _, pd := range dd.Paths {
			pid, err := register(pd.ID, pd.Name, "path")
			if err != nil {
				return nil, fmt.Errorf("dungeon %q: %w", dd.Name, err)
			}
			p := domain.DungeonPath{ID: pid, DungeonID: id, Name: pd.Name, Nickname: pd.Nickname}
			d.Paths = append(d.Paths, p)
			c.pathByID[pid] = p
		}
		c.dungeonByID[id] = len(c.dungeons)
		c.dungeons = append(c.dungeons, d)
	}
	return c, nil
}

// schedule resolves explicit start times or an "every/offset" rule into offsets from midnight
func (ed eventDoc) schedule() ([]time.Duration, error) {
	const day = 24 * time.Hour
	if len(ed.Schedule) > 0 && ed.Every > 0 {
		return nil, errors.New("both schedule and every are set")
	}
	if len(ed.Schedule) > 0 {
		res := make([]time.Duration, 0, len(ed.Schedule))
		for _, s := range ed.Schedule {
			off, err := parseClock(s)
			if err != nil {
				return nil, err
			}
			res = append(res, off)
		}
		return res, nil
	}
	if ed.Every <= 0 || ed.Every > day {
		return nil, errors.New("no schedule")
	}
	start, err := parseClock(ed.Offset)
	if err != nil {
		return nil, err
	}
	var res []time.Duration
	for off := start % ed.Every; off < day; off += ed.Every {
		res = append(res, off)
	}
	return res, nil
}

// parseClock parses "HH:MM" into offset from midnight, empty string is midnight
func parseClock(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("bad time of day %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Events returns all world events in catalog order
func (c *Catalog) Events() []domain.WorldEvent {
	res := make([]domain.WorldEvent, len(c.events))
	copy(res, c.events)
	return res
}

// Dungeons returns all dungeons in catalog order
func (c *Catalog) Dungeons() []domain.Dungeon {
	res := make([]domain.Dungeon, len(c.dungeons))
	copy(res, c.dungeons)
	return res
}

// Event returns world event by id
func (c *Catalog) Event(id uuid.UUID) (domain.WorldEvent, bool) {
	i, ok := c.eventByID[id]
	if !ok {
		return domain.WorldEvent{}, false
	}
	return c.events[i], true
}

// Dungeon returns dungeon by id
func (c *Catalog) Dungeon(id uuid.UUID) (domain.Dungeon, bool) {
	i, ok := c.dungeonByID[id]
	if !ok {
		return domain.Dungeon{}, false
	}
	return c.dungeons[i], true
}

// Path returns dungeon path by id
func (c *Catalog) Path(id uuid.UUID) (domain.DungeonPath, bool) {
	p, ok := c.pathByID[id]
	return p, ok
}
