package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/userdata"
)

//go:generate moq -out mocks/run_journal.go -pkg mocks -skip-ensure -fmt goimports . RunJournal

// RunJournal stores recorded path runs
type RunJournal interface {
	AddRun(ctx context.Context, run *domain.PathRun) error
	BestRun(ctx context.Context, pathID uuid.UUID) (*domain.PathRun, error)
	Runs(ctx context.Context, pathID uuid.UUID, limit int) ([]domain.PathRun, error)
	DeleteRuns(ctx context.Context, pathID uuid.UUID) (int64, error)
}

// DungeonsController tracks daily dungeon path completion and best run times
type DungeonsController struct {
	dungeons []domain.Dungeon
	byID     map[uuid.UUID]domain.Dungeon
	paths    map[uuid.UUID]domain.DungeonPath
	userData *userdata.DungeonsUserData
	journal  RunJournal
}

// NewDungeonsController makes controller for the given dungeons. journal is optional,
// without it runs are not recorded and best times are not reported.
func NewDungeonsController(dungeons []domain.Dungeon, ud *userdata.DungeonsUserData, journal RunJournal) *DungeonsController {
	res := &DungeonsController{
		dungeons: dungeons,
		byID:     make(map[uuid.UUID]domain.Dungeon, len(dungeons)),
		paths:    map[uuid.UUID]domain.DungeonPath{},
		userData: ud,
		journal:  journal,
	}
	for _, d := range dungeons {
		res.byID[d.ID] = d
		for _, p := range d.Paths {
			res.paths[p.ID] = p
		}
	}
	return res
}

// UserData returns underlying user data
func (c *DungeonsController) UserData() *userdata.DungeonsUserData { return c.userData }

// Dungeons returns snapshots of all dungeons with completion flags and best runs
func (c *DungeonsController) Dungeons(ctx context.Context) ([]domain.DungeonStatus, error) {
	res := make([]domain.DungeonStatus, 0, len(c.dungeons))
	for _, d := range c.dungeons {
		ds := domain.DungeonStatus{ID: d.ID, Name: d.Name, Map: d.Map, Hidden: c.userData.IsDungeonHidden(d.ID)}
		for _, p := range d.Paths {
			ps := domain.PathStatus{DungeonPath: p, Completed: c.userData.IsPathCompleted(p.ID)}
			if c.journal != nil {
				best, err := c.journal.BestRun(ctx, p.ID)
				if err != nil {
					return nil, fmt.Errorf("best run of %s: %w", p.Name, err)
				}
				ps.BestRun = best
			}
			ds.Paths = append(ds.Paths, ps)
		}
		res = append(res, ds)
	}
	return res, nil
}

// VisibleDungeons returns dungeons not hidden by the user. Completed paths are dropped
// unless the user asked to see them, dungeons left without paths are dropped too.
func (c *DungeonsController) VisibleDungeons(ctx context.Context) ([]domain.DungeonStatus, error) {
	all, err := c.Dungeons(ctx)
	if err != nil {
		return nil, err
	}
	showCompleted := c.userData.AreCompletedPathsVisible()
	res := make([]domain.DungeonStatus, 0, len(all))
	for _, d := range all {
		if d.Hidden {
			continue
		}
		if !showCompleted {
			paths := d.Paths[:0:0]
			for _, p := range d.Paths {
				if !p.Completed {
					paths = append(paths, p)
				}
			}
			if len(paths) == 0 {
				continue
			}
			d.Paths = paths
		}
		res = append(res, d)
	}
	return res, nil
}

// TogglePath flips completion of a path and returns the new state
func (c *DungeonsController) TogglePath(id uuid.UUID) (bool, error) {
	if _, ok := c.paths[id]; !ok {
		return false, fmt.Errorf("toggle %s: %w", id, ErrUnknownPath)
	}
	completed := !c.userData.IsPathCompleted(id)
	if err := c.userData.SetPathCompleted(id, completed); err != nil {
		return false, err
	}
	return completed, nil
}

// CompletePath marks path completed and records the run if duration is known.
// Returns the recorded run or nil if nothing was recorded.
func (c *DungeonsController) CompletePath(ctx context.Context, id uuid.UUID, duration time.Duration) (*domain.PathRun, error) {
	p, ok := c.paths[id]
	if !ok {
		return nil, fmt.Errorf("complete %s: %w", id, ErrUnknownPath)
	}
	if err := c.userData.SetPathCompleted(id, true); err != nil {
		return nil, err
	}
	if duration <= 0 || c.journal == nil {
		return nil, nil //nolint:nilnil // completion without a timed run
	}
	run := &domain.PathRun{PathID: id, Duration: duration, CompletedAt: time.Now().UTC()}
	if err := c.journal.AddRun(ctx, run); err != nil {
		return nil, fmt.Errorf("record run of %s: %w", p.Name, err)
	}
	lgr.Printf("[DEBUG] recorded run of %s in %v", p.Name, duration)
	return run, nil
}

// Runs returns recorded runs of a path, newest first
func (c *DungeonsController) Runs(ctx context.Context, id uuid.UUID, limit int) ([]domain.PathRun, error) {
	if _, ok := c.paths[id]; !ok {
		return nil, fmt.Errorf("runs of %s: %w", id, ErrUnknownPath)
	}
	if c.journal == nil {
		return []domain.PathRun{}, nil
	}
	return c.journal.Runs(ctx, id, limit)
}

// ClearRuns removes recorded runs of a path
func (c *DungeonsController) ClearRuns(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := c.paths[id]; !ok {
		return 0, fmt.Errorf("clear runs of %s: %w", id, ErrUnknownPath)
	}
	if c.journal == nil {
		return 0, nil
	}
	return c.journal.DeleteRuns(ctx, id)
}

// SetDungeonHidden hides or shows a dungeon
func (c *DungeonsController) SetDungeonHidden(id uuid.UUID, hidden bool) error {
	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("hide %s: %w", id, ErrUnknownDungeon)
	}
	return c.userData.SetDungeonHidden(id, hidden)
}

// ResetCompletedPaths unmarks all completed paths
func (c *DungeonsController) ResetCompletedPaths() error {
	return c.userData.ClearCompletedPaths()
}

// CheckReset clears completed paths if a daily reset happened since the last check.
// Returns true if the reset was applied.
func (c *DungeonsController) CheckReset(now time.Time) (bool, error) {
	if !needsReset(c.userData.LastResetDateTime(), now) {
		return false, nil
	}
	at := LastDailyReset(now)
	if err := c.userData.Reset(at); err != nil {
		return false, fmt.Errorf("reset dungeons: %w", err)
	}
	lgr.Printf("[INFO] dungeons daily reset applied, %s", at.Format(time.RFC3339))
	return true, nil
}
