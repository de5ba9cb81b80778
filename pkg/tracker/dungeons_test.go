package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/tracker/mocks"
	"github.com/umputun/gw2tracker/pkg/userdata"
	udmocks "github.com/umputun/gw2tracker/pkg/userdata/mocks"
)

func testDungeons() []domain.Dungeon {
	ac := uuid.MustParse("4ace35ac-b4ed-4b43-9f78-e7ff1dd15a39")
	arah := uuid.MustParse("8932177c-dd4b-4393-a9cf-208624fac7b3")
	return []domain.Dungeon{
		{ID: ac, Name: "Ascalonian Catacombs", Map: "Plains of Ashford", Paths: []domain.DungeonPath{
			{ID: uuid.MustParse("fa4dc9ac-8008-4683-8864-453f4a76e0e1"), DungeonID: ac, Name: "Story", Nickname: "S"},
			{ID: uuid.MustParse("ac2a6d2b-734b-4b99-a965-50c159850c05"), DungeonID: ac, Name: "Hodgins", Nickname: "P1"},
		}},
		{ID: arah, Name: "Arah", Map: "Cursed Shore", Paths: []domain.DungeonPath{
			{ID: uuid.MustParse("3ff46af0-a68e-4fb4-93a5-4562c240d35a"), DungeonID: arah, Name: "Story", Nickname: "S"},
		}},
	}
}

func TestDungeonsController_Dungeons(t *testing.T) {
	ds := testDungeons()
	hodgins := ds[0].Paths[1].ID
	best := &domain.PathRun{ID: 7, PathID: hodgins, Duration: 9 * time.Minute}
	journal := &mocks.RunJournalMock{
		BestRunFunc: func(ctx context.Context, pathID uuid.UUID) (*domain.PathRun, error) {
			if pathID == hodgins {
				return best, nil
			}
			return nil, nil
		},
	}
	ud := userdata.NewDungeonsUserData(nil)
	c := NewDungeonsController(ds, ud, journal)

	res, err := c.Dungeons(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Len(t, res[0].Paths, 2)
	assert.Equal(t, best, res[0].Paths[1].BestRun)
	assert.Nil(t, res[0].Paths[0].BestRun)
	assert.Len(t, journal.BestRunCalls(), 3)

	completed, err := c.TogglePath(hodgins)
	require.NoError(t, err)
	assert.True(t, completed)
	require.NoError(t, c.SetDungeonHidden(ds[1].ID, true))

	res, err = c.Dungeons(context.Background())
	require.NoError(t, err)
	assert.True(t, res[0].Paths[1].Completed)
	assert.True(t, res[1].Hidden)

	vis, err := c.VisibleDungeons(context.Background())
	require.NoError(t, err)
	require.Len(t, vis, 1, "hidden dungeon dropped")
	assert.Len(t, vis[0].Paths, 2)

	require.NoError(t, ud.SetCompletedPathsVisible(false))
	vis, err = c.VisibleDungeons(context.Background())
	require.NoError(t, err)
	require.Len(t, vis, 1)
	require.Len(t, vis[0].Paths, 1, "completed path dropped")
	assert.Equal(t, "Story", vis[0].Paths[0].Name)

	_, err = c.TogglePath(ds[0].Paths[0].ID)
	require.NoError(t, err)
	vis, err = c.VisibleDungeons(context.Background())
	require.NoError(t, err)
	assert.Empty(t, vis, "dungeon with all paths completed dropped")

	completed, err = c.TogglePath(hodgins)
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestDungeonsController_JournalError(t *testing.T) {
	journal := &mocks.RunJournalMock{
		BestRunFunc: func(ctx context.Context, pathID uuid.UUID) (*domain.PathRun, error) {
			return nil, errors.New("db closed")
		},
	}
	c := NewDungeonsController(testDungeons(), userdata.NewDungeonsUserData(nil), journal)
	_, err := c.Dungeons(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db closed")
}

func TestDungeonsController_CompletePath(t *testing.T) {
	ds := testDungeons()
	pathID := ds[0].Paths[0].ID
	journal := &mocks.RunJournalMock{
		AddRunFunc: func(ctx context.Context, run *domain.PathRun) error {
			run.ID = 42
			return nil
		},
	}
	persister := &udmocks.PersisterMock{SaveFunc: func(v any) error { return nil }}
	c := NewDungeonsController(ds, userdata.NewDungeonsUserData(persister), journal)

	run, err := c.CompletePath(context.Background(), pathID, 12*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, int64(42), run.ID)
	assert.Equal(t, 12*time.Minute, run.Duration)
	assert.False(t, run.CompletedAt.IsZero())
	assert.True(t, c.UserData().IsPathCompleted(pathID))
	require.Len(t, journal.AddRunCalls(), 1)
	assert.Equal(t, pathID, journal.AddRunCalls()[0].Run.PathID)
	assert.Len(t, persister.SaveCalls(), 1)

	run, err = c.CompletePath(context.Background(), pathID, 0)
	require.NoError(t, err)
	assert.Nil(t, run, "no duration, no run")
	assert.Len(t, journal.AddRunCalls(), 1)
	assert.Len(t, persister.SaveCalls(), 1, "already completed")

	_, err = c.CompletePath(context.Background(), uuid.New(), time.Minute)
	require.ErrorIs(t, err, ErrUnknownPath)

	journal.AddRunFunc = func(ctx context.Context, run *domain.PathRun) error { return errors.New("locked") }
	_, err = c.CompletePath(context.Background(), pathID, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record run of Story")
}

func TestDungeonsController_Runs(t *testing.T) {
	ds := testDungeons()
	pathID := ds[0].Paths[1].ID
	journal := &mocks.RunJournalMock{
		RunsFunc: func(ctx context.Context, id uuid.UUID, limit int) ([]domain.PathRun, error) {
			return []domain.PathRun{{ID: 1, PathID: id, Duration: time.Minute}}, nil
		},
		DeleteRunsFunc: func(ctx context.Context, id uuid.UUID) (int64, error) { return 1, nil },
	}
	c := NewDungeonsController(ds, userdata.NewDungeonsUserData(nil), journal)

	runs, err := c.Runs(context.Background(), pathID, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 5, journal.RunsCalls()[0].Limit)

	n, err := c.ClearRuns(context.Background(), pathID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = c.Runs(context.Background(), uuid.New(), 5)
	require.ErrorIs(t, err, ErrUnknownPath)
	_, err = c.ClearRuns(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrUnknownPath)
	require.ErrorIs(t, c.SetDungeonHidden(uuid.New(), true), ErrUnknownDungeon)
	_, err = c.TogglePath(uuid.New())
	require.ErrorIs(t, err, ErrUnknownPath)
}

func TestDungeonsController_NoJournal(t *testing.T) {
	ds := testDungeons()
	c := NewDungeonsController(ds, userdata.NewDungeonsUserData(nil), nil)
	res, err := c.Dungeons(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res[0].Paths[0].BestRun)

	run, err := c.CompletePath(context.Background(), ds[0].Paths[0].ID, time.Minute)
	require.NoError(t, err)
	assert.Nil(t, run)

	runs, err := c.Runs(context.Background(), ds[0].Paths[0].ID, 1)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestDungeonsController_Reset(t *testing.T) {
	ds := testDungeons()
	persister := &udmocks.PersisterMock{SaveFunc: func(v any) error { return nil }}
	ud := userdata.NewDungeonsUserData(persister)
	c := NewDungeonsController(ds, ud, nil)
	pathID := ds[1].Paths[0].ID
	now := time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC)

	_, err := c.TogglePath(pathID)
	require.NoError(t, err)
	require.NoError(t, c.ResetCompletedPaths())
	assert.False(t, ud.IsPathCompleted(pathID))
	assert.True(t, ud.LastResetDateTime().IsZero(), "manual reset keeps reset time")
	assert.Len(t, persister.SaveCalls(), 2)

	applied, err := c.CheckReset(now)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, LastDailyReset(now), ud.LastResetDateTime())

	_, err = c.TogglePath(pathID)
	require.NoError(t, err)
	applied, err = c.CheckReset(now.Add(30 * time.Minute))
	require.NoError(t, err)
	assert.False(t, applied)
	assert.True(t, ud.IsPathCompleted(pathID))

	applied, err = c.CheckReset(now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, applied)
	assert.False(t, ud.IsPathCompleted(pathID))

	persister.SaveFunc = func(v any) error { return errors.New("disk full") }
	_, err = c.CheckReset(now.Add(25 * time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset dungeons")
}
