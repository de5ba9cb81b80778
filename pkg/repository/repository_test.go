package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, repos.Ping(ctx))

	pathID := uuid.New()
	other := uuid.New()
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no runs", func(t *testing.T) {
		best, err := repos.Run.BestRun(ctx, pathID)
		require.NoError(t, err)
		assert.Nil(t, best)

		runs, err := repos.Run.Runs(ctx, pathID, 10)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("add runs", func(t *testing.T) {
		durations := []time.Duration{14 * time.Minute, 9*time.Minute + 30*time.Second, 11 * time.Minute}
		for i, d := range durations {
			run := &domain.PathRun{PathID: pathID, Duration: d, CompletedAt: base.Add(time.Duration(i) * time.Hour)}
			require.NoError(t, repos.Run.AddRun(ctx, run))
			assert.NotZero(t, run.ID)
		}
		require.NoError(t, repos.Run.AddRun(ctx, &domain.PathRun{PathID: other, Duration: time.Minute, CompletedAt: base}))
	})

	t.Run("best run", func(t *testing.T) {
		best, err := repos.Run.BestRun(ctx, pathID)
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, pathID, best.PathID)
		assert.Equal(t, 9*time.Minute+30*time.Second, best.Duration)
		assert.True(t, best.CompletedAt.Equal(base.Add(time.Hour)), "got %v", best.CompletedAt)
	})

	t.Run("runs newest first with limit", func(t *testing.T) {
		runs, err := repos.Run.Runs(ctx, pathID, 2)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 11*time.Minute, runs[0].Duration)
		assert.Equal(t, 9*time.Minute+30*time.Second, runs[1].Duration)

		runs, err = repos.Run.Runs(ctx, pathID, 0)
		require.NoError(t, err)
		assert.Len(t, runs, 3)
	})

	t.Run("delete runs", func(t *testing.T) {
		n, err := repos.Run.DeleteRuns(ctx, pathID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		best, err := repos.Run.BestRun(ctx, pathID)
		require.NoError(t, err)
		assert.Nil(t, best)

		best, err = repos.Run.BestRun(ctx, other)
		require.NoError(t, err)
		require.NotNil(t, best, "runs of other paths are kept")
	})
}

func TestRunRepository_AddRunValidation(t *testing.T) {
	repos := setupTestDB(t)

	err := repos.Run.AddRun(context.Background(), &domain.PathRun{PathID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration must be positive")

	run := &domain.PathRun{PathID: uuid.New(), Duration: time.Minute}
	require.NoError(t, repos.Run.AddRun(context.Background(), run))
	assert.False(t, run.CompletedAt.IsZero(), "completion time defaults to now")
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	v, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, repos.Setting.SetSetting(ctx, "items.en.rebuilt_at", "2024-03-10T12:00:00Z"))
	require.NoError(t, repos.Setting.SetSetting(ctx, "items.en.rebuilt_at", "2024-03-11T12:00:00Z"))
	v, err = repos.Setting.GetSetting(ctx, "items.en.rebuilt_at")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11T12:00:00Z", v)
}

func TestIsLockError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("SQLITE_BUSY"), true},
		{errors.New("database is locked (5)"), true},
		{fmt.Errorf("exec: %w", errors.New("database table is locked")), true},
		{errors.New("no such table: path_runs"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isLockError(tt.err), "%v", tt.err)
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), "op", func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("wraps other errors", func(t *testing.T) {
		sentinel := errors.New("constraint failed")
		calls := 0
		err := withRetry(context.Background(), "op", func() error { calls++; return sentinel })
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, "op: constraint failed", err.Error())
		assert.Equal(t, 1, calls, "non-lock error must not be retried")
	})

	t.Run("sql error stops at first attempt", func(t *testing.T) {
		repos := setupTestDB(t)
		calls := 0
		err := withRetry(context.Background(), "insert", func() error {
			calls++
			_, err := repos.DB.Exec("INSERT INTO no_such_table (x) VALUES (1)")
			return err
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert: ")
		assert.Equal(t, 1, calls)
	})

	t.Run("lock error after last attempt keeps op", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), "set setting", func() error {
			calls++
			return errors.New("database is locked")
		})
		require.Error(t, err)
		assert.Equal(t, 5, calls)
		assert.Equal(t, "set setting: database is locked", err.Error())
	})
}

func TestNewRepositories_SchemaVersion(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.ToSlash(filepath.Join(t.TempDir(), "journal.db")) + "?mode=rwc&_txlock=immediate"

	repos, err := NewRepositories(ctx, Config{DSN: dsn})
	require.NoError(t, err)
	var version int
	require.NoError(t, repos.DB.GetContext(ctx, &version, "PRAGMA user_version"))
	assert.Equal(t, schemaVersion, version)
	require.NoError(t, repos.Run.AddRun(ctx, &domain.PathRun{PathID: uuid.New(), Duration: time.Minute}))
	require.NoError(t, repos.Close())

	t.Run("reopen keeps data", func(t *testing.T) {
		repos, err := NewRepositories(ctx, Config{DSN: dsn})
		require.NoError(t, err)
		defer repos.Close()
		var count int
		require.NoError(t, repos.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM path_runs"))
		assert.Equal(t, 1, count)
	})

	t.Run("newer schema rejected", func(t *testing.T) {
		repos, err := NewRepositories(ctx, Config{DSN: dsn})
		require.NoError(t, err)
		_, err = repos.DB.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion+1))
		require.NoError(t, err)
		require.NoError(t, repos.Close())

		_, err = NewRepositories(ctx, Config{DSN: dsn})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "newer than supported")
	})
}
