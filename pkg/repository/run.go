package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/gw2tracker/pkg/domain"
)

// RunRepository journals dungeon path completions
type RunRepository struct {
	db *sqlx.DB
}

// pathRun is the database row of a recorded run
type pathRun struct {
	ID          int64     `db:"id"`
	PathID      string    `db:"path_id"`
	DurationMS  int64     `db:"duration_ms"`
	CompletedAt time.Time `db:"completed_at"`
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// AddRun records a path completion and sets run.ID
func (r *RunRepository) AddRun(ctx context.Context, run *domain.PathRun) error {
	if run.Duration <= 0 {
		return errors.New("add run: duration must be positive")
	}
	if run.CompletedAt.IsZero() {
		run.CompletedAt = time.Now()
	}
	row := pathRun{
		PathID:      run.PathID.String(),
		DurationMS:  run.Duration.Milliseconds(),
		CompletedAt: run.CompletedAt.UTC(),
	}

	query := `INSERT INTO path_runs (path_id, duration_ms, completed_at) VALUES (:path_id, :duration_ms, :completed_at)`
	return withRetry(ctx, "add run", func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		run.ID = id
		return nil
	})
}

// BestRun returns the fastest run of a path, nil if the path was never recorded
func (r *RunRepository) BestRun(ctx context.Context, pathID uuid.UUID) (*domain.PathRun, error) {
	var row pathRun
	query := `SELECT id, path_id, duration_ms, completed_at FROM path_runs
		WHERE path_id = ? ORDER BY duration_ms ASC, completed_at ASC LIMIT 1`
	err := r.db.GetContext(ctx, &row, query, pathID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no runs is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("get best run: %w", err)
	}
	return row.toDomain()
}

// Runs returns the latest runs of a path, newest first
func (r *RunRepository) Runs(ctx context.Context, pathID uuid.UUID, limit int) ([]domain.PathRun, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []pathRun
	query := `SELECT id, path_id, duration_ms, completed_at FROM path_runs
		WHERE path_id = ? ORDER BY completed_at DESC, id DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, pathID.String(), limit); err != nil {
		return nil, fmt.Errorf("get runs: %w", err)
	}
	res := make([]domain.PathRun, 0, len(rows))
	for _, row := range rows {
		run, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, *run)
	}
	return res, nil
}

// DeleteRuns removes all recorded runs of a path, returns number of deleted runs
func (r *RunRepository) DeleteRuns(ctx context.Context, pathID uuid.UUID) (int64, error) {
	var deleted int64
	err := withRetry(ctx, "delete runs", func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM path_runs WHERE path_id = ?", pathID.String())
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	return deleted, err
}

func (p pathRun) toDomain() (*domain.PathRun, error) {
	id, err := uuid.Parse(p.PathID)
	if err != nil {
		return nil, fmt.Errorf("bad path id %q in run %d: %w", p.PathID, p.ID, err)
	}
	return &domain.PathRun{
		ID:          p.ID,
		PathID:      id,
		Duration:    time.Duration(p.DurationMS) * time.Millisecond,
		CompletedAt: p.CompletedAt,
	}, nil
}
