package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SettingRepository keeps key/value metadata, like the last item database rebuild per locale
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository makes setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting returns value of key, empty if key was never set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	row := r.db.QueryRowxContext(ctx, "SELECT value FROM settings WHERE key = ?", key)
	if err := row.Scan(&value); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value.String, nil
}

// SetSetting inserts or replaces value of key and stamps the update time
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	return withRetry(ctx, "set setting "+key, func() error {
		_, err := r.db.ExecContext(ctx, `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, key, value)
		return err
	})
}
