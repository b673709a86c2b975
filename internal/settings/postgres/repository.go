// Package postgres provides the PostgreSQL implementation of the settings repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pmorken/settings-hub/internal/domain"
	"github.com/pmorken/settings-hub/internal/settings"
)

// Repository implements the settings.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetUserByID retrieves a user by its ID.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, role, created_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

// CountSettings counts the settings rows owned by a user.
func (r *Repository) CountSettings(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_settings WHERE user_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count settings: %w", err)
	}

	return count, nil
}

// UpsertSetting inserts or overwrites the row keyed by (user_id, key) and
// returns its final state. The ON CONFLICT path is what makes concurrent
// writers to the same key safe: the unique constraint arbitrates, last write
// wins at row level.
func (r *Repository) UpsertSetting(ctx context.Context, params settings.UpsertSettingParams) (*domain.Setting, error) {
	query := `
		INSERT INTO user_settings (user_id, key, value, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at, updated_by = EXCLUDED.updated_by
		RETURNING id, user_id, key, value, updated_at, updated_by
	`
	var setting domain.Setting
	err := r.db.QueryRow(ctx, query,
		params.UserID,
		params.Key,
		params.Value,
		params.UpdatedAt,
		params.UpdatedBy,
	).Scan(
		&setting.ID,
		&setting.UserID,
		&setting.Key,
		&setting.Value,
		&setting.UpdatedAt,
		&setting.UpdatedBy,
	)

	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}

	return &setting, nil
}
