package settings

import (
	"context"
	"time"

	"github.com/pmorken/settings-hub/internal/domain"
)

// Repository defines the interface for settings data operations.
type Repository interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// CountSettings returns the number of settings rows owned by the user
	// as currently persisted. No caching: callers rely on the count
	// reflecting committed state at call time.
	CountSettings(ctx context.Context, userID string) (int, error)

	// UpsertSetting inserts or overwrites the row keyed by (user_id, key)
	// and returns its final state. Atomicity per row is delegated to the
	// UNIQUE(user_id, key) constraint; concurrent writers to the same key
	// race on last-write-wins.
	UpsertSetting(ctx context.Context, params UpsertSettingParams) (*domain.Setting, error)
}

// UpsertSettingParams holds data for a single-row upsert.
type UpsertSettingParams struct {
	UserID    string
	Key       string
	Value     string
	UpdatedAt time.Time
	UpdatedBy *string
}
