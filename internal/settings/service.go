// Package settings provides user settings reads and the update-with-notification workflow.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmorken/settings-hub/internal/domain"
	"github.com/pmorken/settings-hub/internal/notify"
	"github.com/pmorken/settings-hub/internal/pkg/ctxlog"
)

// EventSink delivers a settings-updated event to the downstream consumer.
// Implementations report failure for any non-accepted delivery; the service
// does not retry.
type EventSink interface {
	Send(ctx context.Context, event notify.SettingsUpdatedEvent) error
}

// Service implements settings business logic.
type Service struct {
	repo Repository
	sink EventSink
}

// NewService creates a new settings service.
func NewService(repo Repository, sink EventSink) *Service {
	return &Service{
		repo: repo,
		sink: sink,
	}
}

// GetUser looks up a user by id. A missing user is not an error: the result
// is nil. Storage failures propagate.
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetUsers looks up users independently, one per id. The result order matches
// the input order and missing ids map to nil elements; a storage failure on
// any lookup fails the whole call.
func (s *Service) GetUsers(ctx context.Context, ids []string) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// SettingsCount returns the number of settings rows the user owns, computed
// against persisted state at call time.
func (s *Service) SettingsCount(ctx context.Context, userID string) (int, error) {
	count, err := s.repo.CountSettings(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count settings: %w", err)
	}
	return count, nil
}

// ResolveUpdatedBy resolves a stored actor id to a user. A nil actor id and
// a dangling actor id both resolve to nil.
func (s *Service) ResolveUpdatedBy(ctx context.Context, actorID *string) (*domain.User, error) {
	if actorID == nil {
		return nil, nil
	}
	return s.GetUser(ctx, *actorID)
}

// UpdateResult is what a successful UpdateSettings returns: the resolved user
// and the upserted rows in input order. UpdatedBy on each row is an id
// reference only; resolving it to a user is the reader's job.
type UpdateResult struct {
	User     *domain.User
	Settings []domain.Setting
}

// UpdateSettings upserts each pair in order under one shared timestamp, then
// emits exactly one event describing the whole batch. The event is sent only
// after every upsert has completed, and a rejected event fails the call even
// though the rows are already committed — there is no rollback and no retry.
//
// An empty pairs list is valid: zero rows are written but the notification
// is still sent, with an empty changes list.
func (s *Service) UpdateSettings(ctx context.Context, userID string, pairs []domain.KeyValue, actorID *string) (*UpdateResult, error) {
	ctx = ctxlog.With(ctx, "user_id", userID)

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	// One timestamp for the whole batch: rows written by this call are
	// identifiable as one logical update.
	now := time.Now().UTC()

	upserted := make([]domain.Setting, 0, len(pairs))
	for _, pair := range pairs {
		row, err := s.repo.UpsertSetting(ctx, UpsertSettingParams{
			UserID:    userID,
			Key:       pair.Key,
			Value:     pair.Value,
			UpdatedAt: now,
			UpdatedBy: actorID,
		})
		if err != nil {
			// Rows upserted before this one stay committed; there is no
			// transaction spanning the batch.
			return nil, fmt.Errorf("upsert setting %q: %w", pair.Key, err)
		}
		upserted = append(upserted, *row)
	}

	changes := make([]notify.Change, 0, len(pairs))
	for _, pair := range pairs {
		changes = append(changes, notify.Change{Key: pair.Key, Value: pair.Value})
	}

	event := notify.NewSettingsUpdatedEvent(userID, actorID, now, changes)
	if err := s.sink.Send(ctx, event); err != nil {
		ctxlog.FromContext(ctx).Error("settings update notification rejected",
			"event_id", event.ID,
			"changes", len(changes),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return &UpdateResult{
		User:     user,
		Settings: upserted,
	}, nil
}
