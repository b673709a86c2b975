// Package notify defines the settings-updated event and its delivery metrics.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeSettingsUpdated is the type field of every event this service emits.
const EventTypeSettingsUpdated = "settings.updated"

// Change is one (key, value) pair written in a batch.
type Change struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SettingsUpdatedEvent describes one completed updateSettings batch. Exactly
// one event is emitted per successful invocation, carrying every changed key.
// ActorID serializes as an explicit null when the write was anonymous — the
// field is never omitted.
type SettingsUpdatedEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	ActorID    *string   `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Changes    []Change  `json:"changes"`
}

// NewSettingsUpdatedEvent builds an event for one batch, stamping a fresh
// delivery id. occurredAt is the batch timestamp shared by every row written
// in the invocation.
func NewSettingsUpdatedEvent(userID string, actorID *string, occurredAt time.Time, changes []Change) SettingsUpdatedEvent {
	if changes == nil {
		changes = []Change{}
	}
	return SettingsUpdatedEvent{
		ID:         uuid.NewString(),
		Type:       EventTypeSettingsUpdated,
		UserID:     userID,
		ActorID:    actorID,
		OccurredAt: occurredAt,
		Changes:    changes,
	}
}
