package domain

import "time"

// Setting is one key-value row owned by a user. Keys are unique per user:
// writing an existing key overwrites value, timestamp, and updated-by
// instead of creating a duplicate row.
type Setting struct {
	ID        string
	UserID    string
	Key       string
	Value     string
	UpdatedAt time.Time
	UpdatedBy *string // actor who last wrote the row, nil for system writes
}

// KeyValue is one requested settings change.
type KeyValue struct {
	Key   string
	Value string
}
