package settings

import "errors"

var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotificationFailed is returned when the batch was written but the
	// settings-updated event was not accepted by the sink. The upserted rows
	// stay committed; callers must treat this as a real outcome and
	// reconcile out of band if they need to.
	ErrNotificationFailed = errors.New("settings update notification failed")
)
