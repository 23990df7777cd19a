package internal

import "github.com/google/uuid"

// NewLogID returns an audit entry identifier. UUIDv7 keeps ids monotonic
// by creation time, which the exposed newest-first log relies on; the v4
// fallback only fires when the random source fails.
func NewLogID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "LOG-" + uuid.NewString()
	}
	return "LOG-" + id.String()
}

// NewDeviceID returns a generated device identifier for sessions issued
// without an explicit one.
func NewDeviceID() string {
	return uuid.NewString()
}
