package congsec

import "context"

type contextKey int

const (
	actorContextKey contextKey = iota
	deviceContextKey
)

// WithActor attaches the authenticated user to ctx. Every audited
// operation attributes its entries to this actor; without one the system
// sentinel is used.
func WithActor(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, actorContextKey, user)
}

func actorFromContext(ctx context.Context) *User {
	if ctx == nil {
		return nil
	}
	if user, ok := ctx.Value(actorContextKey).(User); ok {
		return &user
	}
	return nil
}

// WithDeviceID attaches the caller's device identifier to ctx. Sessions
// issued without one get a generated identifier.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, deviceContextKey, deviceID)
}

func deviceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(deviceContextKey).(string); ok {
		return id
	}
	return ""
}
