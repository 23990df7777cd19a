package session

import "time"

// Session binds a logged-in user to a device for a fixed 24-hour window.
// Timestamps are epoch milliseconds, the format existing session blobs
// carry.
type Session struct {
	UserID         string `json:"userId"`
	LoginTimestamp int64  `json:"loginTimestamp"`
	ExpiresAt      int64  `json:"expiresAt"`
	DeviceID       string `json:"deviceId"`
}

// New creates a session for userID on deviceID starting at now.
func New(userID, deviceID string, now time.Time, ttl time.Duration) Session {
	login := now.UnixMilli()
	return Session{
		UserID:         userID,
		LoginTimestamp: login,
		ExpiresAt:      now.Add(ttl).UnixMilli(),
		DeviceID:       deviceID,
	}
}

// ExpiredAt reports whether the session's absolute deadline has passed.
func (s Session) ExpiredAt(now time.Time) bool {
	return now.UnixMilli() > s.ExpiresAt
}
