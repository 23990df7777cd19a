package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned when a session blob fails signature or
// structural verification.
var ErrTokenInvalid = errors.New("invalid session token")

const minSecretLength = 32

type sessionClaims struct {
	DeviceID string `json:"deviceId"`
	jwt.RegisteredClaims
}

// Codec signs sessions into compact HS256 tokens and verifies them back.
// The same process both signs and verifies; the signature exists to make
// the persisted blob tamper-evident, not to authenticate a remote party.
type Codec struct {
	secret []byte
}

// NewCodec creates a codec from a signing secret of at least 32 bytes.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) < minSecretLength {
		return nil, errors.New("session secret must be at least 32 bytes")
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Codec{secret: key}, nil
}

// Encode signs s into its persisted compact form.
func (c *Codec) Encode(s Session) (string, error) {
	claims := sessionClaims{
		DeviceID: s.DeviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(time.UnixMilli(s.LoginTimestamp)),
			ExpiresAt: jwt.NewNumericDate(time.UnixMilli(s.ExpiresAt)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies a persisted token and rebuilds the session. Expiry is
// deliberately not validated here: the engine clears an expired session
// with an audited reason, which requires seeing the session first.
func (c *Codec) Decode(token string) (Session, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims sessionClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Session{}, ErrTokenInvalid
	}
	if claims.Subject == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return Session{}, ErrTokenInvalid
	}

	return Session{
		UserID:         claims.Subject,
		LoginTimestamp: claims.IssuedAt.UnixMilli(),
		ExpiresAt:      claims.ExpiresAt.UnixMilli(),
		DeviceID:       claims.DeviceID,
	}, nil
}
