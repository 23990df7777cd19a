package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	algorithmID = "argon2id"

	minMemoryKB   uint32 = 8 * 1024
	minSaltLength uint32 = 16
	minKeyLength  uint32 = 16
	minPassphrase        = 8
)

// ErrHashMalformed is returned when a stored hash does not parse as a
// supported PHC string.
var ErrHashMalformed = errors.New("malformed password hash")

// Config holds the Argon2id cost parameters.
type Config struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Hasher derives and verifies Argon2id password hashes. A Hasher is
// immutable after construction and safe for concurrent use.
type Hasher struct {
	config Config
}

// NewHasher validates cfg and returns a ready Hasher.
func NewHasher(cfg Config) (*Hasher, error) {
	switch {
	case cfg.Memory < minMemoryKB:
		return nil, errors.New("password memory must be >= 8192 KB")
	case cfg.Time < 1:
		return nil, errors.New("password time cost must be >= 1")
	case cfg.Parallelism < 1:
		return nil, errors.New("password parallelism must be >= 1")
	case cfg.SaltLength < minSaltLength:
		return nil, errors.New("password salt length must be >= 16")
	case cfg.KeyLength < minKeyLength:
		return nil, errors.New("password key length must be >= 16")
	}
	return &Hasher{config: cfg}, nil
}

// Hash derives a PHC-encoded hash from the given passphrase. Passphrase
// bytes are used exactly as provided, without normalization.
func (h *Hasher) Hash(passphrase string) (string, error) {
	if len(passphrase) < minPassphrase {
		return "", fmt.Errorf("password must be at least %d bytes", minPassphrase)
	}

	salt := make([]byte, h.config.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	key := argon2.IDKey(
		[]byte(passphrase),
		salt,
		h.config.Time,
		h.config.Memory,
		h.config.Parallelism,
		h.config.KeyLength,
	)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.config.Memory,
		h.config.Time,
		h.config.Parallelism,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether passphrase matches the stored PHC hash. The
// parameters come from the stored value, not the Hasher config, so hashes
// written under older cost settings keep verifying. The comparison is
// constant-time over the derived keys.
func (h *Hasher) Verify(passphrase, encoded string) (bool, error) {
	memory, timeCost, parallelism, salt, key, err := decodePHC(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(passphrase), salt, timeCost, memory, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

func decodePHC(encoded string) (memory, timeCost uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithmID {
		return 0, 0, 0, nil, nil, ErrHashMalformed
	}

	version, convErr := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if !strings.HasPrefix(parts[2], "v=") || convErr != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrHashMalformed
	}

	var m, t uint64
	var p uint64
	for _, pair := range strings.Split(parts[3], ",") {
		value, found := strings.CutPrefix(pair, "m=")
		if found {
			m, convErr = strconv.ParseUint(value, 10, 32)
		} else if value, found = strings.CutPrefix(pair, "t="); found {
			t, convErr = strconv.ParseUint(value, 10, 32)
		} else if value, found = strings.CutPrefix(pair, "p="); found {
			p, convErr = strconv.ParseUint(value, 10, 8)
		} else {
			convErr = ErrHashMalformed
		}
		if convErr != nil {
			return 0, 0, 0, nil, nil, ErrHashMalformed
		}
	}
	if m < uint64(minMemoryKB) || t < 1 || p < 1 {
		return 0, 0, 0, nil, nil, ErrHashMalformed
	}

	salt, convErr = base64.StdEncoding.DecodeString(parts[4])
	if convErr != nil || uint32(len(salt)) < minSaltLength {
		return 0, 0, 0, nil, nil, ErrHashMalformed
	}
	key, convErr = base64.StdEncoding.DecodeString(parts[5])
	if convErr != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, ErrHashMalformed
	}

	return uint32(m), uint32(t), uint8(p), salt, key, nil
}
