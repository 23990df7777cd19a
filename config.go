package congsec

import (
	"errors"
	"time"
)

// StoreConfig names the two blobs the engine persists through.
type StoreConfig struct {
	// DatabaseKey addresses the merged record blob.
	DatabaseKey string
	// SessionKey addresses the active-session blob.
	SessionKey string
}

// SessionConfig controls session issuance and verification.
type SessionConfig struct {
	// TTL is the absolute session lifetime from login.
	TTL time.Duration
	// Secret signs the persisted session blob. Minimum 32 bytes.
	Secret []byte
}

// LockoutConfig controls the failed-login lockout escalation.
type LockoutConfig struct {
	// Threshold is the failed-attempt count that triggers a lockout.
	Threshold int
	// Duration is how long a triggered lockout suppresses logins.
	Duration time.Duration
}

// AccountConfig controls registration behavior.
type AccountConfig struct {
	// AdminMasterID is the fixed identifier assigned to the first-ever
	// registrant, who permanently holds RoleAdminPrincipal.
	AdminMasterID string
}

// ResendConfig bounds confirmation-email resends.
type ResendConfig struct {
	// MaxPerWindow is the number of resends permitted inside one window.
	MaxPerWindow int
	// Window is the rolling period after which the counter resets.
	Window time.Duration
}

// AuditConfig controls the async audit sink dispatcher. The persisted
// audit trail is always written; the dispatcher only governs delivery to
// the optional AuditSink.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig toggles the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// PasswordConfig holds the Argon2id cost parameters used for new hashes.
type PasswordConfig struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Config is the full engine configuration. Start from the defaults via
// [New] and override what the deployment needs; [Config.Validate] runs at
// Build time.
type Config struct {
	Store    StoreConfig
	Session  SessionConfig
	Lockout  LockoutConfig
	Account  AccountConfig
	Resend   ResendConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
	Password PasswordConfig
}

func defaultConfig() Config {
	return Config{
		Store: StoreConfig{
			DatabaseKey: "chingo_core_secure_db",
			SessionKey:  "chingo_core_session",
		},
		Session: SessionConfig{
			TTL: 24 * time.Hour,
		},
		Lockout: LockoutConfig{
			Threshold: 5,
			Duration:  15 * time.Minute,
		},
		Account: AccountConfig{
			AdminMasterID: "ADM-0001",
		},
		Resend: ResendConfig{
			MaxPerWindow: 3,
			Window:       24 * time.Hour,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Password: PasswordConfig{
			Memory:      64 * 1024,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Session.Secret = cloneBytes(cfg.Session.Secret)
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Validate checks the configuration for values the engine cannot operate
// with. It is called by [Builder.Build].
func (c Config) Validate() error {
	if c.Store.DatabaseKey == "" {
		return errors.New("store database key required")
	}
	if c.Store.SessionKey == "" {
		return errors.New("store session key required")
	}
	if c.Store.DatabaseKey == c.Store.SessionKey {
		return errors.New("database and session keys must differ")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	if len(c.Session.Secret) < 32 {
		return errors.New("session secret must be at least 32 bytes")
	}
	if c.Lockout.Threshold < 1 {
		return errors.New("lockout threshold must be >= 1")
	}
	if c.Lockout.Duration <= 0 {
		return errors.New("lockout duration must be positive")
	}
	if c.Account.AdminMasterID == "" {
		return errors.New("admin master id required")
	}
	if c.Resend.MaxPerWindow < 1 {
		return errors.New("resend quota must be >= 1")
	}
	if c.Resend.Window <= 0 {
		return errors.New("resend window must be positive")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 1 {
		return errors.New("audit buffer size must be >= 1")
	}
	return nil
}
