package congsec

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/password"
	"github.com/ajjmtutorial-wq/minha-congregacao-app/records"
	"github.com/ajjmtutorial-wq/minha-congregacao-app/session"
)

// Builder assembles an [Engine] from a configuration and its
// collaborators. Zero values come from the defaults; every With* call
// overrides one concern and returns the builder for chaining.
type Builder struct {
	config    Config
	redis     redis.UniversalClient
	blob      records.BlobStore
	mailer    Mailer
	auditSink AuditSink
	built     bool
}

// New returns a Builder seeded with the default configuration.
func New() *Builder {
	return &Builder{config: defaultConfig()}
}

// WithConfig replaces the entire configuration. Call it first when used
// together with the narrower With* overrides.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis backs both blobs with the given Redis client.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithBlobStore backs both blobs with a custom store. Takes precedence
// over [Builder.WithRedis].
func (b *Builder) WithBlobStore(store records.BlobStore) *Builder {
	b.blob = store
	return b
}

// WithMailer sets the confirmation-email collaborator. Required.
func (b *Builder) WithMailer(m Mailer) *Builder {
	b.mailer = m
	return b
}

// WithAuditSink sets the optional live audit sink. The persisted audit
// trail is written regardless.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithSessionSecret sets the session signing secret.
func (b *Builder) WithSessionSecret(secret []byte) *Builder {
	b.config.Session.Secret = cloneBytes(secret)
	return b
}

// WithSessionTTL overrides the absolute session lifetime.
func (b *Builder) WithSessionTTL(ttl time.Duration) *Builder {
	b.config.Session.TTL = ttl
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, wires the collaborators, and
// returns a ready Engine. A builder builds at most once.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	blob := b.blob
	if blob == nil {
		if b.redis == nil {
			return nil, errors.New("a blob store or redis client is required")
		}
		blob = records.NewRedisBlobStore(b.redis)
	}
	if b.mailer == nil {
		return nil, errors.New("a mailer is required")
	}

	codec, err := session.NewCodec(b.config.Session.Secret)
	if err != nil {
		return nil, err
	}

	hasher, err := password.NewHasher(password.Config{
		Memory:      b.config.Password.Memory,
		Time:        b.config.Password.Time,
		Parallelism: b.config.Password.Parallelism,
		SaltLength:  b.config.Password.SaltLength,
		KeyLength:   b.config.Password.KeyLength,
	})
	if err != nil {
		return nil, err
	}

	b.built = true
	return &Engine{
		config:   b.config,
		records:  records.NewStore(blob, b.config.Store.DatabaseKey),
		sessions: session.NewStore(blob, b.config.Store.SessionKey, codec),
		mailer:   b.mailer,
		hasher:   hasher,
		audit:    newAuditDispatcher(b.config.Audit, b.auditSink),
		metrics:  NewMetrics(b.config.Metrics),
		now:      time.Now,
	}, nil
}
