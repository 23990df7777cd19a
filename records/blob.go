package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable indicates the durable store backend is unreachable.
var ErrUnavailable = errors.New("record store unavailable")

// BlobStore is the persistence boundary: two named blobs, loaded and saved
// whole. A nil blob from Load means the key is absent, which is never an
// error.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}

// RedisBlobStore backs the blob contract with Redis string keys. Blobs
// are written without TTL; durability policy belongs to the Redis
// deployment, not this adapter.
type RedisBlobStore struct {
	client redis.UniversalClient
}

// NewRedisBlobStore creates a Redis-backed blob store.
func NewRedisBlobStore(client redis.UniversalClient) *RedisBlobStore {
	return &RedisBlobStore{client: client}
}

// Load fetches the blob stored under key, or nil when the key is absent.
func (s *RedisBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return raw, nil
}

// Save overwrites the blob stored under key.
func (s *RedisBlobStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete removes the blob stored under key. Deleting an absent key is a
// no-op.
func (s *RedisBlobStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
