package session

import (
	"context"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/records"
)

// Store persists the sole active session under a dedicated blob key.
// Saving overwrites any prior session: the model is single-device by
// construction.
type Store struct {
	blob  records.BlobStore
	key   string
	codec *Codec
}

// NewStore creates a session store over blob at the given key.
func NewStore(blob records.BlobStore, key string, codec *Codec) *Store {
	return &Store{blob: blob, key: key, codec: codec}
}

// Save signs and persists s as the active session.
func (s *Store) Save(ctx context.Context, sess Session) error {
	token, err := s.codec.Encode(sess)
	if err != nil {
		return err
	}
	return s.blob.Save(ctx, s.key, []byte(token))
}

// Load returns the active session, or nil when none is persisted. A blob
// that fails verification (truncated, edited, or signed with another key)
// is cleared and reported as absent, matching the record store's
// treat-corruption-as-empty contract.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	raw, err := s.blob.Load(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	sess, err := s.codec.Decode(string(raw))
	if err != nil {
		_ = s.blob.Delete(ctx, s.key)
		return nil, nil
	}
	return &sess, nil
}

// Delete removes the active session. Deleting when none exists succeeds.
func (s *Store) Delete(ctx context.Context) error {
	return s.blob.Delete(ctx, s.key)
}
