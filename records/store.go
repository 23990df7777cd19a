package records

import (
	"context"
	"encoding/json"
)

const (
	fieldUsers     = "users"
	fieldAuditLogs = "auditLogs"
)

// Store is the read-modify-merge adapter over the database blob. Every
// write loads the full current blob, replaces only the touched top-level
// fields, and writes the whole object back. Fields this package does not
// model (designations, programs, messages, isChatActive) pass through a
// merge byte-for-byte.
//
// The store assumes a single writer; the engine runs its operations to
// completion one at a time by construction.
type Store struct {
	blob BlobStore
	key  string
}

// NewStore creates a merge adapter over blob using the given database key.
func NewStore(blob BlobStore, key string) *Store {
	return &Store{blob: blob, key: key}
}

// loadRaw decodes the database blob into its top-level fields. An absent
// or malformed blob yields an empty map.
func (s *Store) loadRaw(ctx context.Context) (map[string]json.RawMessage, error) {
	raw, err := s.blob.Load(ctx, s.key)
	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Corrupt blob: start from an empty record rather than failing
		// every subsequent operation.
		return map[string]json.RawMessage{}, nil
	}
	return fields, nil
}

func (s *Store) merge(ctx context.Context, field string, value any) error {
	fields, err := s.loadRaw(ctx)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fields[field] = encoded

	blob, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return s.blob.Save(ctx, s.key, blob)
}

func decodeField[T any](fields map[string]json.RawMessage, name string) []T {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Database returns the decoded security-relevant collections.
func (s *Store) Database(ctx context.Context) (Database, error) {
	fields, err := s.loadRaw(ctx)
	if err != nil {
		return Database{}, err
	}
	return Database{
		Users:     decodeField[User](fields, fieldUsers),
		AuditLogs: decodeField[AuditLogEntry](fields, fieldAuditLogs),
	}, nil
}

// Users returns the persisted user collection.
func (s *Store) Users(ctx context.Context) ([]User, error) {
	db, err := s.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Users, nil
}

// SaveUsers merges the complete user collection into the database blob.
// Callers must pass the full up-to-date collection; a partial slice would
// silently drop the missing users.
func (s *Store) SaveUsers(ctx context.Context, users []User) error {
	if users == nil {
		users = []User{}
	}
	return s.merge(ctx, fieldUsers, users)
}

// AuditLogs returns the persisted audit trail, newest first.
func (s *Store) AuditLogs(ctx context.Context) ([]AuditLogEntry, error) {
	db, err := s.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.AuditLogs, nil
}

// PrependAuditLog inserts entry at the head of the audit trail and merges
// the result back. Entries are never rewritten or removed.
func (s *Store) PrependAuditLog(ctx context.Context, entry AuditLogEntry) error {
	logs, err := s.AuditLogs(ctx)
	if err != nil {
		return err
	}

	updated := make([]AuditLogEntry, 0, len(logs)+1)
	updated = append(updated, entry)
	updated = append(updated, logs...)
	return s.merge(ctx, fieldAuditLogs, updated)
}
