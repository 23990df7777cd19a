package records

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

const testKey = "test_secure_db"

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewStore(NewRedisBlobStore(rdb), testKey), mr
}

func TestStore_AbsentBlobIsEmptyDatabase(t *testing.T) {
	store, _ := newTestStore(t)

	db, err := store.Database(context.Background())
	if err != nil {
		t.Fatalf("database: %v", err)
	}
	if len(db.Users) != 0 || len(db.AuditLogs) != 0 {
		t.Fatalf("expected empty database, got %+v", db)
	}
}

func TestStore_MalformedBlobIsEmptyDatabase(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set(testKey, "{not json")

	db, err := store.Database(context.Background())
	if err != nil {
		t.Fatalf("database: %v", err)
	}
	if len(db.Users) != 0 {
		t.Fatalf("expected empty database from corrupt blob, got %+v", db)
	}
}

func TestStore_UsersRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	users := []User{
		{ID: "ADM-0001", Email: "ana@example.com", Status: StatusActive, Role: RoleAdminPrincipal},
		{ID: "USR-0002", Email: "bruno@example.com", Status: StatusPending, Role: RoleUser},
	}
	if err := store.SaveUsers(ctx, users); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Users(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].ID != "ADM-0001" || got[1].Status != StatusPending {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestStore_MergePreservesForeignFields(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	// Seed a blob carrying collections this adapter does not model.
	seed := map[string]any{
		"users":        []User{{ID: "ADM-0001", Status: StatusActive}},
		"designations": []map[string]string{{"id": "D1", "title": "Som"}},
		"isChatActive": true,
	}
	raw, _ := json.Marshal(seed)
	mr.Set(testKey, string(raw))

	if err := store.SaveUsers(ctx, []User{{ID: "ADM-0001", Status: StatusInactive}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := mr.Get(testKey)
	if err != nil {
		t.Fatalf("get blob: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stored), &fields); err != nil {
		t.Fatalf("decode blob: %v", err)
	}
	if _, ok := fields["designations"]; !ok {
		t.Fatal("merge dropped the designations collection")
	}
	if string(fields["isChatActive"]) != "true" {
		t.Fatalf("merge rewrote isChatActive: %s", fields["isChatActive"])
	}

	users, err := store.Users(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(users) != 1 || users[0].Status != StatusInactive {
		t.Fatalf("users field not replaced: %+v", users)
	}
}

func TestStore_PrependAuditLogNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := AuditLogEntry{ID: "LOG-1", Action: AuditLoginSuccess}
	second := AuditLogEntry{ID: "LOG-2", Action: AuditLogout}

	if err := store.PrependAuditLog(ctx, first); err != nil {
		t.Fatalf("prepend first: %v", err)
	}
	if err := store.PrependAuditLog(ctx, second); err != nil {
		t.Fatalf("prepend second: %v", err)
	}

	logs, err := store.AuditLogs(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(logs) != 2 || logs[0].ID != "LOG-2" || logs[1].ID != "LOG-1" {
		t.Fatalf("expected newest first, got %+v", logs)
	}
}

func TestStore_SaveNilUsersWritesEmptyCollection(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveUsers(ctx, nil); err != nil {
		t.Fatalf("save nil: %v", err)
	}
	users, err := store.Users(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", users)
	}
}

func TestRedisBlobStore_UnavailableBackend(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	blob := NewRedisBlobStore(rdb)
	if _, err := blob.Load(context.Background(), testKey); err == nil {
		t.Fatal("expected error against a dead backend")
	}
}

func TestDatabase_FindByIdentifier(t *testing.T) {
	db := Database{Users: []User{
		{ID: "ADM-0001", Email: "ana@example.com"},
		{ID: "USR-0002", Email: "bruno@example.com"},
	}}

	if got := db.FindByIdentifier("USR-0002"); got != 1 {
		t.Fatalf("by id: expected 1, got %d", got)
	}
	if got := db.FindByIdentifier("ana@example.com"); got != 0 {
		t.Fatalf("by email: expected 0, got %d", got)
	}
	// Exact match only.
	if got := db.FindByIdentifier("ANA@example.com"); got != -1 {
		t.Fatalf("cased email must not match, got %d", got)
	}
	if got := db.FindByIdentifier("ghost"); got != -1 {
		t.Fatalf("unknown: expected -1, got %d", got)
	}
}

func TestUser_LockedAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	u := User{}
	if u.LockedAt(now) {
		t.Fatal("zero LockedUntil must not lock")
	}

	u.LockedUntil = now.UnixMilli() + 60_000
	if !u.LockedAt(now) {
		t.Fatal("future deadline should lock")
	}

	u.LockedUntil = now.UnixMilli() - 1
	if u.LockedAt(now) {
		t.Fatal("past deadline should not lock")
	}
}
