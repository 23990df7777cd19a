package congsec

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/records"
	"time"
)

func TestAuditLog_NewestFirst(t *testing.T) {
	rig := newTestRig(t)
	rig.registerAdmin(t)
	rig.registerMember(t, "USR-0002", "bruno@example.com")
	ctx := context.Background()

	if _, err := rig.engine.Login(ctx, "ana@example.com", "admin-pass-123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	actions := rig.auditActions(t)
	if len(actions) != 2 {
		t.Fatalf("expected 2 entries, got %v", actions)
	}
	// Latest action first: the login sits above the registration email.
	if actions[0] != AuditLoginSuccess || actions[1] != AuditRegistrationEmailSent {
		t.Fatalf("trail out of order: %v", actions)
	}
}

func TestAuditLog_EntriesCarryUniqueIDsAndTimestamps(t *testing.T) {
	rig := newTestRig(t)
	rig.registerAdmin(t)
	rig.registerMember(t, "USR-0002", "bruno@example.com")
	rig.registerMember(t, "USR-0003", "carla@example.com")

	logs, err := rig.engine.AuditLog(context.Background())
	if err != nil {
		t.Fatalf("audit log: %v", err)
	}

	seen := map[string]bool{}
	for _, entry := range logs {
		if entry.ID == "" || seen[entry.ID] {
			t.Fatalf("duplicate or empty entry id: %+v", entry)
		}
		seen[entry.ID] = true

		if !strings.HasPrefix(entry.ID, "LOG-") {
			t.Fatalf("unexpected id shape %q", entry.ID)
		}
		if _, perr := time.Parse(time.RFC3339, entry.Timestamp); perr != nil {
			t.Fatalf("bad timestamp %q: %v", entry.Timestamp, perr)
		}
	}
}

func TestAuditLog_SentinelActorWithoutContext(t *testing.T) {
	rig := newTestRig(t)
	rig.registerAdmin(t)
	rig.registerMember(t, "USR-0002", "bruno@example.com")

	logs, err := rig.engine.AuditLog(context.Background())
	if err != nil {
		t.Fatalf("audit log: %v", err)
	}
	if len(logs) == 0 {
		t.Fatal("expected at least one entry")
	}
	if logs[0].AdminID != records.SystemActorID || logs[0].AdminName != records.SystemActorName {
		t.Fatalf("expected sentinel actor, got %s/%s", logs[0].AdminID, logs[0].AdminName)
	}
}

func TestChannelSink_ReceivesEntries(t *testing.T) {
	sink := NewChannelSink(8)

	engine, err := New().
		WithConfig(testConfig()).
		WithBlobStore(newMemoryBlobStore()).
		WithMailer(&fakeMailer{}).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer engine.Close()

	if _, err := engine.Register(context.Background(), RegisterRequest{
		FirstName: "Ana",
		LastName:  "Admin",
		Email:     "ana@example.com",
		Password:  "admin-pass-123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := engine.Register(context.Background(), RegisterRequest{
		ID:       "USR-0002",
		Email:    "bruno@example.com",
		Password: "member-pass-123",
	}); err != nil {
		t.Fatalf("register member: %v", err)
	}

	select {
	case entry := <-sink.Entries():
		if entry.Action != AuditRegistrationEmailSent {
			t.Fatalf("expected EMAIL_CADASTRO_ENVIADO, got %s", entry.Action)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sink delivery")
	}
}

func TestJSONWriterSink_WritesOneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditLogEntry{ID: "LOG-1", Action: AuditLoginSuccess})
	sink.Emit(context.Background(), AuditLogEntry{ID: "LOG-2", Action: AuditLogout})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	var entry AuditLogEntry
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line not valid JSON: %v", err)
	}
	if entry.ID != "LOG-1" {
		t.Fatalf("expected LOG-1 first, got %s", entry.ID)
	}
}

func TestAuditDispatcher_CloseDrainsBuffer(t *testing.T) {
	sink := NewChannelSink(16)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 16, DropIfFull: true}, sink)

	for i := 0; i < 5; i++ {
		d.Emit(context.Background(), AuditLogEntry{ID: "LOG-x", Action: AuditLoginSuccess})
	}
	d.Close()

	received := 0
	for {
		select {
		case <-sink.Entries():
			received++
			if received == 5 {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected 5 deliveries before close, got %d", received)
		}
	}
}

func TestAuditDispatcher_NilAfterDisabled(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: false}, nil)
	if d != nil {
		t.Fatal("disabled dispatcher should be nil")
	}
	// Emits and Close on the nil dispatcher are safe.
	d.Emit(context.Background(), AuditLogEntry{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reports drops")
	}
}

// memoryBlobStore is an in-process BlobStore for tests that do not need
// miniredis.
type memoryBlobStore struct {
	blobs map[string][]byte
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{blobs: map[string][]byte{}}
}

func (s *memoryBlobStore) Load(_ context.Context, key string) ([]byte, error) {
	return s.blobs[key], nil
}

func (s *memoryBlobStore) Save(_ context.Context, key string, blob []byte) error {
	s.blobs[key] = append([]byte(nil), blob...)
	return nil
}

func (s *memoryBlobStore) Delete(_ context.Context, key string) error {
	delete(s.blobs, key)
	return nil
}
