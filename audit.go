package congsec

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// AuditSink receives every audit entry the engine persists, in commit
// order. Sinks observe the trail; the durable copy in the database blob
// is written regardless of sink behavior.
type AuditSink interface {
	Emit(ctx context.Context, entry AuditLogEntry)
}

// NoOpSink is an [AuditSink] that silently discards all entries.
type NoOpSink struct{}

// Emit describes the emit operation and its observable behavior.
func (NoOpSink) Emit(context.Context, AuditLogEntry) {}

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink struct {
	entries chan AuditLogEntry
}

// NewChannelSink creates a ChannelSink with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{entries: make(chan AuditLogEntry, buffer)}
}

// Emit delivers entry to the channel, giving up when ctx is done.
func (s *ChannelSink) Emit(ctx context.Context, entry AuditLogEntry) {
	select {
	case s.entries <- entry:
	case <-ctx.Done():
	}
}

// Entries exposes the delivery channel for consumers.
func (s *ChannelSink) Entries() <-chan AuditLogEntry {
	return s.entries
}

// JSONWriterSink writes one JSON-encoded entry per line to an io.Writer.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink creates a JSONWriterSink that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{writer: w}
}

// Emit writes entry as a single JSON line. Encoding or write failures are
// dropped; the sink never disturbs the operation that produced the entry.
func (s *JSONWriterSink) Emit(_ context.Context, entry AuditLogEntry) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
