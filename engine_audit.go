package congsec

import (
	"context"
	"time"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/internal"
	"github.com/ajjmtutorial-wq/minha-congregacao-app/records"
)

// appendAudit writes one entry to the durable trail and mirrors it to the
// sink dispatcher. The explicit actor wins over the context actor; with
// neither, the entry is attributed to the system sentinel.
//
// Appending never fails the operation that produced the entry: a store
// error here leaves the trail one entry behind the actual state, which
// the persistence model already tolerates across the two unrelated blob
// writes.
func (e *Engine) appendAudit(ctx context.Context, action AuditAction, targetID, details string, actor *User) AuditLogEntry {
	if actor == nil {
		actor = actorFromContext(ctx)
	}

	entry := AuditLogEntry{
		ID:        internal.NewLogID(),
		AdminID:   records.SystemActorID,
		AdminName: records.SystemActorName,
		Action:    action,
		TargetID:  targetID,
		Timestamp: e.clock().UTC().Format(time.RFC3339),
		Details:   details,
	}
	if actor != nil {
		entry.AdminID = actor.ID
		entry.AdminName = actor.FullName()
	}

	if e.records != nil {
		_ = e.records.PrependAuditLog(ctx, entry)
	}
	if e.audit != nil {
		e.audit.Emit(ctx, entry)
	}
	return entry
}
