package congsec

import (
	"context"
	"testing"
)

func TestRequestPasswordReset_ExactMatchTransitionsStatus(t *testing.T) {
	rig := newTestRig(t)
	rig.registerAdmin(t)
	member := rig.registerMember(t, "USR-0002", "bruno@example.com")
	ctx := context.Background()

	matched, err := rig.engine.RequestPasswordReset(ctx, "bruno@example.com", member.UserID)
	if err != nil {
		t.Fatalf("reset request: %v", err)
	}
	if !matched {
		t.Fatal("expected a match")
	}

	if got := rig.userByID(t, member.UserID).Status; got != StatusPendingReset {
		t.Fatalf("expected PENDENTE_REDEFINIÇÃO, got %s", got)
	}

	actions := rig.auditActions(t)
	if len(actions) == 0 || actions[0] != AuditPasswordResetRequested {
		t.Fatalf("expected PEDIDO_REDEFINICAO at head, got %v", actions)
	}
}

func TestRequestPasswordReset_MismatchIsNoOp(t *testing.T) {
	rig := newTestRig(t)
	admin := rig.registerAdmin(t)
	member := rig.registerMember(t, "USR-0002", "bruno@example.com")
	ctx := context.Background()

	// Email of one user paired with the id of another must not match.
	matched, err := rig.engine.RequestPasswordReset(ctx, "ana@example.com", member.UserID)
	if err != nil {
		t.Fatalf("reset request: %v", err)
	}
	if matched {
		t.Fatal("cross-user pair must not match")
	}

	if got := rig.userByID(t, admin.UserID).Status; got != StatusActive {
		t.Fatalf("admin status changed to %s", got)
	}
	if got := rig.userByID(t, member.UserID).Status; got != StatusPending {
		t.Fatalf("member status changed to %s", got)
	}
}

func TestRequestPasswordReset_EmailIsCaseSensitive(t *testing.T) {
	rig := newTestRig(t)
	rig.registerAdmin(t)
	member := rig.registerMember(t, "USR-0002", "bruno@example.com")

	// The stored email is lowercase; the match is exact, not normalized.
	matched, err := rig.engine.RequestPasswordReset(context.Background(), "BRUNO@example.com", member.UserID)
	if err != nil {
		t.Fatalf("reset request: %v", err)
	}
	if matched {
		t.Fatal("expected exact-match semantics to reject a cased email")
	}
}

func TestRequestPasswordReset_UnknownUser(t *testing.T) {
	rig := newTestRig(t)
	rig.registerAdmin(t)

	matched, err := rig.engine.RequestPasswordReset(context.Background(), "ghost@example.com", "USR-9999")
	if err != nil {
		t.Fatalf("reset request: %v", err)
	}
	if matched {
		t.Fatal("expected no match for unknown user")
	}
}
