package congsec

import (
	"context"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/internal"
	"github.com/ajjmtutorial-wq/minha-congregacao-app/session"
)

// Forced-logout reasons recorded in the audit trail. The wire strings are
// the ones the client UI surfaces to its users.
const (
	logoutReasonManual   = "Logout Manual"
	logoutReasonExpired  = "Sessão Expirada (24h)"
	logoutReasonInactive = "Conta Inativada ou Pendente"
)

// issueSession creates and persists the sole active session for userID,
// overwriting any prior session. The device identifier comes from the
// context when the caller bound one, otherwise it is generated.
func (e *Engine) issueSession(ctx context.Context, userID string) (Session, error) {
	deviceID := deviceIDFromContext(ctx)
	if deviceID == "" {
		deviceID = internal.NewDeviceID()
	}

	sess := session.New(userID, deviceID, e.clock(), e.config.Session.TTL)
	if err := e.sessions.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	e.metricInc(MetricSessionIssued)
	return sess, nil
}

// ValidateSession runs on every application resume. It returns the user
// bound to the persisted session when that session is still authorized.
//
// Outcomes:
//   - no persisted session (or a tampered blob, which the store clears):
//     ErrSessionNotFound (not a failure, the caller shows the login screen).
//   - past the absolute deadline: the session is cleared, the forced
//     logout is audited, and ErrSessionExpired is returned.
//   - bound user no longer in the collection: ErrSessionInvalid with the
//     session left exactly as found.
//   - bound user neither ACTIVE nor the principal administrator: the
//     session is cleared, audited, and ErrAccountInactive is returned.
func (e *Engine) ValidateSession(ctx context.Context) (*User, error) {
	if e == nil || e.records == nil || e.sessions == nil {
		return nil, ErrEngineNotReady
	}

	sess, err := e.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	users, err := e.records.Users(ctx)
	if err != nil {
		return nil, err
	}

	var bound *User
	for i := range users {
		if users[i].ID == sess.UserID {
			bound = &users[i]
			break
		}
	}

	if sess.ExpiredAt(e.clock()) {
		if err := e.sessions.Delete(ctx); err != nil {
			return nil, err
		}
		e.appendAudit(ctx, AuditLogout, sess.UserID, logoutReasonExpired, bound)
		e.metricInc(MetricSessionExpired)
		return nil, ErrSessionExpired
	}

	if bound == nil {
		return nil, ErrSessionInvalid
	}

	if bound.Status != StatusActive && bound.Role != RoleAdminPrincipal {
		if err := e.sessions.Delete(ctx); err != nil {
			return nil, err
		}
		e.appendAudit(ctx, AuditLogout, bound.ID, logoutReasonInactive, bound)
		e.metricInc(MetricSessionInvalidated)
		return nil, ErrAccountInactive
	}

	user := *bound
	return &user, nil
}

// Logout revokes the active session. Revocation always succeeds against
// an absent session; the reason is audited when an actor is attached to
// ctx via [WithActor]. An empty reason records a manual logout.
func (e *Engine) Logout(ctx context.Context, reason string) error {
	if e == nil || e.sessions == nil {
		return ErrEngineNotReady
	}
	if reason == "" {
		reason = logoutReasonManual
	}

	if err := e.sessions.Delete(ctx); err != nil {
		return err
	}

	if actor := actorFromContext(ctx); actor != nil {
		e.appendAudit(ctx, AuditLogout, actor.ID, reason, actor)
	}
	e.metricInc(MetricLogout)
	return nil
}
