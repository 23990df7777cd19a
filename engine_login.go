package congsec

import (
	"context"
	"time"
)

// Login authenticates identifier (exact user id or email) against the
// stored password hash and, on success, resets the failure counters,
// issues the session, and audits LOGIN_SUCCESS.
//
// A locked account is rejected before the password is examined and the
// attempt does not advance the counter. An unknown identifier fails with
// the same ErrInvalidCredentials as a wrong password, so probing reveals
// nothing about which accounts exist.
func (e *Engine) Login(ctx context.Context, identifier, passphrase string) (*LoginResult, error) {
	if e == nil || e.records == nil || e.sessions == nil || e.hasher == nil {
		return nil, ErrEngineNotReady
	}

	db, err := e.records.Database(ctx)
	if err != nil {
		return nil, err
	}

	idx := db.FindByIdentifier(identifier)
	if idx < 0 || passphrase == "" {
		e.metricInc(MetricLoginFailure)
		return nil, ErrInvalidCredentials
	}

	user := db.Users[idx]
	now := e.clock()
	if user.LockedAt(now) {
		e.metricInc(MetricLoginLockout)
		return nil, ErrAccountLocked
	}

	ok, verr := e.hasher.Verify(passphrase, user.PasswordHash)
	if verr != nil || !ok {
		if err := e.recordFailure(ctx, db.Users, idx, now); err != nil {
			return nil, err
		}
		e.metricInc(MetricLoginFailure)
		return nil, ErrInvalidCredentials
	}

	if user.Status != StatusActive && user.Role != RoleAdminPrincipal {
		e.metricInc(MetricLoginFailure)
		return nil, accountStatusToError(user.Status)
	}

	user.LoginAttempts = 0
	user.LockedUntil = 0
	db.Users[idx] = user
	if err := e.records.SaveUsers(ctx, db.Users); err != nil {
		return nil, err
	}

	sess, err := e.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	e.appendAudit(ctx, AuditLoginSuccess, user.ID, "", &user)
	e.metricInc(MetricLoginSuccess)
	return &LoginResult{User: user, Session: sess}, nil
}

// RecordFailedLogin advances the failed-attempt counter for identifier
// (exact id or email). An identifier that resolves to nothing is a silent
// no-op: the contract tolerates probing without revealing existence.
func (e *Engine) RecordFailedLogin(ctx context.Context, identifier string) error {
	if e == nil || e.records == nil {
		return ErrEngineNotReady
	}

	users, err := e.records.Users(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range users {
		if users[i].ID == identifier || users[i].Email == identifier {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	return e.recordFailure(ctx, users, idx, e.clock())
}

// recordFailure increments the counter in place and escalates to a timed
// lockout once the threshold is reached. Every failure at or past the
// threshold refreshes the lockout deadline.
func (e *Engine) recordFailure(ctx context.Context, users []User, idx int, now time.Time) error {
	user := users[idx]
	user.LoginAttempts++
	if user.LoginAttempts >= e.config.Lockout.Threshold {
		user.LockedUntil = now.Add(e.config.Lockout.Duration).UnixMilli()
		e.metricInc(MetricLoginLockout)
	}
	users[idx] = user
	return e.records.SaveUsers(ctx, users)
}
