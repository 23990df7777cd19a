package congsec

import "context"

// RequestPasswordReset transitions an account to PENDENTE_REDEFINIÇÃO
// when both the email and the user id match the same record exactly. On a
// mismatch it reports false and changes nothing; the caller notifies the
// user synchronously.
//
// The state transition is the full contract: no reset token or expiry is
// modeled here, the principal administrator completes the reset through
// [Engine.UpdateUser].
func (e *Engine) RequestPasswordReset(ctx context.Context, email, userID string) (bool, error) {
	if e == nil || e.records == nil {
		return false, ErrEngineNotReady
	}

	users, err := e.records.Users(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i := range users {
		if users[i].Email == email && users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	users[idx].Status = StatusPendingReset
	if err := e.records.SaveUsers(ctx, users); err != nil {
		return false, err
	}

	e.appendAudit(ctx, AuditPasswordResetRequested, userID, "", nil)
	e.metricInc(MetricPasswordResetRequest)
	return true, nil
}
