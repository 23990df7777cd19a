package congsec

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// User-facing rejection messages, exactly as the client UI displays them.
const (
	msgResendNotFound  = "E-mail não encontrado no sistema institucional."
	msgResendApproved  = "Este cadastro já foi aprovado."
	msgResendBadStatus = "Status da conta inválido para reenvio."
	msgResendMailError = "Erro ao reenviar e-mail. Tente mais tarde."
)

// ResendEmail re-dispatches the confirmation email for a pending account,
// bounded by a rolling quota. The identifier matches an email compared
// lowercased or a user id compared uppercased.
//
// Plain validation misses (unknown identifier, already approved, wrong
// state) return a structured rejection without touching state or the
// audit trail. A quota rejection is audited. Counters advance only after
// the mail collaborator accepts the message; a dispatch failure leaves
// the throttle state exactly as it was.
func (e *Engine) ResendEmail(ctx context.Context, identifier string) (ResendResult, error) {
	if e == nil || e.records == nil || e.mailer == nil {
		return ResendResult{}, ErrEngineNotReady
	}

	users, err := e.records.Users(ctx)
	if err != nil {
		return ResendResult{}, err
	}

	target := strings.TrimSpace(identifier)
	idx := -1
	for i := range users {
		if users[i].Email == strings.ToLower(target) || users[i].ID == strings.ToUpper(target) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ResendResult{Message: msgResendNotFound}, nil
	}

	user := users[idx]
	if user.IsEmailVerified || user.Status == StatusActive {
		return ResendResult{Message: msgResendApproved}, nil
	}
	if user.Status != StatusPending {
		return ResendResult{Message: msgResendBadStatus}, nil
	}

	now := e.clock()
	count := user.EmailResendCount
	if last, ok := user.LastResendTime(); !ok || now.Sub(last) >= e.config.Resend.Window {
		count = 0
	}

	quota := e.config.Resend.MaxPerWindow
	if count >= quota {
		e.appendAudit(ctx, AuditResendQuotaBlocked, user.ID,
			fmt.Sprintf("Limite de %d tentativas atingido.", quota), nil)
		e.metricInc(MetricEmailResendBlocked)
		return ResendResult{
			Message: fmt.Sprintf("Limite atingido (Máximo %d reenvios por %dh).", quota, int(e.config.Resend.Window.Hours())),
		}, nil
	}

	if mailErr := e.mailer.ResendConfirmationEmail(ctx, user); mailErr != nil {
		e.appendAudit(ctx, AuditResendError, user.ID, mailErr.Error(), nil)
		e.metricInc(MetricEmailResendError)
		return ResendResult{Message: msgResendMailError}, nil
	}

	user.EmailResendCount = count + 1
	user.LastEmailResendAt = now.UTC().Format(time.RFC3339)
	users[idx] = user
	if err := e.records.SaveUsers(ctx, users); err != nil {
		return ResendResult{}, err
	}

	e.appendAudit(ctx, AuditResendSuccess, user.ID, "", nil)
	e.metricInc(MetricEmailResendSuccess)
	return ResendResult{Success: true, Message: "Reenvio realizado para " + user.Email + "."}, nil
}
