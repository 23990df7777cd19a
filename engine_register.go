package congsec

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Register admits a new account.
//
// The very first registrant is promoted unconditionally: fixed master id,
// RoleAdminPrincipal, elder privilege, active and verified, no
// confirmation email. Every later candidate enters RoleUser in PENDENTE
// state and receives a confirmation email; a mail failure is audited but
// never rolls the account back. The record is persisted before dispatch
// and EmailSent in the result carries the outcome.
func (e *Engine) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if e == nil || e.records == nil || e.hasher == nil || e.mailer == nil {
		return nil, ErrEngineNotReady
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrRegistrationInvalid
	}

	users, err := e.records.Users(ctx)
	if err != nil {
		return nil, err
	}

	first := len(users) == 0
	id := strings.TrimSpace(req.ID)
	if first {
		id = e.config.Account.AdminMasterID
	} else if id == "" {
		return nil, ErrRegistrationInvalid
	}

	for i := range users {
		if users[i].ID == id || strings.EqualFold(users[i].Email, email) {
			return nil, ErrAccountExists
		}
	}

	hash, err := e.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistrationInvalid, err)
	}

	privilege := req.Privilege
	if privilege == "" {
		privilege = PrivilegeMember
	}

	user := User{
		ID:              id,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhotoURL:        req.PhotoURL,
		Email:           email,
		PasswordHash:    hash,
		IsEmailVerified: false,
		Phone:           req.Phone,
		Congregation:    req.Congregation,
		Gender:          req.Gender,
		Privilege:       privilege,
		Status:          StatusPending,
		Role:            RoleUser,
		CreatedAt:       e.clock().UTC().Format(time.RFC3339),
	}
	if first {
		user.Role = RoleAdminPrincipal
		user.Privilege = PrivilegeElder
		user.Status = StatusActive
		user.IsEmailVerified = true
	}

	users = append(users, user)
	if err := e.records.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	emailSent := true
	if !first {
		if mailErr := e.mailer.SendConfirmationEmail(ctx, user); mailErr != nil {
			emailSent = false
			e.appendAudit(ctx, AuditRegistrationEmailFailed, user.ID, mailErr.Error(), nil)
			e.metricInc(MetricRegistrationEmailFailed)
		} else {
			e.appendAudit(ctx, AuditRegistrationEmailSent, user.ID, "", nil)
		}
	}

	e.metricInc(MetricRegistrationSuccess)
	return &RegisterResult{UserID: user.ID, Role: user.Role, EmailSent: emailSent}, nil
}
