package congsec

import (
	"context"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/records"
	"github.com/ajjmtutorial-wq/minha-congregacao-app/session"
)

// User is the full account record persisted in the database blob.
type User = records.User

// AccountStatus is the lifecycle state of a user account.
type AccountStatus = records.AccountStatus

// UserRole governs administrative capability.
type UserRole = records.UserRole

// Privilege is the congregational standing of a user, independent of role.
type Privilege = records.Privilege

// Gender is carried through the record untouched by the security flows.
type Gender = records.Gender

// AuditLogEntry is one immutable line of the append-only audit trail.
type AuditLogEntry = records.AuditLogEntry

// AuditAction is the closed enumeration of audited action kinds.
type AuditAction = records.AuditAction

// Session binds a logged-in user to a device for a 24-hour window.
type Session = session.Session

// BlobStore is the persistence boundary the engine writes through. Use
// [records.NewRedisBlobStore] or supply any durable keyed implementation.
type BlobStore = records.BlobStore

const (
	// StatusPending is an exported constant used by the security engine.
	StatusPending = records.StatusPending
	// StatusActive is an exported constant used by the security engine.
	StatusActive = records.StatusActive
	// StatusInactive is an exported constant used by the security engine.
	StatusInactive = records.StatusInactive
	// StatusBlocked is an exported constant used by the security engine.
	StatusBlocked = records.StatusBlocked
	// StatusPendingReset is an exported constant used by the security engine.
	StatusPendingReset = records.StatusPendingReset

	// RoleAdminPrincipal is held by exactly one user, the first registrant.
	RoleAdminPrincipal = records.RoleAdminPrincipal
	// RoleAdminSectorial is an exported constant used by the security engine.
	RoleAdminSectorial = records.RoleAdminSectorial
	// RoleUser is an exported constant used by the security engine.
	RoleUser = records.RoleUser

	// PrivilegeElder is an exported constant used by the security engine.
	PrivilegeElder = records.PrivilegeElder
	// PrivilegeMinisterialServant is an exported constant used by the security engine.
	PrivilegeMinisterialServant = records.PrivilegeMinisterialServant
	// PrivilegePublisher is an exported constant used by the security engine.
	PrivilegePublisher = records.PrivilegePublisher
	// PrivilegeMember is an exported constant used by the security engine.
	PrivilegeMember = records.PrivilegeMember

	// AuditLoginSuccess is an exported constant used by the security engine.
	AuditLoginSuccess = records.AuditLoginSuccess
	// AuditLogout is an exported constant used by the security engine.
	AuditLogout = records.AuditLogout
	// AuditRegistrationEmailSent is an exported constant used by the security engine.
	AuditRegistrationEmailSent = records.AuditRegistrationEmailSent
	// AuditRegistrationEmailFailed is an exported constant used by the security engine.
	AuditRegistrationEmailFailed = records.AuditRegistrationEmailFailed
	// AuditResendQuotaBlocked is an exported constant used by the security engine.
	AuditResendQuotaBlocked = records.AuditResendQuotaBlocked
	// AuditResendSuccess is an exported constant used by the security engine.
	AuditResendSuccess = records.AuditResendSuccess
	// AuditResendError is an exported constant used by the security engine.
	AuditResendError = records.AuditResendError
	// AuditPasswordResetRequested is an exported constant used by the security engine.
	AuditPasswordResetRequested = records.AuditPasswordResetRequested
	// AuditUserUpdated is an exported constant used by the security engine.
	AuditUserUpdated = records.AuditUserUpdated
)

// Mailer is the mail-dispatch collaborator. A nil error means the message
// was accepted for delivery; a non-nil error is recorded in the audit
// trail and never fails the surrounding flow.
type Mailer interface {
	SendConfirmationEmail(ctx context.Context, user User) error
	ResendConfirmationEmail(ctx context.Context, user User) error
}

// LoginResult is returned by [Engine.Login]: the authenticated user with
// its counters already reset, and the freshly issued session.
type LoginResult struct {
	User    User
	Session Session
}

// RegisterRequest is the input for [Engine.Register]. ID is the
// candidate's chosen identifier; the first-ever registrant is assigned
// the fixed master id regardless.
type RegisterRequest struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Password     string
	Phone        string
	Congregation string
	PhotoURL     string
	Gender       Gender
	Privilege    Privilege
}

// RegisterResult is returned by [Engine.Register]. EmailSent is false
// when the confirmation dispatch failed; the account exists either way.
type RegisterResult struct {
	UserID    string
	Role      UserRole
	EmailSent bool
}

// ResendResult is the structured outcome of [Engine.ResendEmail].
// Validation and throttle rejections land here with Success false and a
// user-facing message; they are not errors.
type ResendResult struct {
	Success bool
	Message string
}
