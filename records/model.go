package records

import (
	"strings"
	"time"
)

// AccountStatus is the lifecycle state of a user account. The values are
// the exact strings persisted in existing database blobs, so records
// round-trip unchanged.
type AccountStatus string

const (
	// StatusPending marks an account awaiting email confirmation.
	StatusPending AccountStatus = "PENDENTE"
	// StatusActive marks an account cleared for login.
	StatusActive AccountStatus = "ATIVO"
	// StatusInactive marks an account suspended by an administrator.
	StatusInactive AccountStatus = "INATIVO"
	// StatusBlocked marks an account barred from every flow.
	StatusBlocked AccountStatus = "BLOQUEADO"
	// StatusPendingReset marks an account that requested a password reset.
	StatusPendingReset AccountStatus = "PENDENTE_REDEFINIÇÃO"
)

// UserRole governs administrative capability. Role and Privilege are
// independent axes: role is what a user may administer, privilege is the
// user's congregational standing.
type UserRole string

const (
	// RoleAdminPrincipal is held by exactly one user, the first-ever
	// registrant. No operation in this module removes or reassigns it.
	RoleAdminPrincipal UserRole = "ADMIN_PRINCIPAL"
	// RoleAdminSectorial is a delegated administrative role.
	RoleAdminSectorial UserRole = "ADMIN_SETORIAL"
	// RoleUser is the default role for every later registrant.
	RoleUser UserRole = "USER"
)

// Privilege is the congregational standing of a user.
type Privilege string

const (
	// PrivilegeElder is an exported constant used by the security engine.
	PrivilegeElder Privilege = "Ancião"
	// PrivilegeMinisterialServant is an exported constant used by the security engine.
	PrivilegeMinisterialServant Privilege = "Servo Ministerial"
	// PrivilegePublisher is an exported constant used by the security engine.
	PrivilegePublisher Privilege = "Publicador"
	// PrivilegeMember is an exported constant used by the security engine.
	PrivilegeMember Privilege = "Irmão / Irmã"
)

// Gender is carried through the record untouched by the security flows.
type Gender string

const (
	// GenderMale is an exported constant used by the security engine.
	GenderMale Gender = "Masculino"
	// GenderFemale is an exported constant used by the security engine.
	GenderFemale Gender = "Feminino"
)

// User is the full account record persisted in the database blob.
//
// PasswordHash holds an Argon2id PHC string. The JSON field name stays
// "password" so blobs written by earlier releases keep decoding; the
// plaintext itself is never stored.
type User struct {
	ID              string        `json:"id"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	PhotoURL        string        `json:"photoUrl,omitempty"`
	Email           string        `json:"email"`
	PasswordHash    string        `json:"password,omitempty"`
	IsEmailVerified bool          `json:"isEmailVerified"`
	LoginAttempts   int           `json:"loginAttempts"`
	LockedUntil     int64         `json:"lockedUntil,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Congregation    string        `json:"congregation,omitempty"`
	Gender          Gender        `json:"gender,omitempty"`
	Privilege       Privilege     `json:"privilege"`
	Status          AccountStatus `json:"status"`
	Role            UserRole      `json:"role"`
	CreatedAt       string        `json:"createdAt"`

	EmailResendCount  int    `json:"emailResendCount,omitempty"`
	LastEmailResendAt string `json:"lastEmailResendAt,omitempty"`
}

// FullName joins first and last name for audit attribution.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// LockedAt reports whether the account lockout window covers now.
// LockedUntil is epoch milliseconds, matching the persisted format.
func (u User) LockedAt(now time.Time) bool {
	return u.LockedUntil > 0 && now.UnixMilli() < u.LockedUntil
}

// LastResendTime parses LastEmailResendAt. ok is false when no resend was
// ever recorded or the stored value does not parse; both mean the rolling
// window starts fresh.
func (u User) LastResendTime() (time.Time, bool) {
	if u.LastEmailResendAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, u.LastEmailResendAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AuditAction is the closed enumeration of security-relevant actions. The
// wire values match the tags found in existing trails, minus the
// interpolated suffixes: target ids and reasons travel in the entry's
// TargetID and Details fields instead.
type AuditAction string

const (
	// AuditLoginSuccess records a completed login.
	AuditLoginSuccess AuditAction = "LOGIN_SUCCESS"
	// AuditLogout records an explicit or forced logout; Details carries the reason.
	AuditLogout AuditAction = "LOGOUT"
	// AuditRegistrationEmailSent records a dispatched confirmation email.
	AuditRegistrationEmailSent AuditAction = "EMAIL_CADASTRO_ENVIADO"
	// AuditRegistrationEmailFailed records a failed confirmation dispatch.
	AuditRegistrationEmailFailed AuditAction = "FALHA_ENVIO_EMAIL_CADASTRO"
	// AuditResendQuotaBlocked records a resend rejected by the rolling quota.
	AuditResendQuotaBlocked AuditAction = "BLOQUEIO_REENVIO_COTA"
	// AuditResendSuccess records a permitted confirmation resend.
	AuditResendSuccess AuditAction = "REENVIO_EMAIL_SUCESSO"
	// AuditResendError records a resend the mail collaborator failed to deliver.
	AuditResendError AuditAction = "REENVIO_EMAIL_ERRO"
	// AuditPasswordResetRequested records a matched password-reset request.
	AuditPasswordResetRequested AuditAction = "PEDIDO_REDEFINICAO"
	// AuditUserUpdated records a privileged partial user mutation.
	AuditUserUpdated AuditAction = "USER_UPDATE"
)

// System sentinel identity for audit entries with no authenticated actor.
const (
	SystemActorID   = "SISTEMA"
	SystemActorName = "System"
)

// AuditLogEntry is one immutable line of the append-only audit trail.
// IDs are UUIDv7-based, monotonic by creation time.
type AuditLogEntry struct {
	ID        string      `json:"id"`
	AdminID   string      `json:"adminId"`
	AdminName string      `json:"adminName"`
	Action    AuditAction `json:"action"`
	TargetID  string      `json:"targetId,omitempty"`
	Timestamp string      `json:"timestamp"`
	Details   string      `json:"details,omitempty"`
}

// Database is the decoded view of the security-relevant slice of the
// database blob. Collections the engine never touches stay raw in the
// blob and are not represented here.
type Database struct {
	Users     []User
	AuditLogs []AuditLogEntry
}

// FindByID returns the index of the user with the given id, or -1.
func (d Database) FindByID(id string) int {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByIdentifier resolves a user by exact id or exact email, the login
// guard's lookup contract. Returns -1 when nothing matches; callers treat
// that as a silent no-op so probing reveals nothing.
func (d Database) FindByIdentifier(identifier string) int {
	for i := range d.Users {
		if d.Users[i].ID == identifier || d.Users[i].Email == identifier {
			return i
		}
	}
	return -1
}
