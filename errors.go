package congsec

import (
	"errors"

	"github.com/ajjmtutorial-wq/minha-congregacao-app/records"
)

var (
	// ErrEngineNotReady is an exported constant or variable used by the security engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrInvalidCredentials is an exported constant or variable used by the security engine.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is an exported constant or variable used by the security engine.
	ErrUserNotFound = errors.New("user not found")
	// ErrAccountLocked is an exported constant or variable used by the security engine.
	ErrAccountLocked = errors.New("account locked")
	// ErrAccountPending is an exported constant or variable used by the security engine.
	ErrAccountPending = errors.New("account pending verification")
	// ErrAccountInactive is an exported constant or variable used by the security engine.
	ErrAccountInactive = errors.New("account inactive")
	// ErrAccountBlocked is an exported constant or variable used by the security engine.
	ErrAccountBlocked = errors.New("account blocked")
	// ErrAccountPendingReset is an exported constant or variable used by the security engine.
	ErrAccountPendingReset = errors.New("account awaiting password reset")
	// ErrAccountExists is an exported constant or variable used by the security engine.
	ErrAccountExists = errors.New("account already exists")
	// ErrRegistrationInvalid is an exported constant or variable used by the security engine.
	ErrRegistrationInvalid = errors.New("invalid registration request")
	// ErrSessionNotFound is an exported constant or variable used by the security engine.
	ErrSessionNotFound = errors.New("no active session")
	// ErrSessionExpired is an exported constant or variable used by the security engine.
	ErrSessionExpired = errors.New("session expired")
	// ErrSessionInvalid is an exported constant or variable used by the security engine.
	ErrSessionInvalid = errors.New("session invalid")
	// ErrStoreUnavailable is an exported constant or variable used by the security engine.
	// Store errors from every operation unwrap to it.
	ErrStoreUnavailable = records.ErrUnavailable
)

// accountStatusToError maps a non-loginable account status to its
// sentinel. Active accounts map to nil.
func accountStatusToError(status AccountStatus) error {
	switch status {
	case StatusActive:
		return nil
	case StatusPending:
		return ErrAccountPending
	case StatusInactive:
		return ErrAccountInactive
	case StatusBlocked:
		return ErrAccountBlocked
	case StatusPendingReset:
		return ErrAccountPendingReset
	default:
		return ErrAccountInactive
	}
}
