package congsec

import "context"

// UserUpdate is a partial mutation applied by [Engine.UpdateUser]. Nil
// fields are left untouched.
//
// Role is deliberately absent: RoleAdminPrincipal belongs permanently to
// the first registrant and no operation in this core may reassign or
// strip any role.
type UserUpdate struct {
	FirstName       *string
	LastName        *string
	PhotoURL        *string
	Phone           *string
	Congregation    *string
	Gender          *Gender
	Privilege       *Privilege
	Status          *AccountStatus
	IsEmailVerified *bool
}

// UpdateUser applies a privileged partial mutation to the user with the
// given id and audits it as USER_UPDATE attributed to the context actor.
// This is the generic administrative path for status toggles, privilege
// changes, and verification overrides.
func (e *Engine) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*User, error) {
	if e == nil || e.records == nil {
		return nil, ErrEngineNotReady
	}

	users, err := e.records.Users(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrUserNotFound
	}

	user := users[idx]
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.PhotoURL != nil {
		user.PhotoURL = *update.PhotoURL
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Congregation != nil {
		user.Congregation = *update.Congregation
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.Privilege != nil {
		user.Privilege = *update.Privilege
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	if update.IsEmailVerified != nil {
		user.IsEmailVerified = *update.IsEmailVerified
	}

	users[idx] = user
	if err := e.records.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	e.appendAudit(ctx, AuditUserUpdated, userID, "", nil)
	e.metricInc(MetricUserUpdate)
	return &user, nil
}
