package security

import "timetable-app/internal/domain/users"

// SessionContext carries the authenticated actor, their currently selected
// academic session and the authority bound to it. A nil context (or a
// context without an authority) represents an anonymous request.
type SessionContext struct {
	User      *users.User
	SessionID uint
	Authority *Authority
}

func (c *SessionContext) HasUser() bool {
	return c != nil && c.User != nil
}

func (c *SessionContext) HasRight(r Right) bool {
	if c == nil {
		return false
	}
	return c.Authority.HasRight(r)
}

func (c *SessionContext) HasDepartment(departmentID uint) bool {
	if c == nil {
		return false
	}
	return c.Authority.HasDepartment(departmentID)
}

// WithSession returns a derived context re-bound to another session and the
// authority the actor holds there. The receiver is never mutated; repeated
// derivations from the same context are independent.
func (c *SessionContext) WithSession(sessionID uint, authority *Authority) *SessionContext {
	if c == nil {
		return nil
	}
	return &SessionContext{
		User:      c.User,
		SessionID: sessionID,
		Authority: authority,
	}
}
