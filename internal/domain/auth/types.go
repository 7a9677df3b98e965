// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.
package auth

// Role represents an application's authorization role.
// Keep the backend wire form for easy persistence. Valid values are defined
// as constants below; unknown strings round-trip but grant nothing.
type Role string

const (
	RoleAdmin Role = "ROLE_ADMIN"
	RoleUser  Role = "ROLE_USER"
)

// Actor represents the authenticated identity returned by the auth service.
// Department memberships are intentionally absent: they are loaded lazily
// from the user service, never embedded in the session.
type Actor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Roles    []Role `json:"roles"`
}

// HasRole reports whether the actor carries the given role.
func (a Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the record persisted in durable client storage.
// Exactly one session is active per client process: it is created on
// successful sign-in, read once at startup to restore state, and destroyed
// on logout or forced teardown.
type Session struct {
	Actor Actor  `json:"actor"`
	Token string `json:"token"`
}

// IsAdmin reports whether the session's actor carries the admin role.
func (s Session) IsAdmin() bool { return s.Actor.HasRole(RoleAdmin) }
