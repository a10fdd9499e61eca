package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of adapter concerns.

import "time"

// Role represents an application's authorization role.
// Kept in string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the resolved user record behind a valid bearer token,
// as returned by the booking API's /auth/me endpoint. It is immutable
// for the lifetime of a session; a new resolution replaces it wholesale.
type Identity struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Role maps the API's admin flag onto an application role.
func (i Identity) Role() Role {
	if i.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Session is the server-side record kept for one browser profile.
// ID is an opaque session identifier carried in the session cookie.
// Token is the bearer credential issued by the booking API; it carries no
// local expiry metadata and is trusted until an identity fetch with it
// fails. ExpiresAt bounds how long the record itself is retained.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin returns true if the session belongs to an admin identity.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Identity reconstructs the identity cached on the session.
func (s Session) Identity() Identity {
	return Identity{ID: s.UserID, Email: s.Email, IsAdmin: s.Role == RoleAdmin}
}
