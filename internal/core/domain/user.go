package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User is a static account defined at process start. Passwords are compared verbatim.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// DefaultUsers returns the built-in accounts.
func DefaultUsers() []User {
	return []User{
		{Username: "admin", Password: "admin123", Role: RoleAdmin},
		{Username: "viewer", Password: "viewer123", Role: RoleViewer},
	}
}

// Identity is the caller resolved from a session.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session binds an opaque token to an identity until ExpiresAt.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Identity returns the identity carried by the session.
func (s Session) Identity() Identity {
	return Identity{Username: s.Username, Role: s.Role}
}

// ExpiredAt reports whether the session is no longer valid at now.
func (s Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
