package model

import "time"

// Role describes what a session is allowed to do.
type Role string

const (
	// RolePlayer may browse dashboards, listings and statistics.
	RolePlayer Role = "spieler"
	// RoleTreasurer ("Kassier") may additionally create and delete ledger
	// entries and manage reference data.
	RoleTreasurer Role = "kassier"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleTreasurer
}

// Session is the ephemeral per-login state. It lives only in the session
// store, is created at login and removed at logout or expiry; it is not a
// security boundary.
type Session struct {
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsTreasurer reports whether the session holds the treasurer role.
func (s *Session) IsTreasurer() bool {
	return s != nil && s.Role == RoleTreasurer
}
