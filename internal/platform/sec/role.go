// Copyright (c) 2026 Vocably. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Can manage lessons, vocabulary, and other accounts
	RoleAdmin UserRole = "admin"

	// Default role for registered learners
	RoleUser UserRole = "user"
)

// # Role Matching

// Is reports whether the role equals the target role exactly.
//
// Route guards match roles exactly rather than hierarchically: an admin
// account is rejected from user-only routes and vice versa. Learner-facing
// routes and management routes are fully disjoint surfaces.
func (r UserRole) Is(target UserRole) bool {
	return r == target
}

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
