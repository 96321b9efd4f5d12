// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Operator Roles

// UserRole represents the authorization level carried by a token.
type UserRole string

const (
	// Unrestricted access, including future dataset management endpoints
	RoleAdmin UserRole = "admin"

	// Can read usage statistics
	RoleOperator UserRole = "operator"

	// Plain API consumer; lookups need no token at all
	RoleReader UserRole = "reader"
)

// Roles lists the known roles from most to least privileged.
var Roles = []UserRole{RoleAdmin, RoleOperator, RoleReader}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// Valid reports whether r is one of [Roles].
func (r UserRole) Valid() bool {
	return r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleOperator:
		return 20
	case RoleReader:
		return 10
	default:
		return 0
	}
}
