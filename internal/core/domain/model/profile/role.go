package profile

import (
	"fmt"

	"laundromart/internal/pkg/errs"
)

// Role is the tagged variant that drives the permission check at the boundary
// of every lifecycle operation. A profile's role is assigned at signup and is
// immutable afterwards.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Customer places orders and sees only their own.
	Customer

	// Driver claims approved orders and advances them to delivery.
	Driver

	// Admin gatekeeps pending orders and sees everything.
	Admin
)

// getRoleStrings returns a map of Role values to their wire names.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		Customer:    "customer",
		Driver:      "driver",
		Admin:       "admin",
	}
}

// RoleFromString parses the wire representation of a role.
// Returns an error for unknown strings.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != Customer && r != Driver && r != Admin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
