package accesspolicy

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role is the capability class of an acting user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is unrestricted back-office staff.
	RoleAdmin

	// RoleOps is warehouse-scoped operations staff: every operation must
	// touch a warehouse in the actor's assignment set.
	RoleOps

	// RoleBuyer may only act on resources belonging to their own orders
	// and cart.
	RoleBuyer

	// RoleDriver may only act on consignments they are assigned to, with a
	// further per-field write restriction.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleAdmin:   "Admin",
		RoleOps:     "Ops",
		RoleBuyer:   "Buyer",
		RoleDriver:  "Driver",
	}
}

// RoleFromString parses a role from its string form.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is one of the defined capability classes.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
