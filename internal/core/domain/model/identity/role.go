// Package identity models the transient identity assertion attached to a
// request after the delegation filter has validated its bearer token, the
// closed set of roles the identity authority issues, and the declarative
// table mapping each operation to the roles allowed to perform it.
//
// Nothing in this package is persisted; claims are recomputed per request.
package identity

import (
	"fmt"

	"pizzadelivery/internal/pkg/errs"
)

// Role is the closed enumeration of roles carried in bearer tokens.
// Role checks throughout the application go through this type rather than
// raw string comparison.
type Role int

const (
	// RoleUnknown catches uninitialized or unrecognized role values.
	RoleUnknown Role = iota

	RoleCustomer
	RoleAdmin
	RoleStaff
	RoleDelivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleAdmin:    "ADMIN",
		RoleStaff:    "STAFF",
		RoleDelivery: "DELIVERY",
	}
}

// ParseRole maps the authority's wire representation onto the enum.
// Unrecognized values are invalid rather than silently mapped to a default.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
