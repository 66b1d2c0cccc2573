package identity_test

import (
	"testing"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want identity.Role
	}{
		{"CUSTOMER", identity.RoleCustomer},
		{"ADMIN", identity.RoleAdmin},
		{"STAFF", identity.RoleStaff},
		{"DELIVERY", identity.RoleDelivery},
	} {
		role, err := identity.ParseRole(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, role)
		assert.Equal(t, tc.in, role.String())
	}
}

func TestParseRole_Unknown(t *testing.T) {
	_, err := identity.ParseRole("customer")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = identity.ParseRole("")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, identity.RoleStaff.Validate())
	require.Error(t, identity.RoleUnknown.Validate())
	require.Error(t, identity.Role(99).Validate())
}

func TestClaims_Validate(t *testing.T) {
	valid := identity.Claims{Subject: "user@example.com", UserID: 7, Username: "user", Role: identity.RoleCustomer}
	require.NoError(t, valid.Validate())

	noSubject := valid
	noSubject.Subject = ""
	require.ErrorIs(t, noSubject.Validate(), errs.ErrValueIsRequired)

	noUser := valid
	noUser.UserID = 0
	require.ErrorIs(t, noUser.Validate(), errs.ErrValueIsRequired)

	badRole := valid
	badRole.Role = identity.RoleUnknown
	require.ErrorIs(t, badRole.Validate(), errs.ErrValueIsInvalid)
}

func TestAllowed(t *testing.T) {
	// Status transitions are restricted to staff and delivery agents.
	assert.True(t, identity.Allowed(identity.OpOrderSetStatus, identity.RoleStaff))
	assert.True(t, identity.Allowed(identity.OpOrderSetStatus, identity.RoleDelivery))
	assert.False(t, identity.Allowed(identity.OpOrderSetStatus, identity.RoleCustomer))
	assert.False(t, identity.Allowed(identity.OpOrderSetStatus, identity.RoleAdmin))

	// Cancellation is owner-or-staff; ownership is enforced by the handler.
	assert.True(t, identity.Allowed(identity.OpOrderCancel, identity.RoleCustomer))
	assert.True(t, identity.Allowed(identity.OpOrderCancel, identity.RoleStaff))
	assert.False(t, identity.Allowed(identity.OpOrderCancel, identity.RoleDelivery))

	// Assignment and explicit delivery creation are admin/staff paths.
	assert.True(t, identity.Allowed(identity.OpDeliveryAssign, identity.RoleAdmin))
	assert.True(t, identity.Allowed(identity.OpDeliveryAssign, identity.RoleStaff))
	assert.False(t, identity.Allowed(identity.OpDeliveryAssign, identity.RoleDelivery))

	assert.True(t, identity.Allowed(identity.OpDeliveryUpdateStatus, identity.RoleDelivery))
	assert.False(t, identity.Allowed(identity.OpDeliveryUpdateStatus, identity.RoleStaff))

	// Unknown operations and roles are denied.
	assert.False(t, identity.Allowed(identity.Operation("nope"), identity.RoleAdmin))
	assert.False(t, identity.Allowed(identity.OpOrderCreate, identity.RoleUnknown))
}
