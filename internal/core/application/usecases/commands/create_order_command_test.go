package commands_test

import (
	"testing"

	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/domain/model/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	addr := "1 Main St"
	cmd, err := commands.NewCreateOrderCommand(customerClaims(), "token-abc", "NYC01",
		[]commands.OrderItemInput{{ItemID: 1, Quantity: 2}}, &addr)
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "NYC01", cmd.LocationCode())
	assert.Len(t, cmd.Items(), 1)
	require.NotNil(t, cmd.DeliveryAddress())
	assert.Equal(t, addr, *cmd.DeliveryAddress())
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		actor    identity.Claims
		bearer   string
		location string
		items    []commands.OrderItemInput
	}{
		{"missing actor", identity.Claims{}, "token-abc", "NYC01",
			[]commands.OrderItemInput{{ItemID: 1, Quantity: 1}}},
		{"missing bearer token", customerClaims(), "", "NYC01",
			[]commands.OrderItemInput{{ItemID: 1, Quantity: 1}}},
		{"missing location", customerClaims(), "token-abc", "",
			[]commands.OrderItemInput{{ItemID: 1, Quantity: 1}}},
		{"no items", customerClaims(), "token-abc", "NYC01", nil},
		{"zero quantity", customerClaims(), "token-abc", "NYC01",
			[]commands.OrderItemInput{{ItemID: 1, Quantity: 0}}},
		{"negative item id", customerClaims(), "token-abc", "NYC01",
			[]commands.OrderItemInput{{ItemID: -1, Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tt.actor, tt.bearer, tt.location, tt.items, nil)
			assert.Error(t, err)
		})
	}
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
