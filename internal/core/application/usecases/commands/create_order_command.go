package commands

import (
	"errors"
	"fmt"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/pkg/errs"
	"pizzadelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested (item, quantity) pair before pricing.
type OrderItemInput struct {
	ItemID   int64
	Quantity int
}

// CreateOrderCommand carries everything the creation saga needs: the
// authenticated caller, their bearer token (forwarded to the catalog
// service), the target location, and the requested items.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor           identity.Claims
	bearerToken     string
	locationCode    string
	items           []OrderItemInput
	deliveryAddress *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape: a valid caller, a
// non-empty location code, and at least one item with a positive quantity.
// Pricing and location existence are the handler's concern.
func NewCreateOrderCommand(
	actor identity.Claims,
	bearerToken string,
	locationCode string,
	items []OrderItemInput,
	deliveryAddress *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBearerToken(bearerToken),
		cmd.setLocationCode(locationCode),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CreateOrderCommand) Actor() identity.Claims {
	return c.actor
}

// BearerToken returns the caller's token, forwarded on downstream calls.
func (c CreateOrderCommand) BearerToken() string {
	return c.bearerToken
}

// LocationCode returns the requested outlet location code.
func (c CreateOrderCommand) LocationCode() string {
	return c.locationCode
}

// Items returns the requested items in order.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// DeliveryAddress returns the optional free-text address.
func (c CreateOrderCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setActor(actor identity.Claims) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setBearerToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("bearer token")
	}
	c.bearerToken = token
	return nil
}

func (c *CreateOrderCommand) setLocationCode(locationCode string) error {
	if locationCode == "" {
		return errs.NewValueIsRequiredError("location_code")
	}
	c.locationCode = locationCode
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.ItemID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("item_id", fmt.Errorf("%d is not a valid item identifier", item.ItemID))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	c.items = items
	return nil
}
