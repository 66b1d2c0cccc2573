package queries

import (
	"errors"
	"time"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the status projection of one order. Staff and
// admins may check any order; a customer only their own, which the handler
// enforces against the stored customer id.
type GetOrderStatusQuery struct {
	actor      identity.Claims
	orderToken kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery validates the actor and token.
func NewGetOrderStatusQuery(actor identity.Claims, orderToken kernel.UUID) (GetOrderStatusQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}
	if err := orderToken.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		actor:      actor,
		orderToken: orderToken,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetOrderStatusQuery) Actor() identity.Claims {
	return q.actor
}

// OrderToken returns the token to look up.
func (q GetOrderStatusQuery) OrderToken() kernel.UUID {
	return q.orderToken
}

// OrderStatusResponse is the compact tracking projection.
type OrderStatusResponse struct {
	Token      kernel.UUID
	Status     string
	TotalPrice float64
	CreatedAt  time.Time
}
