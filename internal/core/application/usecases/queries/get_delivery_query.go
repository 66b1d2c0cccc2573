package queries

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"
	"pizzadelivery/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryByIDQuery or NewGetDeliveryByTokenQuery constructor",
)

// GetDeliveryQuery retrieves one delivery either by sequence id or by public
// token. The API path carries a single identifier segment; the HTTP layer
// decides which constructor to call from its shape.
type GetDeliveryQuery struct {
	deliveryID int64
	token      kernel.UUID
	byToken    bool

	guard guard.ConstructorGuard
}

// NewGetDeliveryByIDQuery builds the lookup by sequence id.
func NewGetDeliveryByIDQuery(deliveryID int64) (GetDeliveryQuery, error) {
	if deliveryID <= 0 {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredError("deliveryID")
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetDeliveryByTokenQuery builds the lookup by public token.
func NewGetDeliveryByTokenQuery(token kernel.UUID) (GetDeliveryQuery, error) {
	if err := token.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		token:   token,
		byToken: true,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// ByToken reports whether the lookup goes through the public token.
func (q GetDeliveryQuery) ByToken() bool {
	return q.byToken
}

// DeliveryID returns the sequence id for an id lookup.
func (q GetDeliveryQuery) DeliveryID() int64 {
	return q.deliveryID
}

// Token returns the token for a token lookup.
func (q GetDeliveryQuery) Token() kernel.UUID {
	return q.token
}
