package ports

import (
	"context"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository persists the Delivery aggregate. Add must surface a
// Conflict error when a delivery already exists for the same order token, so
// the event consumer can treat duplicate events as a benign no-op.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	GetByID(ctx context.Context, id int64) (*delivery.Delivery, error)
	GetByToken(ctx context.Context, token kernel.UUID) (*delivery.Delivery, error)
	GetByOrderToken(ctx context.Context, orderToken kernel.UUID) (*delivery.Delivery, error)
	Delete(ctx context.Context, id int64) error
}
