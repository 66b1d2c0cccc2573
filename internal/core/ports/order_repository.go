// Package ports defines the interfaces the application core expects its
// adapters to implement: repositories and the unit of work over the two
// relational stores, the downstream service clients, and the fulfillment
// event publisher.
package ports

import (
	"context"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"
)

// OrderRepository persists the Order aggregate. Add stores the order together
// with all its lines in one atomic write.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	GetByID(ctx context.Context, id int64) (*order.Order, error)
	GetByToken(ctx context.Context, token kernel.UUID) (*order.Order, error)
	// Delete removes the order and cascades to its lines.
	Delete(ctx context.Context, id int64) error
}
