// Package commands contains the write-side operations of both services.
// Every command follows the same pattern: a constructor-guarded command
// object validated on creation, and a handler that coordinates downstream
// calls, domain logic, and persistence.
//
// Role gates are enforced at the request boundary against the declarative
// permission table; handlers re-check only the rules that need data, such as
// ownership and agent matching.
package commands

import (
	"context"

	"pizzadelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for order-side
// command handlers. The delivery store needs no unit of work: every delivery
// mutation is a single-row write.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order aggregate operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
