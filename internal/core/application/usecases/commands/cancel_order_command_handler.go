package commands

import (
	"context"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/order"
	"pizzadelivery/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a pending order. Staff may cancel any
// order; a customer only their own. Cancelling a non-pending order fails
// with a conflict and leaves the status untouched.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, enforces ownership, and cancels it.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByToken(ctx, cmd.OrderToken())
	if err != nil {
		return nil, err
	}

	if cmd.Actor().Role == identity.RoleCustomer && !aggregate.IsOwnedBy(cmd.Actor().UserID) {
		return nil, errs.NewForbiddenError("not your order")
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
