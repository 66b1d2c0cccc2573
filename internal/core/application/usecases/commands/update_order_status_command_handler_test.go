package commands_test

import (
	"testing"
	"time"

	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"
	"pizzadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(1, 1, 9.99)
	require.NoError(t, err)
	o, err := order.RestoreOrder(1, kernel.NewUUID(), 7, "NYC01", 9.99,
		status, time.Now().UTC(), nil, []order.Line{line})
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_ForwardStep(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrderIn(t, order.StatusPending)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.Token(), order.StatusConfirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByToken", ctx, aggregate.Token()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusConfirmed, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_SkippedStepConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrderIn(t, order.StatusPending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(aggregate.Token(), order.StatusDelivered)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByToken", ctx, aggregate.Token()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, order.StatusPending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	token := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(token, order.StatusConfirmed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByToken", ctx, token).
			Return(nil, errs.NewObjectNotFoundError("orderToken", token)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
