package commands_test

import (
	"testing"
	"time"

	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return d
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingDelivery(t)
	cmd, err := commands.NewAssignDeliveryCommand("token-abc", aggregate.Token(), 33, delivery.StatusDispatched)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	client := new(MockIdentityClient)
	mock.InOrder(
		client.On("ValidateDeliveryAgent", ctx, "token-abc", int64(33)).Return(true, nil).Once(),
		repo.On("GetByToken", ctx, aggregate.Token()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
	)

	h, err := commands.NewAssignDeliveryCommandHandler(repo, client, discardLogger())
	require.NoError(t, err)

	assigned, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.StatusDispatched, assigned.Status())
	require.NotNil(t, assigned.AgentID())
	require.Equal(t, int64(33), *assigned.AgentID())
	require.NotNil(t, assigned.AssignedAt())
	repo.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_ReassignmentKeepsAssignedAt(t *testing.T) {
	ctx := t.Context()
	firstAssigned := time.Now().UTC().Add(-time.Hour)
	agentID := int64(33)
	aggregate, err := delivery.RestoreDelivery(1, kernel.NewUUID(), kernel.NewUUID(),
		&agentID, delivery.StatusDispatched, &firstAssigned, firstAssigned)
	require.NoError(t, err)

	cmd, _ := commands.NewAssignDeliveryCommand("token-abc", aggregate.Token(), 44, delivery.StatusDispatched)

	repo := new(MockDeliveryRepository)
	client := new(MockIdentityClient)
	mock.InOrder(
		client.On("ValidateDeliveryAgent", ctx, "token-abc", int64(44)).Return(true, nil).Once(),
		repo.On("GetByToken", ctx, aggregate.Token()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
	)

	h, _ := commands.NewAssignDeliveryCommandHandler(repo, client, discardLogger())
	assigned, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(44), *assigned.AgentID())
	require.Equal(t, firstAssigned, *assigned.AssignedAt())
}

func TestAssignDeliveryCommandHandler_Handle_InvalidAgentNothingMutated(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingDelivery(t)
	cmd, _ := commands.NewAssignDeliveryCommand("token-abc", aggregate.Token(), 33, delivery.StatusDispatched)

	repo := new(MockDeliveryRepository)
	client := new(MockIdentityClient)
	client.On("ValidateDeliveryAgent", ctx, "token-abc", int64(33)).Return(false, nil).Once()

	h, _ := commands.NewAssignDeliveryCommandHandler(repo, client, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "GetByToken", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignDeliveryCommandHandler_Handle_IdentityUnreachableNothingMutated(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingDelivery(t)
	cmd, _ := commands.NewAssignDeliveryCommand("token-abc", aggregate.Token(), 33, delivery.StatusDispatched)

	repo := new(MockDeliveryRepository)
	client := new(MockIdentityClient)
	client.On("ValidateDeliveryAgent", ctx, "token-abc", int64(33)).
		Return(false, errs.NewUpstreamUnavailableError("identity")).Once()

	h, _ := commands.NewAssignDeliveryCommandHandler(repo, client, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignDeliveryCommand_RequestedStatusMustBeDispatched(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingDelivery(t)
	cmd, err := commands.NewAssignDeliveryCommand("token-abc", aggregate.Token(), 33, delivery.StatusInTransit)
	require.NoError(t, err) // a known status passes command validation

	repo := new(MockDeliveryRepository)
	client := new(MockIdentityClient)
	mock.InOrder(
		client.On("ValidateDeliveryAgent", ctx, "token-abc", int64(33)).Return(true, nil).Once(),
		repo.On("GetByToken", ctx, aggregate.Token()).Return(aggregate, nil).Once(),
	)

	h, _ := commands.NewAssignDeliveryCommandHandler(repo, client, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, delivery.StatusPending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
