package commands_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newBulkUoW builds a transaction mock that yields the given repositories.
// Rollback is always expected; commit only when the order write succeeds.
func newBulkUoW(ctx any, orderRepo *MockOrderRepository, technicianRepo *MockTechnicianRepository, commits bool) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Maybe()
	uow.On("TechnicianRepository").Return(technicianRepo).Maybe()
	if commits {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow
}

func TestBulkAssignOrdersCommandHandler_Handle_IndependentResults(t *testing.T) {
	ctx := t.Context()

	tech := alwaysOnTechnician(t)
	okOrder := pendingOrder(t)
	contested := pendingOrder(t)
	missingID := kernel.NewUUID()

	cmd, err := commands.NewBulkAssignOrdersCommand(
		[]kernel.UUID{okOrder.ID(), contested.ID(), missingID},
		tech.ID(), dispatcherActor(t), "batch",
	)
	require.NoError(t, err)

	conflict := errs.NewConcurrencyConflictError(
		"order", contested.ID(), order.StatusPending.String(), order.StatusAssigned.String(),
	)
	notFound := errs.NewObjectNotFoundError("orderID", missingID)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, okOrder.ID()).Return(okOrder, nil).Once()
	orderRepo.On("Get", ctx, contested.ID()).Return(contested, nil).Once()
	orderRepo.On("Get", ctx, missingID).Return(nil, notFound).Once()
	orderRepo.On("UpdateWhereStatus", ctx, okOrder, order.StatusPending).Return(nil).Once()
	orderRepo.On("UpdateWhereStatus", ctx, contested, order.StatusPending).Return(conflict).Once()

	technicianRepo := new(MockTechnicianRepository)
	technicianRepo.On("Get", ctx, tech.ID()).Return(tech, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(newBulkUoW(ctx, orderRepo, technicianRepo, false)).Once() // technician read
	factory.On("Create").Return(newBulkUoW(ctx, orderRepo, technicianRepo, true)).Once()  // okOrder
	factory.On("Create").Return(newBulkUoW(ctx, orderRepo, technicianRepo, false)).Once() // contested
	factory.On("Create").Return(newBulkUoW(ctx, orderRepo, technicianRepo, false)).Once() // missing

	handler := commands.NewBulkAssignOrdersCommandHandler(factory)
	results, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].OrderID.IsEqual(okOrder.ID()))
	assert.NoError(t, results[0].Err)
	assert.Equal(t, order.StatusAssigned, okOrder.Status())

	assert.True(t, results[1].OrderID.IsEqual(contested.ID()))
	assert.ErrorIs(t, results[1].Err, errs.ErrConcurrencyConflict)

	assert.True(t, results[2].OrderID.IsEqual(missingID))
	assert.ErrorIs(t, results[2].Err, errs.ErrObjectNotFound)

	orderRepo.AssertExpectations(t)
	technicianRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBulkAssignOrdersCommandHandler_Handle_UnavailableTechnicianFailsFast(t *testing.T) {
	ctx := t.Context()

	tech := alwaysOnTechnician(t)
	tech.SetAvailability(false)
	testOrder := pendingOrder(t)

	cmd, err := commands.NewBulkAssignOrdersCommand(
		[]kernel.UUID{testOrder.ID()}, tech.ID(), dispatcherActor(t), "",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	technicianRepo := new(MockTechnicianRepository)
	technicianRepo.On("Get", ctx, tech.ID()).Return(tech, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(newBulkUoW(ctx, orderRepo, technicianRepo, false)).Once()

	handler := commands.NewBulkAssignOrdersCommandHandler(factory)
	results, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTechnicianUnavailable)
	assert.Nil(t, results)
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestBulkAssignOrdersCommand_RequiresOrderIDs(t *testing.T) {
	_, err := commands.NewBulkAssignOrdersCommand(nil, kernel.NewUUID(), dispatcherActor(t), "")
	require.ErrorIs(t, err, commands.ErrOrderIDsAreRequired)
}
