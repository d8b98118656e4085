package commands_test

import (
	"errors"
	"testing"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jobActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleSystem)
	require.NoError(t, err)
	return actor
}

func TestDispatchPendingOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	testOrder := pendingOrder(t)
	tech := alwaysOnTechnician(t)

	orderRepo := new(MockOrderRepository)
	technicianRepo := new(MockTechnicianRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		orderRepo.On("GetFirstInPendingStatus", ctx).Return(testOrder, nil).Once(),
		technicianRepo.On("GetAllActive", ctx).Return([]*technician.Technician{tech}, nil).Once(),
		orderRepo.On("UpdateWhereStatus", ctx, testOrder, order.StatusPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory, jobActor(t))
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, testOrder.Status())
	orderRepo.AssertExpectations(t)
	technicianRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDispatchPendingOrderCommandHandler_Handle_NoPendingOrder(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TechnicianRepository").Return(new(MockTechnicianRepository)).Once(),
		orderRepo.On("GetFirstInPendingStatus", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory, jobActor(t))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoPendingOrderFound)
}

func TestDispatchPendingOrderCommandHandler_Handle_NoTechnicians(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	testOrder := pendingOrder(t)

	orderRepo := new(MockOrderRepository)
	technicianRepo := new(MockTechnicianRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		orderRepo.On("GetFirstInPendingStatus", ctx).Return(testOrder, nil).Once(),
		technicianRepo.On("GetAllActive", ctx).Return([]*technician.Technician{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory, jobActor(t))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoAvailableTechnicians)
	assert.Equal(t, order.StatusPending, testOrder.Status())
}

func TestDispatchPendingOrderCommandHandler_Handle_NobodyPassesAvailability(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	testOrder := pendingOrder(t)
	tech := alwaysOnTechnician(t)
	tech.SetAvailability(false)

	orderRepo := new(MockOrderRepository)
	technicianRepo := new(MockTechnicianRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		orderRepo.On("GetFirstInPendingStatus", ctx).Return(testOrder, nil).Once(),
		technicianRepo.On("GetAllActive", ctx).Return([]*technician.Technician{tech}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory, jobActor(t))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoAvailableTechnicians)
}

func TestDispatchPendingOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewDispatchPendingOrderCommandHandler(factory, jobActor(t))
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
