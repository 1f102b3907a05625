package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/ports"
	"studyhub/internal/pkg/errs"
)

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := newTestOrder(t, "mathematics")

	cmd, err := commands.NewTakeOrderCommand(testOrder.ID(), expertID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	expertRepo := new(MockExpertRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExpertRepository").Return(expertRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		expertRepo.On("HasVerifiedSpecialization", ctx, expertID, "mathematics").Return(true, nil).Once(),
		orderRepo.On("CountActiveByExpert", ctx, expertID).Return(2, nil).Once(),
		orderRepo.On("ClaimForExpert", ctx, testOrder.ID(), expertID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationGateway)
	notifier.On("Emit", ctx, ports.OrderAssigned{OrderID: testOrder.ID(), ExpertID: expertID}).Once()

	handler := commands.NewTakeOrderCommandHandler(factory, notifier)
	claimed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusInProgress, claimed.Status())
	require.NotNil(t, claimed.ExpertID())
	assert.True(t, claimed.ExpertID().IsEqual(expertID))
	orderRepo.AssertExpectations(t)
	expertRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_SkipsQualificationWithoutSubject(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := newTestOrder(t, "")

	cmd, err := commands.NewTakeOrderCommand(testOrder.ID(), expertID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	expertRepo := new(MockExpertRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExpertRepository").Return(expertRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("CountActiveByExpert", ctx, expertID).Return(0, nil).Once(),
		orderRepo.On("ClaimForExpert", ctx, testOrder.ID(), expertID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationGateway)
	notifier.On("Emit", ctx, mock.Anything).Once()

	handler := commands.NewTakeOrderCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	expertRepo.AssertNotCalled(t, "HasVerifiedSpecialization")
}

func TestTakeOrderCommandHandler_Handle_NotQualified(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := newTestOrder(t, "physics")

	cmd, err := commands.NewTakeOrderCommand(testOrder.ID(), expertID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	expertRepo := new(MockExpertRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExpertRepository").Return(expertRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		expertRepo.On("HasVerifiedSpecialization", ctx, expertID, "physics").Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationGateway)

	handler := commands.NewTakeOrderCommandHandler(factory, notifier)
	claimed, err := handler.Handle(ctx, cmd)

	assert.Nil(t, claimed)
	require.ErrorIs(t, err, expert.ErrExpertNotQualified)
	notifier.AssertNotCalled(t, "Emit")
}

func TestTakeOrderCommandHandler_Handle_Overloaded(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := newTestOrder(t, "mathematics")

	cmd, err := commands.NewTakeOrderCommand(testOrder.ID(), expertID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	expertRepo := new(MockExpertRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExpertRepository").Return(expertRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		expertRepo.On("HasVerifiedSpecialization", ctx, expertID, "mathematics").Return(true, nil).Once(),
		orderRepo.On("CountActiveByExpert", ctx, expertID).Return(expert.MaxWorkload, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTakeOrderCommandHandler(factory, new(MockNotificationGateway))
	claimed, err := handler.Handle(ctx, cmd)

	assert.Nil(t, claimed)
	require.ErrorIs(t, err, expert.ErrExpertOverloaded)
}

func TestTakeOrderCommandHandler_Handle_ClaimLost(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := newTestOrder(t, "mathematics")

	cmd, err := commands.NewTakeOrderCommand(testOrder.ID(), expertID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	expertRepo := new(MockExpertRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExpertRepository").Return(expertRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		expertRepo.On("HasVerifiedSpecialization", ctx, expertID, "mathematics").Return(true, nil).Once(),
		orderRepo.On("CountActiveByExpert", ctx, expertID).Return(0, nil).Once(),
		orderRepo.On("ClaimForExpert", ctx, testOrder.ID(), expertID).Return(order.ErrOrderNotAvailable).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTakeOrderCommandHandler(factory, new(MockNotificationGateway))
	claimed, err := handler.Handle(ctx, cmd)

	assert.Nil(t, claimed)
	require.ErrorIs(t, err, order.ErrOrderNotAvailable)
}

func TestTakeOrderCommandHandler_Handle_RetriesOnceOnConflict(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := newTestOrder(t, "")
	retryOrder := newTestOrder(t, "")

	cmd, err := commands.NewTakeOrderCommand(testOrder.ID(), expertID)
	require.NoError(t, err)

	// First attempt loses a serialization race on commit, the retry wins.
	firstOrderRepo := new(MockOrderRepository)
	firstUow := new(MockUoW)
	mock.InOrder(
		firstUow.On("Begin", ctx).Return(nil).Once(),
		firstUow.On("OrderRepository").Return(firstOrderRepo).Once(),
		firstUow.On("ExpertRepository").Return(new(MockExpertRepository)).Once(),
		firstOrderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		firstOrderRepo.On("CountActiveByExpert", ctx, expertID).Return(0, nil).Once(),
		firstOrderRepo.On("ClaimForExpert", ctx, testOrder.ID(), expertID).Return(errs.ErrConflict).Once(),
		firstUow.On("Rollback", ctx).Return(nil).Once(),
	)

	secondOrderRepo := new(MockOrderRepository)
	secondUow := new(MockUoW)
	mock.InOrder(
		secondUow.On("Begin", ctx).Return(nil).Once(),
		secondUow.On("OrderRepository").Return(secondOrderRepo).Once(),
		secondUow.On("ExpertRepository").Return(new(MockExpertRepository)).Once(),
		secondOrderRepo.On("Get", ctx, testOrder.ID()).Return(retryOrder, nil).Once(),
		secondOrderRepo.On("CountActiveByExpert", ctx, expertID).Return(0, nil).Once(),
		secondOrderRepo.On("ClaimForExpert", ctx, testOrder.ID(), expertID).Return(nil).Once(),
		secondUow.On("Commit", ctx).Return(nil).Once(),
		secondUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(firstUow).Once()
	factory.On("Create").Return(secondUow).Once()

	notifier := new(MockNotificationGateway)
	notifier.On("Emit", ctx, mock.Anything).Once()

	handler := commands.NewTakeOrderCommandHandler(factory, notifier)
	claimed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusInProgress, claimed.Status())
	factory.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_SecondConflictSurfacesAsNotAvailable(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := newTestOrder(t, "")

	cmd, err := commands.NewTakeOrderCommand(testOrder.ID(), expertID)
	require.NoError(t, err)

	attempt := func() *MockUoW {
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			uow.On("ExpertRepository").Return(new(MockExpertRepository)).Once(),
			orderRepo.On("Get", ctx, testOrder.ID()).Return(newTestOrder(t, ""), nil).Once(),
			orderRepo.On("CountActiveByExpert", ctx, expertID).Return(0, nil).Once(),
			orderRepo.On("ClaimForExpert", ctx, testOrder.ID(), expertID).Return(errs.ErrConflict).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		return uow
	}

	factory := new(MockUoWFactory)
	factory.On("Create").Return(attempt()).Once()
	factory.On("Create").Return(attempt()).Once()

	handler := commands.NewTakeOrderCommandHandler(factory, new(MockNotificationGateway))
	claimed, err := handler.Handle(ctx, cmd)

	assert.Nil(t, claimed)
	require.ErrorIs(t, err, order.ErrOrderNotAvailable)
	factory.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)

	handler := commands.NewTakeOrderCommandHandler(factory, new(MockNotificationGateway))
	_, err := handler.Handle(ctx, commands.TakeOrderCommand{})

	require.ErrorIs(t, err, commands.ErrTakeOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewTakeOrderCommandShouldValidateIDs(t *testing.T) {
	_, err := commands.NewTakeOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewTakeOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)

	cmd, err := commands.NewTakeOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}
