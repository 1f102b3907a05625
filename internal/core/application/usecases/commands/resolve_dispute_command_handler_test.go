package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/domain/services"
	"studyhub/internal/core/ports"
)

func newAssignedDispute(t *testing.T, orderID kernel.UUID) *dispute.Dispute {
	t.Helper()

	d, err := dispute.NewDispute(kernel.NewUUID(), orderID, kernel.NewUUID(), "quality concerns", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, d.AssignArbitrator(kernel.NewUUID()))
	return d
}

func TestResolveDisputeCommandHandler_Handle_FavorClientCancelsAndCompensates(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := restoreTestOrder(t, order.StatusDisputed, &expertID)
	episode := newAssignedDispute(t, testOrder.ID())

	cmd, err := commands.NewResolveDisputeCommand(episode.ID(), dispute.OutcomeFavorClient, "refund in full")
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		disputeRepo.On("Get", ctx, episode.ID()).Return(episode, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateStatusFrom", ctx, testOrder, order.StatusDisputed).Return(nil).Once(),
		disputeRepo.On("Update", ctx, episode).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	payments := new(MockPaymentGateway)
	payments.On("InstructCompensation", ctx, testOrder.ID(), 100).Return(nil).Once()

	notifier := new(MockNotificationGateway)
	notifier.On("Emit", ctx, ports.DisputeResolved{DisputeID: episode.ID(), Outcome: dispute.OutcomeFavorClient}).Once()

	handler := commands.NewResolveDisputeCommandHandler(
		factory, services.NewCompensationPolicy(), payments, notifier, slog.Default(),
	)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, resolved.IsResolved())
	assert.Equal(t, dispute.OutcomeFavorClient, *resolved.Outcome())
	assert.Equal(t, order.StatusCancelled, testOrder.Status())
	payments.AssertExpectations(t)
	notifier.AssertExpectations(t)
	disputeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_FavorExpertCompletesAndRebuildsStatistics(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := restoreTestOrder(t, order.StatusDisputed, &expertID)
	episode := newAssignedDispute(t, testOrder.ID())

	cmd, err := commands.NewResolveDisputeCommand(episode.ID(), dispute.OutcomeFavorExpert, "work is sound")
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	orderRepo := new(MockOrderRepository)
	expertRepo := new(MockExpertRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		disputeRepo.On("Get", ctx, episode.ID()).Return(episode, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateStatusFrom", ctx, testOrder, order.StatusDisputed).Return(nil).Once(),
		disputeRepo.On("Update", ctx, episode).Return(nil).Once(),
		uow.On("ExpertRepository").Return(expertRepo).Once(),
		orderRepo.On("GetAllByExpert", ctx, expertID).Return([]*order.Order{testOrder}, nil).Once(),
		expertRepo.On("GetRatingsByExpert", ctx, expertID).Return([]*expert.Rating{}, nil).Once(),
		expertRepo.On("SaveStatistics", ctx, mock.AnythingOfType("*expert.Statistics")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	payments := new(MockPaymentGateway)
	payments.On("InstructCompensation", ctx, testOrder.ID(), 0).Return(nil).Once()

	notifier := new(MockNotificationGateway)
	notifier.On("Emit", ctx, ports.DisputeResolved{DisputeID: episode.ID(), Outcome: dispute.OutcomeFavorExpert}).Once()
	notifier.On("Emit", ctx, ports.OrderCompleted{OrderID: testOrder.ID()}).Once()

	handler := commands.NewResolveDisputeCommandHandler(
		factory, services.NewCompensationPolicy(), payments, notifier, slog.Default(),
	)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, resolved.IsResolved())
	assert.Equal(t, order.StatusCompleted, testOrder.Status())
	expertRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_PaymentFailureDoesNotFailResolution(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := restoreTestOrder(t, order.StatusDisputed, &expertID)
	episode := newAssignedDispute(t, testOrder.ID())

	cmd, err := commands.NewResolveDisputeCommand(episode.ID(), dispute.OutcomeCompromise, "split the fee")
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		disputeRepo.On("Get", ctx, episode.ID()).Return(episode, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateStatusFrom", ctx, testOrder, order.StatusDisputed).Return(nil).Once(),
		disputeRepo.On("Update", ctx, episode).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	payments := new(MockPaymentGateway)
	payments.On("InstructCompensation", ctx, testOrder.ID(), 50).
		Return(errors.New("payment system unavailable")).
		Once()

	notifier := new(MockNotificationGateway)
	notifier.On("Emit", ctx, mock.Anything).Once()

	handler := commands.NewResolveDisputeCommandHandler(
		factory, services.NewCompensationPolicy(), payments, notifier, slog.Default(),
	)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, resolved.IsResolved())
	assert.Equal(t, order.StatusCancelled, testOrder.Status())
	payments.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	testOrder := restoreTestOrder(t, order.StatusDisputed, &expertID)
	episode := newAssignedDispute(t, testOrder.ID())
	require.NoError(t, episode.Resolve(dispute.OutcomeFavorExpert, "done", time.Now().UTC()))

	cmd, err := commands.NewResolveDisputeCommand(episode.ID(), dispute.OutcomeFavorClient, "second thoughts")
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		uow.On("OrderRepository").Return(new(MockOrderRepository)).Once(),
		disputeRepo.On("Get", ctx, episode.ID()).Return(episode, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	payments := new(MockPaymentGateway)

	handler := commands.NewResolveDisputeCommandHandler(
		factory, services.NewCompensationPolicy(), payments, new(MockNotificationGateway), slog.Default(),
	)
	resolved, err := handler.Handle(ctx, cmd)

	assert.Nil(t, resolved)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	payments.AssertNotCalled(t, "InstructCompensation")
}

func TestNewResolveDisputeCommandShouldValidateOutcome(t *testing.T) {
	_, err := commands.NewResolveDisputeCommand(kernel.NewUUID(), dispute.Outcome("coin_flip"), "")
	require.Error(t, err)

	cmd, err := commands.NewResolveDisputeCommand(kernel.NewUUID(), dispute.OutcomeCompromise, "")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}
