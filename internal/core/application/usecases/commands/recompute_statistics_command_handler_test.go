package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
)

func expectRecomputeRun(
	t *testing.T,
	ctx interface{ Done() <-chan struct{} },
	expertID kernel.UUID,
	orders []*order.Order,
	ratings []*expert.Rating,
) (*MockUoWFactory, *MockExpertRepository) {
	t.Helper()

	orderRepo := new(MockOrderRepository)
	expertRepo := new(MockExpertRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ExpertRepository").Return(expertRepo).Once(),
		orderRepo.On("GetAllByExpert", ctx, expertID).Return(orders, nil).Once(),
		expertRepo.On("GetRatingsByExpert", ctx, expertID).Return(ratings, nil).Once(),
		expertRepo.On("SaveStatistics", ctx, mock.AnythingOfType("*expert.Statistics")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	return factory, expertRepo
}

func TestRecomputeStatisticsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()

	completed := restoreCompletedOrder(t, expertID)
	active := restoreTestOrder(t, order.StatusInProgress, &expertID)

	rating, err := expert.NewRating(
		kernel.NewUUID(), expertID, kernel.NewUUID(), completed.ID(), 4, time.Now().UTC(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewRecomputeStatisticsCommand(expertID)
	require.NoError(t, err)

	factory, _ := expectRecomputeRun(t, ctx, expertID,
		[]*order.Order{completed, active}, []*expert.Rating{rating})

	handler := commands.NewRecomputeStatisticsCommandHandler(factory)
	stats, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders())
	assert.Equal(t, 1, stats.CompletedOrders())
	assert.Equal(t, 50.0, stats.SuccessRate())
	assert.Equal(t, 4.0, stats.AverageRating())
	assert.Equal(t, 120.0, stats.TotalEarnings())
}

func TestRecomputeStatisticsCommandHandler_Handle_IsIdempotent(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()
	completed := restoreCompletedOrder(t, expertID)

	cmd, err := commands.NewRecomputeStatisticsCommand(expertID)
	require.NoError(t, err)

	run := func() *expert.Statistics {
		factory, _ := expectRecomputeRun(t, ctx, expertID, []*order.Order{completed}, nil)
		handler := commands.NewRecomputeStatisticsCommandHandler(factory)
		stats, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		return stats
	}

	first := run()
	second := run()

	assert.Equal(t, first.TotalOrders(), second.TotalOrders())
	assert.Equal(t, first.CompletedOrders(), second.CompletedOrders())
	assert.Equal(t, first.SuccessRate(), second.SuccessRate())
	assert.Equal(t, first.AverageRating(), second.AverageRating())
	assert.Equal(t, first.TotalEarnings(), second.TotalEarnings())
}

func TestRecomputeStatisticsCommandHandler_Handle_NoHistory(t *testing.T) {
	ctx := t.Context()
	expertID := kernel.NewUUID()

	cmd, err := commands.NewRecomputeStatisticsCommand(expertID)
	require.NoError(t, err)

	factory, _ := expectRecomputeRun(t, ctx, expertID, []*order.Order{}, nil)

	handler := commands.NewRecomputeStatisticsCommandHandler(factory)
	stats, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders())
	assert.Equal(t, 0.0, stats.SuccessRate())
	assert.Equal(t, 0.0, stats.AverageRating())
}

func TestRecomputeStatisticsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)

	handler := commands.NewRecomputeStatisticsCommandHandler(factory)
	_, err := handler.Handle(ctx, commands.RecomputeStatisticsCommand{})

	require.ErrorIs(t, err, commands.ErrRecomputeStatisticsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
