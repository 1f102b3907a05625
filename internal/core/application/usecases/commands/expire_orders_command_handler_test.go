package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyhub/internal/core/application/usecases/commands"
)

func TestExpireOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireOrdersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOrdersCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireOrdersCommandHandler_Handle_NothingOverdueIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireOrdersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOrdersCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(0), expired)
}

func TestExpireOrdersCommandHandler_Handle_SweepError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireOrdersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOrdersCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit")
}

func TestExpireOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	handler := commands.NewExpireOrdersCommandHandler(factory)
	_, err := handler.Handle(ctx, commands.ExpireOrdersCommand{})

	require.ErrorIs(t, err, commands.ErrExpireOrdersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
