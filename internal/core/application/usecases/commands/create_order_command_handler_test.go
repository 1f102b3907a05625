package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	deadline := time.Now().UTC().Add(72 * time.Hour)

	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, "mathematics", "essay", 3, 150, deadline)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(orderID))
	assert.True(t, created.ClientID().IsEqual(clientID))
	assert.Equal(t, order.StatusNew, created.Status())
	assert.Nil(t, created.ExpertID())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PastDeadline(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "essay", 3, 150, time.Now().UTC().Add(-time.Hour),
	)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	assert.Nil(t, created)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "physics", "thesis", 5, 900, time.Now().UTC().Add(time.Hour),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	assert.Nil(t, created)
	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommandShouldValidateParams(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	deadline := time.Now().UTC().Add(time.Hour)

	tests := map[string]struct {
		orderID  kernel.UUID
		clientID kernel.UUID
		workType string
		deadline time.Time
	}{
		"empty order id":  {kernel.UUID{}, clientID, "essay", deadline},
		"empty client id": {orderID, kernel.UUID{}, "essay", deadline},
		"empty work type": {orderID, clientID, "", deadline},
		"zero deadline":   {orderID, clientID, "essay", time.Time{}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := commands.NewCreateOrderCommand(
				test.orderID, test.clientID, "mathematics", test.workType, 3, 100, test.deadline,
			)

			require.Error(t, err)
			assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
		})
	}
}
