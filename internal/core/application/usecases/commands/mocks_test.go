package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/domain/model/dispute"
	"studyhub/internal/core/domain/model/expert"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/core/ports"
)

// Shared testify mocks for every handler test in this package.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusFrom(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ClaimForExpert(ctx context.Context, orderID kernel.UUID, expertID kernel.UUID) error {
	args := m.Called(ctx, orderID, expertID)
	return args.Error(0)
}

func (m *MockOrderRepository) CountActiveByExpert(ctx context.Context, expertID kernel.UUID) (int, error) {
	args := m.Called(ctx, expertID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByExpert(ctx context.Context, expertID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, expertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockExpertRepository struct{ mock.Mock }

func (m *MockExpertRepository) AddSpecialization(ctx context.Context, spec *expert.Specialization) error {
	args := m.Called(ctx, spec)
	return args.Error(0)
}

func (m *MockExpertRepository) HasVerifiedSpecialization(
	ctx context.Context, expertID kernel.UUID, subject string,
) (bool, error) {
	args := m.Called(ctx, expertID, subject)
	return args.Bool(0), args.Error(1)
}

func (m *MockExpertRepository) AddRating(ctx context.Context, rating *expert.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockExpertRepository) GetRatingsByExpert(ctx context.Context, expertID kernel.UUID) ([]*expert.Rating, error) {
	args := m.Called(ctx, expertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*expert.Rating), args.Error(1)
}

func (m *MockExpertRepository) SaveStatistics(ctx context.Context, stats *expert.Statistics) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockExpertRepository) GetStatistics(ctx context.Context, expertID kernel.UUID) (*expert.Statistics, error) {
	args := m.Called(ctx, expertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*expert.Statistics), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) AddExclusive(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Update(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetUnresolvedByOrder(ctx context.Context, orderID kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ExpertRepository() ports.ExpertRepository {
	args := m.Called()
	return args.Get(0).(ports.ExpertRepository)
}

func (m *MockUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockExpertUoWFactory struct{ mock.Mock }

func (m *MockExpertUoWFactory) Create() commands.ExpertUoW {
	args := m.Called()
	return args.Get(0).(commands.ExpertUoW)
}

type MockNotificationGateway struct{ mock.Mock }

func (m *MockNotificationGateway) Emit(ctx context.Context, event ports.NotificationEvent) {
	m.Called(ctx, event)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) InstructCompensation(ctx context.Context, orderID kernel.UUID, percentage int) error {
	args := m.Called(ctx, orderID, percentage)
	return args.Error(0)
}
