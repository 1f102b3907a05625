package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"studyhub/internal/adapters/out/postgres/orderrepo"
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/core/domain/model/order"
	"studyhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) newOrder(subject string) *order.Order {
	now := time.Now().UTC()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), subject, "essay", 3, 150, now.Add(72*time.Hour), now,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) restoreOrder(status order.Status, expertID *kernel.UUID) *order.Order {
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), expertID,
		"mathematics", "essay", 3, 150, nil,
		status, now.Add(72*time.Hour), now.Add(-time.Hour), now,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	created := suite.newOrder("mathematics")

	err := suite.repo.Add(ctx, created)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(created.ID()))
	suite.True(loaded.ClientID().IsEqual(created.ClientID()))
	suite.Equal(created.Subject(), loaded.Subject())
	suite.Equal(created.WorkType(), loaded.WorkType())
	suite.Equal(order.StatusNew, loaded.Status())
	suite.Nil(loaded.ExpertID())
	suite.Nil(loaded.FinalPrice())
}

func (suite *OrderRepositoryTestSuite) TestGetNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestClaimForExpert() {
	ctx := context.Background()
	created := suite.newOrder("mathematics")
	suite.Require().NoError(suite.repo.Add(ctx, created))

	expertID := kernel.NewUUID()
	err := suite.repo.ClaimForExpert(ctx, created.ID(), expertID)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInProgress, loaded.Status())
	suite.Require().NotNil(loaded.ExpertID())
	suite.True(loaded.ExpertID().IsEqual(expertID))
}

func (suite *OrderRepositoryTestSuite) TestClaimForExpert_AlreadyClaimed() {
	ctx := context.Background()
	created := suite.newOrder("mathematics")
	suite.Require().NoError(suite.repo.Add(ctx, created))
	suite.Require().NoError(suite.repo.ClaimForExpert(ctx, created.ID(), kernel.NewUUID()))

	err := suite.repo.ClaimForExpert(ctx, created.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, order.ErrOrderNotAvailable)
}

func (suite *OrderRepositoryTestSuite) TestClaimForExpert_AtMostOneConcurrentWinner() {
	ctx := context.Background()
	created := suite.newOrder("mathematics")
	suite.Require().NoError(suite.repo.Add(ctx, created))

	const claimers = 8
	results := make([]error, claimers)

	var g errgroup.Group
	for i := range claimers {
		g.Go(func() error {
			results[i] = suite.repo.ClaimForExpert(ctx, created.ID(), kernel.NewUUID())
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			suite.Require().ErrorIs(err, order.ErrOrderNotAvailable)
		}
	}
	suite.Equal(1, wins)
}

func (suite *OrderRepositoryTestSuite) TestUpdateStatusFrom() {
	ctx := context.Background()
	expertID := kernel.NewUUID()
	created := suite.restoreOrder(order.StatusInProgress, &expertID)
	suite.Require().NoError(suite.repo.Add(ctx, created))

	previous := created.Status()
	actor, err := order.NewActor(expertID, order.RoleExpert)
	suite.Require().NoError(err)
	suite.Require().NoError(created.Apply(order.EventSubmit, actor, time.Now().UTC()))

	err = suite.repo.UpdateStatusFrom(ctx, created, previous)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusReview, loaded.Status())
}

func (suite *OrderRepositoryTestSuite) TestUpdateStatusFrom_StaleViewConflicts() {
	ctx := context.Background()
	expertID := kernel.NewUUID()
	created := suite.restoreOrder(order.StatusInProgress, &expertID)
	suite.Require().NoError(suite.repo.Add(ctx, created))

	actor, err := order.NewActor(expertID, order.RoleExpert)
	suite.Require().NoError(err)
	suite.Require().NoError(created.Apply(order.EventSubmit, actor, time.Now().UTC()))

	err = suite.repo.UpdateStatusFrom(ctx, created, order.StatusRevision)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInProgress, loaded.Status())
}

func (suite *OrderRepositoryTestSuite) TestCountActiveByExpert() {
	ctx := context.Background()
	expertID := kernel.NewUUID()

	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusInProgress, &expertID)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusRevision, &expertID)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusReview, &expertID)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("physics")))

	count, err := suite.repo.CountActiveByExpert(ctx, expertID)
	suite.Require().NoError(err)
	suite.Equal(2, count)
}

func (suite *OrderRepositoryTestSuite) TestGetAllByExpert() {
	ctx := context.Background()
	expertID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusInProgress, &expertID)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusReview, &expertID)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusInProgress, &otherID)))

	orders, err := suite.repo.GetAllByExpert(ctx, expertID)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.True(o.ExpertID().IsEqual(expertID))
	}
}

func (suite *OrderRepositoryTestSuite) TestGetAllActive() {
	ctx := context.Background()
	expertID := kernel.NewUUID()

	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("mathematics")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusInProgress, &expertID)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.restoreOrder(order.StatusCancelled, nil)))

	orders, err := suite.repo.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	for _, o := range orders {
		suite.False(o.Status().IsTerminal())
	}
}

func (suite *OrderRepositoryTestSuite) TestExpireOverdue() {
	ctx := context.Background()
	now := time.Now().UTC()

	overdue, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"mathematics", "essay", 3, 150, nil,
		order.StatusNew, now.Add(-time.Hour), now.Add(-48*time.Hour), now.Add(-48*time.Hour),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, overdue))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("physics")))

	expired, err := suite.repo.ExpireOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), expired)

	loaded, err := suite.repo.Get(ctx, overdue.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCancelled, loaded.Status())

	expired, err = suite.repo.ExpireOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Zero(expired)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
