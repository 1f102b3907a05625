package cmd

import (
	"log/slog"

	"studyhub/internal/adapters/out/notify"
	"studyhub/internal/adapters/out/payment"
	"studyhub/internal/adapters/out/postgres"
	"studyhub/internal/core/application/usecases/commands"
	"studyhub/internal/core/application/usecases/queries"
	"studyhub/internal/core/domain/services"
	"studyhub/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationGateway
	payments   ports.PaymentGateway
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotificationGateway(logger),
		payments:   payment.NewSlogPaymentGateway(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTakeOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenDisputeCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignArbitratorCommandHandler() commands.AssignArbitratorCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignArbitratorCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveDisputeCommandHandler(
		f, services.NewCompensationPolicy(), c.payments, c.notifier, c.logger,
	)
}

func (c *CompositionRoot) CreateCreateRatingCommandHandler() commands.CreateRatingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateAddSpecializationCommandHandler() commands.AddSpecializationCommandHandler {
	var f commands.ExpertUoWFactory = FuncExpertUoWFactory(func() commands.ExpertUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddSpecializationCommandHandler(f)
}

func (c *CompositionRoot) CreateRecomputeStatisticsCommandHandler() commands.RecomputeStatisticsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeStatisticsCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOrdersCommandHandler() commands.ExpireOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateFindCandidatesQueryHandler() queries.FindCandidatesQueryHandler {
	return queries.NewFindCandidatesQueryHandler(c.gormDB, services.NewExpertMatcher())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpertStatisticsQueryHandler() queries.GetExpertStatisticsQueryHandler {
	return queries.NewGetExpertStatisticsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncExpertUoWFactory func() commands.ExpertUoW

func (f FuncExpertUoWFactory) Create() commands.ExpertUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
