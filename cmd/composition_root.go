package cmd

import (
	"log/slog"

	"printshop/internal/adapters/out/notifier"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *notifier.InMemoryQueue
	sender     *notifier.LogSender
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      notifier.NewInMemoryQueue(),
		sender:     notifier.NewLogSender(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateEstimateCommandHandler() commands.CreateEstimateCommandHandler {
	var f commands.EstimateUoWFactory = FuncEstimateUoWFactory(func() commands.EstimateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEstimateCommandHandler(f)
}

func (c *CompositionRoot) CreateConvertEstimateCommandHandler() commands.ConvertEstimateCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConvertEstimateCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderInvoicedCommandHandler() commands.MarkOrderInvoicedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderInvoicedCommandHandler(f)
}

func (c *CompositionRoot) CreateReorderOrderItemsCommandHandler() commands.ReorderOrderItemsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReorderOrderItemsCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeStatusCommandHandler(f, c.queue)
}

func (c *CompositionRoot) CreateOrderBoardQueryHandler() queries.OrderBoardQueryHandler {
	return queries.NewOrderBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderItemBoardQueryHandler() queries.OrderItemBoardQueryHandler {
	return queries.NewOrderItemBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.queue, c.sender, c.logger)
}

type FuncEstimateUoWFactory func() commands.EstimateUoW

func (f FuncEstimateUoWFactory) Create() commands.EstimateUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
