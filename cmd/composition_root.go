package cmd

import (
	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	return commands.NewAssignTechnicianCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAcceptAssignmentCommandHandler() commands.AcceptAssignmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateReassignTechnicianCommandHandler() commands.ReassignTechnicianCommandHandler {
	return commands.NewReassignTechnicianCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateSetTechnicianStatusCommandHandler() commands.SetTechnicianStatusCommandHandler {
	return commands.NewSetTechnicianStatusCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkAssignOrdersCommandHandler() commands.BulkAssignOrdersCommandHandler {
	return commands.NewBulkAssignOrdersCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateTechnicianCommandHandler() commands.CreateTechnicianCommandHandler {
	return commands.NewCreateTechnicianCommandHandler(c.createTechnicianUoWFactory())
}

func (c *CompositionRoot) CreateSetTechnicianAvailabilityCommandHandler() commands.SetTechnicianAvailabilityCommandHandler {
	return commands.NewSetTechnicianAvailabilityCommandHandler(c.createTechnicianUoWFactory())
}

func (c *CompositionRoot) CreateDispatchPendingOrderCommandHandler() (commands.DispatchPendingOrderCommandHandler, error) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleSystem)
	if err != nil {
		return commands.DispatchPendingOrderCommandHandler{}, err
	}
	return commands.NewDispatchPendingOrderCommandHandler(c.createUoWFactory(), actor), nil
}

func (c *CompositionRoot) CreateRefreshPerformanceCommandHandler() commands.RefreshPerformanceCommandHandler {
	return commands.NewRefreshPerformanceCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignableTechniciansQueryHandler() queries.GetAssignableTechniciansQueryHandler {
	return queries.NewGetAssignableTechniciansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTechnicianAnalyticsQueryHandler() queries.GetTechnicianAnalyticsQueryHandler {
	return queries.NewGetTechnicianAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTechnicianUoWFactory() commands.TechnicianUoWFactory {
	return c.createTechnicianUoWFactory()
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createTechnicianUoWFactory() commands.TechnicianUoWFactory {
	return FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTechnicianUoWFactory func() commands.TechnicianUoW

func (f FuncTechnicianUoWFactory) Create() commands.TechnicianUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
