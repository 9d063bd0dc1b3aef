package cmd

import (
	"context"
	"log/slog"

	httpadapter "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/customerrepo"
	"workshop/internal/adapters/out/postgres/serviceorderrepo"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) serviceOrderUoWFactory() commands.ServiceOrderUoWFactory {
	return FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateCustomerCommandHandler() commands.DeactivateCustomerCommandHandler {
	return commands.NewDeactivateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateCreateServiceCommandHandler() commands.CreateServiceCommandHandler {
	return commands.NewCreateServiceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreatePartCommandHandler() commands.CreatePartCommandHandler {
	return commands.NewCreatePartCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRestockPartCommandHandler() commands.RestockPartCommandHandler {
	return commands.NewRestockPartCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	return commands.NewCreateServiceOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateUpdateServiceOrderStatusCommandHandler() commands.UpdateServiceOrderStatusCommandHandler {
	return commands.NewUpdateServiceOrderStatusCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateApproveServiceOrderCommandHandler() commands.ApproveServiceOrderCommandHandler {
	return commands.NewApproveServiceOrderCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateServiceOrderDetailsCommandHandler() commands.UpdateServiceOrderDetailsCommandHandler {
	return commands.NewUpdateServiceOrderDetailsCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetServiceOrderQueryHandler() queries.GetServiceOrderQueryHandler {
	return queries.NewGetServiceOrderQueryHandler(
		serviceorderrepo.NewGormServiceOrderRepository(c.gormDB, discardTracker{}),
	)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(
		customerrepo.NewGormCustomerRepository(c.gormDB, discardTracker{}),
	)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListServiceOrdersQueryHandler() queries.ListServiceOrdersQueryHandler {
	return queries.NewListServiceOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLowStockPartsQueryHandler() queries.ListLowStockPartsQueryHandler {
	return queries.NewListLowStockPartsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOverdueServiceOrdersQueryHandler() queries.ListOverdueServiceOrdersQueryHandler {
	return queries.NewListOverdueServiceOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAverageExecutionTimeQueryHandler() queries.GetAverageExecutionTimeQueryHandler {
	return queries.NewGetAverageExecutionTimeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:     c.CreateUpdateCustomerCommandHandler(),
		DeactivateCustomer: c.CreateDeactivateCustomerCommandHandler(),
		GetCustomer:        c.CreateGetCustomerQueryHandler(),
		ListCustomers:      c.CreateListCustomersQueryHandler(),

		CreateVehicle: c.CreateCreateVehicleCommandHandler(),

		CreateService:     c.CreateCreateServiceCommandHandler(),
		CreatePart:        c.CreateCreatePartCommandHandler(),
		RestockPart:       c.CreateRestockPartCommandHandler(),
		ListLowStockParts: c.CreateListLowStockPartsQueryHandler(),

		CreateServiceOrder:        c.CreateCreateServiceOrderCommandHandler(),
		UpdateServiceOrderStatus:  c.CreateUpdateServiceOrderStatusCommandHandler(),
		ApproveServiceOrder:       c.CreateApproveServiceOrderCommandHandler(),
		UpdateServiceOrderDetails: c.CreateUpdateServiceOrderDetailsCommandHandler(),
		GetServiceOrder:           c.CreateGetServiceOrderQueryHandler(),
		ListServiceOrders:         c.CreateListServiceOrdersQueryHandler(),
		AverageExecutionTime:      c.CreateGetAverageExecutionTimeQueryHandler(),

		HealthCheck: c.pingDatabase,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListLowStockPartsQueryHandler(),
		c.CreateListOverdueServiceOrdersQueryHandler(),
		jobs.Schedules{
			LowStockReport:      c.configs.LowStockReportSchedule,
			OverdueOrdersReport: c.configs.OverdueOrdersReportSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// discardTracker backs repositories used only for reads.
type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.UUID, any) {}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncServiceOrderUoWFactory func() commands.ServiceOrderUoW

func (f FuncServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
