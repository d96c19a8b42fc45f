package cmd

import (
	"log/slog"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/auditlog"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each Create*
// method builds a fresh handler over the shared gorm connection.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.Catalog
	audit      ports.Audit
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    productrepo.NewGormCatalog(gormDB),
		audit:      auditlog.NewSlogAudit(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.AddCartItemUoWFactory = FuncAddCartItemUoWFactory(func() commands.AddCartItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f, c.catalog, c.audit)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateCleanupCartsCommandHandler() commands.CleanupCartsCommandHandler {
	return commands.NewCleanupCartsCommandHandler(c.cartUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.audit)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderStatusUoWFactory = FuncOrderStatusUoWFactory(func() commands.OrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.audit)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePaymentStatusCommandHandler(f, c.audit)
}

func (c *CompositionRoot) CreateCreateConsignmentCommandHandler() commands.CreateConsignmentCommandHandler {
	return commands.NewCreateConsignmentCommandHandler(c.consignmentUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateUpdateConsignmentCommandHandler() commands.UpdateConsignmentCommandHandler {
	return commands.NewUpdateConsignmentCommandHandler(c.consignmentUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.consignmentUoWFactory(), c.audit)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	var f commands.DriverLocationUoWFactory = FuncDriverLocationUoWFactory(func() commands.DriverLocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverLocationCommandHandler(f, c.logger, c.audit)
}

func (c *CompositionRoot) CreateSetStockCommandHandler() commands.SetStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetStockCommandHandler(f, c.audit)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetConsignmentsQueryHandler() queries.GetConsignmentsQueryHandler {
	return queries.NewGetConsignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConsignmentQueryHandler() queries.GetConsignmentQueryHandler {
	return queries.NewGetConsignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP facade with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.ServerHandlers{
		AddCartItem:      c.CreateAddCartItemCommandHandler(),
		UpdateCartItem:   c.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem:   c.CreateRemoveCartItemCommandHandler(),
		ClearCart:        c.CreateClearCartCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		OrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
		PaymentStatus:    c.CreateUpdatePaymentStatusCommandHandler(),
		CreateConsign:    c.CreateCreateConsignmentCommandHandler(),
		UpdateConsign:    c.CreateUpdateConsignmentCommandHandler(),
		AssignDriver:     c.CreateAssignDriverCommandHandler(),
		DriverLocation:   c.CreateUpdateDriverLocationCommandHandler(),
		SetStock:         c.CreateSetStockCommandHandler(),
		GetCart:          c.CreateGetCartQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetOrderByNumber: c.CreateGetOrderByNumberQueryHandler(),
		GetConsignments:  c.CreateGetConsignmentsQueryHandler(),
		GetConsignment:   c.CreateGetConsignmentQueryHandler(),
		GetInventory:     c.CreateGetInventoryQueryHandler(),
	})
}

// CreateJobManager builds the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCleanupCartsCommandHandler(),
		c.config.CartRetention,
		c.config.CartCleanupSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) consignmentUoWFactory() commands.ConsignmentUoWFactory {
	return FuncConsignmentUoWFactory(func() commands.ConsignmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncAddCartItemUoWFactory func() commands.AddCartItemUoW

func (f FuncAddCartItemUoWFactory) Create() commands.AddCartItemUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderStatusUoWFactory func() commands.OrderStatusUoW

func (f FuncOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncConsignmentUoWFactory func() commands.ConsignmentUoW

func (f FuncConsignmentUoWFactory) Create() commands.ConsignmentUoW {
	return f()
}

type FuncDriverLocationUoWFactory func() commands.DriverLocationUoW

func (f FuncDriverLocationUoWFactory) Create() commands.DriverLocationUoW {
	return f()
}
