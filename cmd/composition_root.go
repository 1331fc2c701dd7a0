package cmd

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"agrikart/internal/adapters/out/notify"
	"agrikart/internal/adapters/out/postgres"
	"agrikart/internal/adapters/out/sessionstore"
	"agrikart/internal/core/application/usecases/commands"
	"agrikart/internal/core/application/usecases/queries"
	"agrikart/internal/core/ports"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.FarmerNotifier
	sessions   ports.SessionStore
	jobLogger  *slog.Logger
}

// NewCompositionRoot builds the object graph from the loaded configuration.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewWebhookFarmerNotifier(config.NotifyWebhookURL, logger),
		sessions:   sessionstore.NewRedisSessionStore(redisClient),
		jobLogger:  logger,
	}
}

// SessionStore exposes the conversation session store for the HTTP layer.
func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessions
}

// JobLogger exposes the logger used by scheduled jobs.
func (c *CompositionRoot) JobLogger() *slog.Logger {
	return c.jobLogger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPendingOrdersCommandHandler() commands.AssignPendingOrdersCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPendingOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateNearbyOrdersQueryHandler() queries.NearbyOrdersQueryHandler {
	return queries.NewNearbyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAssignedOrdersQueryHandler() queries.AssignedOrdersQueryHandler {
	return queries.NewAssignedOrdersQueryHandler(c.gormDB)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
