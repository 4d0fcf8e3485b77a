package cmd

import (
	"log/slog"
	"os"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.OrderEventPublisher
	redisCache *redis.Client
	numbers    order.NumberGenerator
	effects    commands.TransitionEffects
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// both side channels are optional: without a broker events are skipped,
	// without redis the stats query hits the database every time
	var publisher *kafka.OrderEventPublisher
	var eventPublisher ports.OrderEventPublisher
	if configs.KafkaHost != "" {
		publisher = kafka.NewOrderEventPublisher([]string{configs.KafkaHost}, configs.KafkaOrderChangedTopic)
		eventPublisher = publisher
	}

	var redisCache *redis.Client
	if configs.RedisAddr != "" {
		redisCache = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	}

	auditLog := auditrepo.NewGormAuditLog(gormDB)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		redisCache: redisCache,
		numbers:    order.NewNumberGenerator(nil, nil),
		effects:    commands.NewTransitionEffects(auditLog, eventPublisher, nil, logger),
		logger:     logger,
	}
}

// Logger returns the application-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close releases outbound connections.
func (c *CompositionRoot) Close() {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.logger.Error("failed to close kafka publisher", "error", err)
		}
	}
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			c.logger.Error("failed to close redis client", "error", err)
		}
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fulfillmentUoWFactory(), c.numbers, c.effects)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.fulfillmentUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateSignOrderCommandHandler() commands.SignOrderCommandHandler {
	return commands.NewSignOrderCommandHandler(c.fulfillmentUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateMarkAbnormalCommandHandler() commands.MarkAbnormalCommandHandler {
	return commands.NewMarkAbnormalCommandHandler(c.orderUoWFactory(), c.effects)
}

func (c *CompositionRoot) CreateSetAgentAvailabilityCommandHandler() commands.SetAgentAvailabilityCommandHandler {
	return commands.NewSetAgentAvailabilityCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentStatsQueryHandler() queries.GetAgentStatsQueryHandler {
	return queries.NewGetAgentStatsQueryHandler(c.gormDB, c.redisCache)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
