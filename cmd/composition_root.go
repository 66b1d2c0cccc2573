package cmd

import (
	"database/sql"
	"log/slog"
	"strings"

	inhttp "pizzadelivery/internal/adapters/in/http"
	"pizzadelivery/internal/adapters/in/kafkaconsumer"
	"pizzadelivery/internal/adapters/out/kafkaproducer"
	"pizzadelivery/internal/adapters/out/postgres"
	"pizzadelivery/internal/adapters/out/postgres/deliveryrepo"
	"pizzadelivery/internal/adapters/out/serviceclients"
	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/application/usecases/queries"
	"pizzadelivery/internal/core/ports"
	"pizzadelivery/internal/jobs"

	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Both service binaries build
// one and pick the creators they need.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// OpenDatabase connects GORM through lib/pq so driver errors surface as
// *pq.Error, which the delivery repository relies on for conflict mapping.
func OpenDatabase(configs Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", configs.PostgresDSN())
	if err != nil {
		return nil, err
	}
	return gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
}

func (c *CompositionRoot) kafkaBrokers() []string {
	return strings.Split(c.configs.KafkaHost, ",")
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCatalogClient() ports.CatalogClient {
	return serviceclients.NewCatalogServiceClient(c.configs.CatalogServiceURL, nil)
}

func (c *CompositionRoot) CreateIdentityClient() ports.IdentityClient {
	return serviceclients.NewIdentityServiceClient(c.configs.IdentityServiceURL, nil)
}

func (c *CompositionRoot) CreateFulfillmentPublisher() *kafkaproducer.FulfillmentPublisher {
	return kafkaproducer.NewFulfillmentPublisher(
		c.kafkaBrokers(), c.configs.KafkaFulfillmentTopic, c.logger)
}

func (c *CompositionRoot) CreateDeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler(
	publisher ports.EventPublisher,
) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.CreateCatalogClient(), publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOrderServer(publisher ports.EventPublisher) *inhttp.OrderServer {
	return inhttp.NewOrderServer(
		c.CreateCreateOrderCommandHandler(publisher),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		queries.NewGetAllOrdersQueryHandler(c.gormDB),
		queries.NewGetOrderHistoryQueryHandler(c.gormDB),
		queries.NewGetOrderByIDQueryHandler(c.gormDB),
		queries.NewGetOrderByTokenQueryHandler(c.gormDB),
		queries.NewGetOrderStatusQueryHandler(c.gormDB),
	)
}

func (c *CompositionRoot) CreateDeliveryServer() (*inhttp.DeliveryServer, error) {
	deliveryRepository := c.CreateDeliveryRepository()

	createHandler, err := commands.NewCreateDeliveryCommandHandler(deliveryRepository, c.logger)
	if err != nil {
		return nil, err
	}
	assignHandler, err := commands.NewAssignDeliveryCommandHandler(
		deliveryRepository, c.CreateIdentityClient(), c.logger)
	if err != nil {
		return nil, err
	}
	updateStatusHandler, err := commands.NewUpdateDeliveryStatusCommandHandler(deliveryRepository, c.logger)
	if err != nil {
		return nil, err
	}
	deleteHandler, err := commands.NewDeleteDeliveryCommandHandler(deliveryRepository, c.logger)
	if err != nil {
		return nil, err
	}

	return inhttp.NewDeliveryServer(
		createHandler,
		assignHandler,
		updateStatusHandler,
		deleteHandler,
		queries.NewGetAllDeliveriesQueryHandler(c.gormDB),
		queries.NewGetDeliveryQueryHandler(c.gormDB),
		queries.NewGetDeliveryByOrderTokenQueryHandler(c.gormDB),
	), nil
}

func (c *CompositionRoot) CreateFulfillmentConsumer() (*kafkaconsumer.FulfillmentConsumer, error) {
	createHandler, err := commands.NewCreateDeliveryCommandHandler(c.CreateDeliveryRepository(), c.logger)
	if err != nil {
		return nil, err
	}

	reader := kafkaconsumer.NewKafkaReader(c.kafkaBrokers(), c.configs.KafkaFulfillmentTopic)
	return kafkaconsumer.NewFulfillmentConsumer(reader, &createHandler, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.logger)
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory
// interface, bridging the ports unit of work to the command-side contract.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
