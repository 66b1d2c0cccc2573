package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzadelivery/internal/adapters/out/postgres/deliveryrepo"
	"pizzadelivery/internal/core/application/usecases/queries"
	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DeliveryQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *deliveryrepo.GormDeliveryRepository
}

func (suite *DeliveryQueriesTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.repo = deliveryrepo.NewGormDeliveryRepository(db)
}

func (suite *DeliveryQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *DeliveryQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *DeliveryQueriesTestSuite) seedDelivery() *delivery.Delivery {
	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *DeliveryQueriesTestSuite) TestGetAllDeliveries_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllDeliveriesQuery()
	handler := queries.NewGetAllDeliveriesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *DeliveryQueriesTestSuite) TestGetAllDeliveries_ReturnsAll() {
	first := suite.seedDelivery()
	second := suite.seedDelivery()

	query := queries.NewGetAllDeliveriesQuery()
	handler := queries.NewGetAllDeliveriesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].Token.IsEqual(first.Token()))
	suite.True(result[1].Token.IsEqual(second.Token()))
	suite.Equal("PENDING", result[0].Status)
	suite.Nil(result[0].AgentID)
	suite.Nil(result[0].AssignedAt)
}

func (suite *DeliveryQueriesTestSuite) TestGetDelivery_ByToken() {
	aggregate := suite.seedDelivery()

	query, err := queries.NewGetDeliveryByTokenQuery(aggregate.Token())
	suite.Require().NoError(err)
	handler := queries.NewGetDeliveryQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.Token.IsEqual(aggregate.Token()))
	suite.True(result.OrderToken.IsEqual(aggregate.OrderToken()))
}

func (suite *DeliveryQueriesTestSuite) TestGetDelivery_ByID() {
	aggregate := suite.seedDelivery()

	query, err := queries.NewGetDeliveryByIDQuery(aggregate.ID())
	suite.Require().NoError(err)
	handler := queries.NewGetDeliveryQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.ID)
}

func (suite *DeliveryQueriesTestSuite) TestGetDelivery_UnknownToken() {
	query, err := queries.NewGetDeliveryByTokenQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	handler := queries.NewGetDeliveryQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryQueriesTestSuite) TestGetDeliveryByOrderToken() {
	aggregate := suite.seedDelivery()

	query, err := queries.NewGetDeliveryByOrderTokenQuery(aggregate.OrderToken())
	suite.Require().NoError(err)
	handler := queries.NewGetDeliveryByOrderTokenQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.Token.IsEqual(aggregate.Token()))
}

func (suite *DeliveryQueriesTestSuite) TestGetDeliveryByOrderToken_Unknown() {
	query, err := queries.NewGetDeliveryByOrderTokenQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	handler := queries.NewGetDeliveryByOrderTokenQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDeliveryQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryQueriesTestSuite))
}
