package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzadelivery/internal/adapters/out/postgres/orderrepo"
	"pizzadelivery/internal/core/application/usecases/queries"
	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"
	"pizzadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) seedOrder(customerID int64, createdAt time.Time) *order.Order {
	line, err := order.NewLine(1, 2, 9.99)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, "NYC01", []order.Line{line}, nil, createdAt)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderQueriesTestSuite) TestGetAllOrders_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()
	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestGetAllOrders_ReturnsAllOrderedByID() {
	now := time.Now().UTC()
	first := suite.seedOrder(7, now)
	second := suite.seedOrder(8, now)

	query := queries.NewGetAllOrdersQuery()
	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].Token.IsEqual(first.Token()))
	suite.True(result[1].Token.IsEqual(second.Token()))
	suite.InDelta(19.98, result[0].TotalPrice, 0.0001)
	suite.Equal("PENDING", result[0].Status)
}

func (suite *OrderQueriesTestSuite) TestGetOrderHistory_OnlyOwnOrdersNewestFirst() {
	now := time.Now().UTC()
	older := suite.seedOrder(7, now.Add(-2*time.Hour))
	newer := suite.seedOrder(7, now.Add(-time.Hour))
	suite.seedOrder(42, now) // someone else's order

	query, err := queries.NewGetOrderHistoryQuery(7)
	suite.Require().NoError(err)
	handler := queries.NewGetOrderHistoryQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].Token.IsEqual(newer.Token()))
	suite.True(result[1].Token.IsEqual(older.Token()))
}

func (suite *OrderQueriesTestSuite) TestGetOrderByToken_ReturnsLines() {
	aggregate := suite.seedOrder(7, time.Now().UTC())

	query, err := queries.NewGetOrderByTokenQuery(aggregate.Token())
	suite.Require().NoError(err)
	handler := queries.NewGetOrderByTokenQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.Token.IsEqual(aggregate.Token()))
	suite.Require().Len(result.Lines, 1)
	suite.Equal(int64(1), result.Lines[0].ItemID)
	suite.Equal(2, result.Lines[0].Quantity)
	suite.InDelta(19.98, result.Lines[0].Subtotal, 0.0001)
}

func (suite *OrderQueriesTestSuite) TestGetOrderByToken_UnknownToken() {
	query, err := queries.NewGetOrderByTokenQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	handler := queries.NewGetOrderByTokenQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOrderByID_ReturnsOrder() {
	aggregate := suite.seedOrder(7, time.Now().UTC())

	query, err := queries.NewGetOrderByIDQuery(aggregate.ID())
	suite.Require().NoError(err)
	handler := queries.NewGetOrderByIDQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.ID)
	suite.Equal(int64(7), result.CustomerID)
}

func (suite *OrderQueriesTestSuite) TestGetOrderStatus_CustomerSeesOwnOrder() {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	aggregate := suite.seedOrder(7, createdAt)
	actor := identity.Claims{Subject: "alice", UserID: 7, Username: "alice", Role: identity.RoleCustomer}

	query, err := queries.NewGetOrderStatusQuery(actor, aggregate.Token())
	suite.Require().NoError(err)
	handler := queries.NewGetOrderStatusQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("PENDING", result.Status)
	suite.InDelta(19.98, result.TotalPrice, 0.001)
	suite.True(createdAt.Equal(result.CreatedAt))
}

func (suite *OrderQueriesTestSuite) TestGetOrderStatus_CustomerBlockedFromForeignOrder() {
	aggregate := suite.seedOrder(42, time.Now().UTC())
	actor := identity.Claims{Subject: "alice", UserID: 7, Username: "alice", Role: identity.RoleCustomer}

	query, err := queries.NewGetOrderStatusQuery(actor, aggregate.Token())
	suite.Require().NoError(err)
	handler := queries.NewGetOrderStatusQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *OrderQueriesTestSuite) TestGetOrderStatus_StaffSeesAnyOrder() {
	aggregate := suite.seedOrder(42, time.Now().UTC())
	actor := identity.Claims{Subject: "bob", UserID: 2, Username: "bob", Role: identity.RoleStaff}

	query, err := queries.NewGetOrderStatusQuery(actor, aggregate.Token())
	suite.Require().NoError(err)
	handler := queries.NewGetOrderStatusQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("PENDING", result.Status)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
