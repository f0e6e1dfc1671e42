package queries_test

import (
	"context"
	"testing"
	"time"

	"baleconnect/internal/adapters/out/postgres/orderrepo"
	"baleconnect/internal/adapters/out/postgres/userrepo"
	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	userRepo  *userrepo.GormUserRepository

	customer *user.User
	farmer   *user.User
	baler    *user.User
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.userRepo = userrepo.NewGormUserRepository(db, &mockAggregateTracker{})

	suite.customer, err = user.NewUser(
		"customer@example.com", "secret", "customer", "Somchai Jaidee", "0812345678", "Khon Kaen",
	)
	suite.Require().NoError(err)
	suite.farmer, err = user.NewUser(
		"farmer@example.com", "secret", "farmer", "Somying Kaset", "0823456789", "Udon Thani",
	)
	suite.Require().NoError(err)
	suite.baler, err = user.NewUser(
		"baler@example.com", "secret", "baler", "Somsak Atfang", "0834567890", "Roi Et",
	)
	suite.Require().NoError(err)

	for _, u := range []*user.User{suite.customer, suite.farmer, suite.baler} {
		err = suite.userRepo.Add(ctx, u)
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) newOrder(notes string) *order.Order {
	o, err := order.NewOrder(suite.customer.ID(), "round", 10, "123 Moo 4, Khon Kaen", "2025-02-01", notes)
	suite.Require().NoError(err)
	return o
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOrdersQuery(queries.OrdersFilter{})

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_JoinsParticipantContacts() {
	o := suite.newOrder("call ahead")
	suite.Require().NoError(o.Accept(suite.farmer.ID()))
	suite.Require().NoError(o.AssignBaler(suite.baler.ID()))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery(queries.OrdersFilter{}))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal(o.ID().String(), row.OrderID)
	suite.Equal("Somchai Jaidee", row.CustomerName)
	suite.Equal("0812345678", row.CustomerPhone)
	suite.Equal("Khon Kaen", row.CustomerAddress)
	suite.Equal("Somying Kaset", row.FarmerName)
	suite.Equal("0823456789", row.FarmerPhone)
	suite.Equal("Somsak Atfang", row.BalerName)
	suite.Equal("0834567890", row.BalerPhone)
	suite.Equal("baler_assigned", row.Status)
	suite.Equal("call ahead", row.Notes)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_MissingParticipants_UsesPlaceholders() {
	// Order referencing a customer that does not exist, no farmer or baler.
	o, err := order.NewOrder(kernel.NewEntityID("customer"), "square", 5, "Nowhere", "2025-03-01", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersQuery(queries.OrdersFilter{}))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal("N/A", row.CustomerName)
	suite.Equal("N/A", row.CustomerPhone)
	suite.Equal("N/A", row.CustomerAddress)
	suite.Equal("-", row.FarmerName)
	suite.Equal("-", row.FarmerPhone)
	suite.Equal("-", row.BalerName)
	suite.Equal("-", row.BalerPhone)
	suite.Nil(row.FarmerID)
	suite.Nil(row.BalerID)
	suite.Nil(row.DeliveredAt)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_FiltersCombineConjunctively() {
	ctx := context.Background()

	pending := suite.newOrder("")
	suite.Require().NoError(suite.orderRepo.Add(ctx, pending))

	accepted := suite.newOrder("")
	suite.Require().NoError(accepted.Accept(suite.farmer.ID()))
	suite.Require().NoError(suite.orderRepo.Add(ctx, accepted))

	otherCustomer, err := order.NewOrder(kernel.NewEntityID("customer"), "round", 3, "Elsewhere", "2025-02-15", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, otherCustomer))

	customerID := suite.customer.ID().String()
	status := "pending"
	query := queries.NewGetOrdersQuery(queries.OrdersFilter{
		CustomerID: &customerID,
		Status:     &status,
	})

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending.ID().String(), result[0].OrderID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_FilterByFarmer() {
	ctx := context.Background()

	mine := suite.newOrder("")
	suite.Require().NoError(mine.Accept(suite.farmer.ID()))
	suite.Require().NoError(suite.orderRepo.Add(ctx, mine))

	unassigned := suite.newOrder("")
	suite.Require().NoError(suite.orderRepo.Add(ctx, unassigned))

	farmerID := suite.farmer.ID().String()
	result, err := suite.handler.Handle(ctx, queries.NewGetOrdersQuery(queries.OrdersFilter{FarmerID: &farmerID}))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(mine.ID().String(), result[0].OrderID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_OrdersNewestFirst() {
	ctx := context.Background()

	first := suite.newOrder("first")
	suite.Require().NoError(suite.orderRepo.Add(ctx, first))

	time.Sleep(5 * time.Millisecond)

	second := suite.newOrder("second")
	suite.Require().NoError(suite.orderRepo.Add(ctx, second))

	result, err := suite.handler.Handle(ctx, queries.NewGetOrdersQuery(queries.OrdersFilter{}))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(second.ID().String(), result[0].OrderID)
	suite.Equal(first.ID().String(), result[1].OrderID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_DeliveredOrderCarriesTimestamp() {
	ctx := context.Background()

	o := suite.newOrder("")
	suite.Require().NoError(o.ChangeStatus(order.Delivered))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	result, err := suite.handler.Handle(ctx, queries.NewGetOrdersQuery(queries.OrdersFilter{}))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("delivered", result[0].Status)
	suite.Require().NotNil(result[0].DeliveredAt)
	suite.WithinDuration(time.Now(), *result[0].DeliveredAt, time.Minute)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repositories' tracker dependency for
// test purposes. Tracking is a no-op outside a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.EntityID, _ any) {
}
