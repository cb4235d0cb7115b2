package queries_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/productionrepo"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding data through the
// repositories in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type OrderBoardQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.OrderBoardQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *OrderBoardQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productionrepo.TypesettingDTO{},
		&productionrepo.ProcessingOptionDTO{},
		&productionrepo.StockReservationDTO{},
		&productionrepo.ArtworkDTO{},
		&productionrepo.ShippingInfoDTO{},
		&productionrepo.ShippingPickupDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewOrderBoardQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderBoardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderBoardQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderBoardQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewOrderBoardQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderBoardQueryHandlerTestSuite) TestHandle_ExcludesTerminalOrders() {
	ctx := context.Background()

	open := suite.seedOrder("PO-1", order.Pending, nil)
	completed := suite.seedOrder("PO-2", order.Completed, nil)
	cancelled := suite.seedOrder("PO-3", order.Cancelled, nil)

	query := queries.NewOrderBoardQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(open.ID(), result[0].ID)

	for _, card := range result {
		suite.NotEqual(completed.ID(), card.ID)
		suite.NotEqual(cancelled.ID(), card.ID)
	}
}

func (suite *OrderBoardQueryHandlerTestSuite) TestHandle_GroupsByColumnAndNumbersCards() {
	ctx := context.Background()

	early := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	// Two Pending cards plus one PaymentReceived card. Within the Pending
	// column the earlier in-hands date comes first and the open date last.
	pendingLate := suite.seedOrder("PO-A", order.Pending, &late)
	pendingOpen := suite.seedOrder("PO-B", order.Pending, nil)
	pendingEarly := suite.seedOrder("PO-C", order.Pending, &early)
	paid := suite.seedOrder("PO-D", order.PaymentReceived, nil)

	query := queries.NewOrderBoardQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 4)

	suite.Equal(pendingEarly.ID(), result[0].ID)
	suite.Equal(1, result[0].ColumnPosition)
	suite.Equal(pendingLate.ID(), result[1].ID)
	suite.Equal(2, result[1].ColumnPosition)
	suite.Equal(pendingOpen.ID(), result[2].ID)
	suite.Equal(3, result[2].ColumnPosition)

	// Numbering restarts in the next status column
	suite.Equal(paid.ID(), result[3].ID)
	suite.Equal(1, result[3].ColumnPosition)
	suite.Equal("PaymentReceived", result[3].Status)
}

func (suite *OrderBoardQueryHandlerTestSuite) TestHandle_RecomputesTotalsFromItems() {
	ctx := context.Background()

	seeded := suite.seedOrder("PO-T", order.Pending, nil)

	query := queries.NewOrderBoardQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	card := result[0]
	suite.Equal(seeded.ID(), card.ID)
	suite.Equal(2, card.ItemCount)
	suite.Equal("150", card.Totals.TotalItemAmount.String())
	suite.Equal("10", card.Totals.TotalShippingAmount.String())
	suite.Equal("160", card.Totals.Subtotal.String())
	suite.Equal("10.5", card.Totals.SalesTax.String())
	suite.Equal("170.5", card.Totals.TotalAmount.String())
}

func (suite *OrderBoardQueryHandlerTestSuite) TestHandle_FlagsWalkInAndEstimateLink() {
	ctx := context.Background()

	linked := suite.seedOrder("PO-L", order.Pending, nil)
	loaded, err := suite.orderRepo.Get(ctx, linked.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.LinkEstimate(kernel.NewUUID()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, loaded))

	query := queries.NewOrderBoardQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].WalkIn)
	suite.True(result[0].EstimateLinked)
}

func (suite *OrderBoardQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.OrderBoardQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewOrderBoardQuery constructor")
}

// seedOrder persists a walk-in order with two priced items in the given status.
func (suite *OrderBoardQueryHandlerTestSuite) seedOrder(
	poNumber string,
	status order.Status,
	inHandsDate *time.Time,
) *order.Order {
	ctx := context.Background()

	id := kernel.NewUUID()
	seeded, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), poNumber, inHandsDate, true)
	suite.Require().NoError(err)

	item1, err := order.NewItem(
		kernel.NewUUID(), id, "Flyers", 500,
		decimal.NewFromInt(40), decimal.NewFromInt(100), decimal.NewFromInt(10),
	)
	suite.Require().NoError(err)
	item1.SetPosition(1)
	suite.Require().NoError(seeded.AddItem(item1))

	item2, err := order.NewItem(
		kernel.NewUUID(), id, "Posters", 100,
		decimal.NewFromInt(20), decimal.NewFromInt(50), decimal.Zero,
	)
	suite.Require().NoError(err)
	item2.SetPosition(2)
	suite.Require().NoError(seeded.AddItem(item2))

	if status != order.Pending {
		suite.Require().NoError(seeded.ChangeStatus(status))
	}

	suite.Require().NoError(suite.orderRepo.Add(ctx, seeded))
	return seeded
}

func TestOrderBoardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderBoardQueryHandlerTestSuite))
}
