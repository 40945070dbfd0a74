package postgres_test

import (
	"context"
	"testing"
	"time"

	pgadapter "workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/assignmentrepo"
	"workshop/internal/adapters/out/postgres/historyrepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/selectionrepo"
	"workshop/internal/core/domain/model/history"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// order and history repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&selectionrepo.SelectionDTO{},
		&historyrepo.EntryDTO{},
		&assignmentrepo.AssignmentDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, selections, status_history, assignments").Error)
	suite.factory = pgadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	testOrder := suite.newOrder(order.Inquiry)
	entry, err := history.NewEntry(testOrder.ID(), order.Unknown, order.Inquiry, "registered", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	_, err = uow.HistoryRepository().Append(ctx, entry)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount("orders", 1)
	suite.assertCount("status_history", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAcrossRepositories() {
	ctx := context.Background()

	testOrder := suite.newOrder(order.Inquiry)
	entry, err := history.NewEntry(testOrder.ID(), order.Unknown, order.Inquiry, "", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	_, err = uow.HistoryRepository().Append(ctx, entry)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount("orders", 0)
	suite.assertCount("status_history", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeparateUnitsOfWork_AreIsolated() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.OrderRepository().Add(ctx, suite.newOrder(order.Design)))

	// A second unit of work must not see the uncommitted order.
	second := suite.factory.Create()
	orders, err := second.OrderRepository().GetAllUncompleted(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)

	suite.Require().NoError(first.Commit(ctx))

	orders, err = second.OrderRepository().GetAllUncompleted(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(status order.Status) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), "Acme Metalworks", "press-brake", "", status)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
