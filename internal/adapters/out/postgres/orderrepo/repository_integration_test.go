package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pressing/internal/adapters/out/postgres/orderrepo"
	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(orderrepo.AutoMigrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_status_changes, order_service_lines, orders",
	).Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_StoresServiceLines() {
	o := suite.newOrder("MP-0001", "wash", "press")

	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.ServiceLineDTO{}, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsInvalidValue() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("MP-0001", "wash")))

	err := suite.repository.Add(ctx, suite.newOrder("MP-0001", "iron"))

	var invalidErr *errs.ValueIsInvalidError
	suite.Require().ErrorAs(err, &invalidErr)
	suite.Contains(err.Error(), "MP-0001")
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresEverything() {
	ctx := context.Background()
	o := suite.newOrder("MP-0002", "wash", "iron")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	restored, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
	suite.Equal("MP-0002", restored.OrderNumber())
	suite.Equal("cust1", restored.CustomerID())
	suite.Equal(order.Pending, restored.Status())
	suite.Equal([]order.ServiceLine{{Name: "wash"}, {Name: "iron"}}, restored.Services())
	suite.Equal(int64(1), restored.Version())
	suite.Empty(restored.StatusHistory())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	restored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(restored)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_EmptyStatus_ReadsAsPending() {
	ctx := context.Background()
	o := suite.newOrder("MP-0003", "wash")
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(suite.db.Exec("UPDATE orders SET status = '' WHERE id = ?", o.ID().Bytes()).Error)

	restored, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(order.Pending, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Transitions_AppendHistoryAndAdvanceVersion() {
	ctx := context.Background()
	o := suite.newOrder("MP-0004", "wash")
	suite.Require().NoError(suite.repository.Add(ctx, o))
	actor := kernel.Actor{ID: "mgr1", Role: kernel.RoleManager}
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	started, err := o.Transition(order.InProgress, actor, order.TransitionFields{AssignedTo: "mgr1"}, at)
	suite.Require().NoError(err)
	suite.Require().NoError(started.CompleteService(0))
	suite.Require().NoError(suite.repository.Update(ctx, started))
	suite.Equal(int64(2), started.Version())

	ready, err := started.Transition(order.Ready, actor, order.TransitionFields{CompletedAt: &at}, at.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, ready))

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, restored.Status())
	suite.Equal("mgr1", restored.AssignedTo())
	suite.True(restored.AllServicesCompleted())
	suite.Equal(int64(3), restored.Version())
	suite.Equal(at, *restored.CompletedAt())
	suite.Equal(ready.StatusHistory(), restored.StatusHistory())
	suite.assertCount(&orderrepo.StatusChangeDTO{}, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()
	o := suite.newOrder("MP-0005", "wash")
	suite.Require().NoError(suite.repository.Add(ctx, o))
	actor := kernel.Actor{ID: "mgr1", Role: kernel.RoleManager}

	first, err := o.Transition(order.Cancelled, actor, order.TransitionFields{}, time.Now().UTC())
	suite.Require().NoError(err)
	second, err := o.Transition(order.InProgress, actor, order.TransitionFields{AssignedTo: "mgr1"}, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, first))
	err = suite.repository.Update(ctx, second)

	var versionErr *errs.VersionIsInvalidError
	suite.Require().ErrorAs(err, &versionErr)
	suite.Equal(int64(1), versionErr.Expected)
	suite.Equal(int64(2), versionErr.Actual)

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, restored.Status())
	suite.Len(restored.StatusHistory(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o := suite.newOrder("MP-0006", "wash")

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_FiltersByStatus() {
	ctx := context.Background()
	actor := kernel.Actor{ID: "mgr1", Role: kernel.RoleManager}
	pending := suite.newOrder("MP-0007", "wash")
	toCancel := suite.newOrder("MP-0008", "wash")
	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, toCancel))
	cancelled, err := toCancel.Transition(order.Cancelled, actor, order.TransitionFields{}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, cancelled))

	all, err := suite.repository.List(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	status := order.Cancelled
	onlyCancelled, err := suite.repository.List(ctx, &status)
	suite.Require().NoError(err)
	suite.Require().Len(onlyCancelled, 1)
	suite.Equal("MP-0008", onlyCancelled[0].OrderNumber())

	counts, err := suite.repository.CountByStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, counts[order.Pending])
	suite.Equal(1, counts[order.Cancelled])
	suite.Equal(0, counts[order.Delivered])
	suite.Len(counts, len(order.AllStatuses()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(number string, services ...string) *order.Order {
	lines := make([]order.ServiceLine, 0, len(services))
	for _, name := range services {
		lines = append(lines, order.ServiceLine{Name: name})
	}
	o, err := order.NewOrder(kernel.NewUUID(), number, "cust1", lines, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
