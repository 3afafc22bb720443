package redisstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pressing/internal/adapters/out/redisstore"
	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisStoreIntegrationTestSuite runs the collection store and the order
// repository against a real Redis container.
type RedisStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	store     *redisstore.CollectionStore
	manager   kernel.Actor
}

func (suite *RedisStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	addr, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: addr})
	suite.Require().NoError(suite.client.Ping(ctx).Err())

	suite.store = redisstore.NewCollectionStore(suite.client)
	suite.manager = kernel.Actor{ID: "mgr1", Role: kernel.RoleManager}
}

func (suite *RedisStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
}

func (suite *RedisStoreIntegrationTestSuite) TestLoad_MissingCollection_IsEmpty() {
	snapshots, err := suite.store.Load(context.Background(), "orders")

	suite.Require().NoError(err)
	suite.Empty(snapshots)
}

func (suite *RedisStoreIntegrationTestSuite) TestSave_RoundTripsCollection() {
	ctx := context.Background()
	at := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	started, err := suite.newOrder("MP-0001").Transition(order.InProgress, suite.manager,
		order.TransitionFields{AssignedTo: "mgr1"}, at)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.Save(ctx, "orders", []order.Snapshot{started.Snapshot()}))
	snapshots, err := suite.store.Load(ctx, "orders")

	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 1)
	suite.Equal(started.Snapshot(), snapshots[0])
}

func (suite *RedisStoreIntegrationTestSuite) TestLoad_DocumentWithoutStatus_ReadsAsPending() {
	ctx := context.Background()
	payload := fmt.Sprintf(`[{"id":%q,"orderNumber":"MP-9","customerId":"c","services":[]}]`,
		kernel.NewUUID().String())
	suite.Require().NoError(suite.client.Set(ctx, "pressing:collection:orders", payload, 0).Err())

	snapshots, err := suite.store.Load(ctx, "orders")

	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 1)
	suite.Equal(order.Pending, snapshots[0].Status)
	suite.Equal(int64(1), snapshots[0].Version)
}

func (suite *RedisStoreIntegrationTestSuite) TestAdd_ThenGet_RestoresOrder() {
	ctx := context.Background()
	repository := redisstore.NewOrderRepository(suite.store, "orders")
	o := suite.newOrder("MP-0001")

	suite.Require().NoError(repository.Add(ctx, o))
	restored, err := repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.Snapshot(), restored.Snapshot())
}

func (suite *RedisStoreIntegrationTestSuite) TestAdd_Duplicates_AreRefused() {
	ctx := context.Background()
	repository := redisstore.NewOrderRepository(suite.store, "orders")
	o := suite.newOrder("MP-0001")
	suite.Require().NoError(repository.Add(ctx, o))

	suite.Require().ErrorIs(repository.Add(ctx, o), errs.ErrValueIsInvalid)

	err := repository.Add(ctx, suite.newOrder("MP-0001"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Contains(err.Error(), "orderNumber MP-0001")

	orders, err := repository.List(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *RedisStoreIntegrationTestSuite) TestGetAndUpdate_MissingOrder_ReturnNotFound() {
	ctx := context.Background()
	repository := redisstore.NewOrderRepository(suite.store, "orders")

	_, err := repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(repository.Update(ctx, suite.newOrder("MP-2")), errs.ErrObjectNotFound)
}

func (suite *RedisStoreIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()
	repository := redisstore.NewOrderRepository(suite.store, "orders")
	o := suite.newOrder("MP-0001")
	suite.Require().NoError(repository.Add(ctx, o))

	cancelled, err := o.Transition(order.Cancelled, suite.manager, order.TransitionFields{}, time.Now().UTC())
	suite.Require().NoError(err)
	started, err := o.Transition(order.InProgress, suite.manager,
		order.TransitionFields{AssignedTo: "mgr1"}, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(repository.Update(ctx, cancelled))
	suite.Equal(int64(2), cancelled.Version())

	err = repository.Update(ctx, started)
	var versionErr *errs.VersionIsInvalidError
	suite.Require().ErrorAs(err, &versionErr)
	suite.Equal(int64(1), versionErr.Expected)
	suite.Equal(int64(2), versionErr.Actual)

	restored, err := repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, restored.Status())
}

func (suite *RedisStoreIntegrationTestSuite) TestAdd_Concurrent_LosesNothing() {
	ctx := context.Background()
	repository := redisstore.NewOrderRepository(suite.store, "orders")

	failures := suite.parallel(4, func(i int) error {
		o, err := order.NewOrder(kernel.NewUUID(), fmt.Sprintf("MP-%d", i), "c", nil, time.Now().UTC())
		if err != nil {
			return err
		}
		return repository.Add(ctx, o)
	})

	orders, err := repository.List(ctx, nil)
	suite.Require().NoError(err)
	suite.Len(orders, 4-len(failures))
	for _, err := range failures {
		suite.Require().ErrorIs(err, redisstore.ErrCollectionBusy)
	}
}

func (suite *RedisStoreIntegrationTestSuite) TestUpdate_ConcurrentDistinctOrders_NeverConflict() {
	ctx := context.Background()
	repository := redisstore.NewOrderRepository(suite.store, "orders")
	const count = 8

	orders := make([]*order.Order, 0, count)
	for i := range count {
		o := suite.newOrder(fmt.Sprintf("MP-%04d", i))
		suite.Require().NoError(repository.Add(ctx, o))
		orders = append(orders, o)
	}

	updated := make([]bool, count)
	failures := suite.parallel(count, func(i int) error {
		next, err := orders[i].Transition(order.Cancelled, suite.manager, order.TransitionFields{}, time.Now().UTC())
		if err != nil {
			return err
		}
		if err = repository.Update(ctx, next); err != nil {
			return err
		}
		updated[i] = true
		return nil
	})

	suite.Less(len(failures), count)
	for _, err := range failures {
		suite.Require().NotErrorIs(err, errs.ErrVersionIsInvalid)
		suite.Require().ErrorIs(err, redisstore.ErrCollectionBusy)
	}
	for i, o := range orders {
		restored, err := repository.Get(ctx, o.ID())
		suite.Require().NoError(err)
		if updated[i] {
			suite.Equal(order.Cancelled, restored.Status())
			suite.Equal(int64(2), restored.Version())
		} else {
			suite.Equal(order.Pending, restored.Status())
			suite.Equal(int64(1), restored.Version())
		}
	}
}

func (suite *RedisStoreIntegrationTestSuite) TestListAndCount_ByStatus() {
	ctx := context.Background()
	repository := redisstore.NewOrderRepository(suite.store, "orders")
	first := suite.newOrder("MP-0001")
	second := suite.newOrder("MP-0002")
	suite.Require().NoError(repository.Add(ctx, first))
	suite.Require().NoError(repository.Add(ctx, second))
	cancelled, err := second.Transition(order.Cancelled, suite.manager, order.TransitionFields{}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repository.Update(ctx, cancelled))

	status := order.Cancelled
	onlyCancelled, err := repository.List(ctx, &status)
	suite.Require().NoError(err)
	suite.Require().Len(onlyCancelled, 1)
	suite.Equal("MP-0002", onlyCancelled[0].OrderNumber())

	counts, err := repository.CountByStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, counts[order.Pending])
	suite.Equal(1, counts[order.Cancelled])
	suite.Equal(0, counts[order.Ready])
}

func (suite *RedisStoreIntegrationTestSuite) TestCollections_AreIsolated() {
	ctx := context.Background()
	shop := redisstore.NewOrderRepository(suite.store, "shop")
	depot := redisstore.NewOrderRepository(suite.store, "depot")
	suite.Require().NoError(shop.Add(ctx, suite.newOrder("MP-0001")))

	orders, err := depot.List(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(orders)
	suite.Require().NoError(depot.Add(ctx, suite.newOrder("MP-0001")))
}

func (suite *RedisStoreIntegrationTestSuite) newOrder(number string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, "cust1",
		[]order.ServiceLine{{Name: "wash"}}, time.Now().UTC().Truncate(time.Second))
	suite.Require().NoError(err)
	return o
}

// parallel runs fn for 0..n-1 in separate goroutines and returns the errors.
func (suite *RedisStoreIntegrationTestSuite) parallel(n int, fn func(i int) error) []error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []error
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(i); err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return failures
}

func TestRedisStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreIntegrationTestSuite))
}
