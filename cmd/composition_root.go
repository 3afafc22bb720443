package cmd

import (
	"log/slog"
	"net/http"

	api "pressing/internal/adapters/in/http"
	"pressing/internal/adapters/out/metrics"
	"pressing/internal/adapters/out/notify"
	"pressing/internal/adapters/out/rabbitmq"
	"pressing/internal/adapters/out/websocket"
	"pressing/internal/core/application/usecases/commands"
	"pressing/internal/core/application/usecases/queries"
	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/services"
	"pressing/internal/core/ports"
	"pressing/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	clock      kernel.Clock
	lifecycle  *services.OrderLifecycle
	metrics    *metrics.Recorder
	hub        *websocket.Hub
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. A nil publisher leaves the broker
// out of the notification fan-out.
func NewCompositionRoot(
	configs Config,
	uowFactory ports.UnitOfWorkFactory,
	publisher *rabbitmq.Publisher,
	logger *slog.Logger,
) CompositionRoot {
	recorder := metrics.NewRecorder()
	hub := websocket.NewHub(logger)

	notifiers := []ports.Notifier{notify.NewLogNotifier(logger), hub}
	if publisher != nil {
		notifiers = append(notifiers, publisher)
	}

	clock := kernel.SystemClock{}
	lifecycle := services.NewOrderLifecycle(
		notify.NewFanOut(notifiers...),
		clock,
		recorder,
		logger,
		configs.NotificationTimeout,
	)

	return CompositionRoot{
		configs:    configs,
		uowFactory: uowFactory,
		clock:      clock,
		lifecycle:  lifecycle,
		metrics:    recorder,
		hub:        hub,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// orderRepository reads outside of any transaction.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.lifecycle, c.clock)
}

func (c *CompositionRoot) CreateCompleteServiceCommandHandler() commands.CompleteServiceCommandHandler {
	return commands.NewCompleteServiceCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateNotifyCustomerCommandHandler() commands.NotifyCustomerCommandHandler {
	return commands.NewNotifyCustomerCommandHandler(c.orderUoWFactory(), c.lifecycle)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateServer() *api.Server {
	return api.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateCompleteServiceCommandHandler(),
		c.CreateNotifyCustomerCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateCountOrdersByStatusQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return api.NewRouter(c.CreateServer(), c.hub, c.MetricsHandler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.metrics,
		c.configs.StatusReportSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return c.metrics.Handler()
}

// Close disconnects the live update clients.
func (c *CompositionRoot) Close() {
	c.hub.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
