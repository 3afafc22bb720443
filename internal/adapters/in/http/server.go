package http

import (
	"errors"
	"log/slog"
	"net/http"

	"pressing/internal/core/application/usecases/commands"
	"pressing/internal/core/application/usecases/queries"
	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/domain/services"
	"pressing/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	completeServiceHandler commands.CompleteServiceCommandHandler
	notifyCustomerHandler  commands.NotifyCustomerCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	countOrdersByStatusHandler queries.CountOrdersByStatusQueryHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	completeServiceHandler commands.CompleteServiceCommandHandler,
	notifyCustomerHandler commands.NotifyCustomerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	countOrdersByStatusHandler queries.CountOrdersByStatusQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		transitionOrderHandler:     transitionOrderHandler,
		completeServiceHandler:     completeServiceHandler,
		notifyCustomerHandler:      notifyCustomerHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		countOrdersByStatusHandler: countOrdersByStatusHandler,
		logger:                     logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/v1/orders - lists orders, optionally by status.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshots, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, 0, len(snapshots))
	for _, snapshot := range snapshots {
		response = append(response, toOrder(snapshot))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a drop-off.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	var lines []string
	if body.Services != nil {
		lines = *body.Services
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), body.OrderNumber, body.CustomerId, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created.Snapshot()))
}

// CountOrdersByStatus handles GET /api/v1/orders/counts.
func (s *Server) CountOrdersByStatus(ctx echo.Context) error {
	counts, err := s.countOrdersByStatusHandler.Handle(ctx.Request().Context(), queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make(servers.StatusCounts, len(counts))
	for status, count := range counts {
		response[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}. The actions listed depend on
// the X-User-Role header; without it the order has none.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderParams) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	var role kernel.Role
	if params.XUserRole != nil {
		role = kernel.ParseRole(*params.XUserRole)
	}

	query, err := queries.NewGetOrderQuery(id, role)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	actions := make([]servers.Action, 0, len(response.Actions))
	for _, action := range response.Actions {
		actions = append(actions, servers.Action{
			Target:     servers.OrderStatus(action.Target.String()),
			Label:      action.Label,
			ActionName: action.ActionName,
		})
	}

	return ctx.JSON(http.StatusOK, servers.OrderDetails{
		Order:   toOrder(response.Order),
		Actions: actions,
	})
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
//
// A transition whose side effect failed is still applied: the response is
// 502 and carries the order as persisted.
func (s *Server) TransitionOrder(ctx echo.Context, orderId servers.OrderId, params servers.TransitionOrderParams) error {
	var body servers.TransitionOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	target, err := order.ParseStatus(string(body.Target))
	if err != nil {
		return s.fail(ctx, err)
	}

	fields := order.TransitionFields{
		AssignedTo:  deref(body.AssignedTo),
		CompletedAt: body.CompletedAt,
		DeliveredAt: body.DeliveredAt,
		DeliveredBy: deref(body.DeliveredBy),
	}
	actor := kernel.NewActor(params.XUserID, params.XUserRole)

	cmd, err := commands.NewTransitionOrderCommand(id, target, actor, fields, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	var sideEffectErr *services.SideEffectError
	if errors.As(err, &sideEffectErr) && result.Order != nil {
		s.logger.WarnContext(ctx.Request().Context(), "transition applied with failed side effect",
			"order_id", id.String(), "error", err)
		return ctx.JSON(http.StatusBadGateway, servers.SideEffectFailure{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
			Order:   toOrder(result.Order.Snapshot()),
		})
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(result.Order.Snapshot()))
}

// CompleteService handles POST /api/v1/orders/{orderId}/services/{serviceIndex}/complete.
func (s *Server) CompleteService(
	ctx echo.Context,
	orderId servers.OrderId,
	serviceIndex int,
	params servers.CompleteServiceParams,
) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompleteServiceCommand(id, serviceIndex, kernel.NewActor(params.XUserID, params.XUserRole))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.completeServiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated.Snapshot()))
}

// NotifyCustomer handles POST /api/v1/orders/{orderId}/notify-customer.
func (s *Server) NotifyCustomer(ctx echo.Context, orderId servers.OrderId, params servers.NotifyCustomerParams) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewNotifyCustomerCommand(id, kernel.NewActor(params.XUserID, params.XUserRole))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.notifyCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated.Snapshot()))
}

// fail writes err with the status code matching its kind. Business errors are
// returned verbatim, unexpected ones are logged and hidden.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := StatusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
