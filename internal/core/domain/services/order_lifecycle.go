package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/ports"
	"pressing/internal/pkg/errs"
)

// ErrSideEffectFailed matches every *SideEffectError via errors.Is.
var ErrSideEffectFailed = errors.New("side effect failed")

// SideEffectError reports a hook fault raised after a transition was applied.
// Order is the applied snapshot: its status change stands.
type SideEffectError struct {
	Order *order.Order
	From  order.Status
	To    order.Status
	Cause error
}

func (e *SideEffectError) Error() string {
	return fmt.Sprintf("%s after transition %s -> %s: %v", ErrSideEffectFailed, e.From, e.To, e.Cause)
}

func (e *SideEffectError) Unwrap() error {
	return e.Cause
}

func (e *SideEffectError) Is(target error) bool {
	return target == ErrSideEffectFailed
}

// TransitionHook runs on the new snapshot once a transition is applied. It may
// stamp fields on next and returns the notification to send, or nil.
type TransitionHook func(next *order.Order, at time.Time) (*ports.Notification, error)

type hookKey struct {
	from order.Status
	to   order.Status
}

// Transition is the outcome of ExecuteTransition.
type Transition struct {
	Order *order.Order
	From  order.Status

	notification *pendingNotification
}

type pendingNotification struct {
	done chan struct{}
	err  error
}

// AwaitNotification blocks until the notifications triggered by the
// transition were delivered or failed. It returns nil when the edge sends
// nothing. Giving up on ctx leaves the transition applied.
func (t Transition) AwaitNotification(ctx context.Context) error {
	if t.notification == nil {
		return nil
	}
	select {
	case <-t.notification.done:
		return t.notification.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OrderLifecycle validates and executes status transitions of orders and runs
// the side effects attached to them.
//
// Business rules:
//   - only staff roles move orders, along the edges of the status graph
//   - ExecuteTransition never mutates the order it is given
//   - a failed customer notification never fails the transition: it is
//     logged, counted and reported by Transition.AwaitNotification
//   - a hook fault returns the applied snapshot with a *SideEffectError
//
// Example:
//
//	lifecycle := services.NewOrderLifecycle(notifier, kernel.SystemClock{}, metrics, logger, 5*time.Second)
//	result, err := lifecycle.ExecuteTransition(ctx, o, order.InProgress, actor,
//	    order.TransitionFields{AssignedTo: actor.ID})
//	if err != nil {
//	    return err
//	}
//	save(result.Order)
type OrderLifecycle struct {
	notifier            ports.Notifier
	clock               kernel.Clock
	metrics             ports.MetricsRecorder
	logger              *slog.Logger
	notificationTimeout time.Duration
	hooks               map[hookKey][]TransitionHook
}

// NewOrderLifecycle wires the lifecycle to its collaborators. A zero
// notificationTimeout sends notifications without a deadline.
func NewOrderLifecycle(
	notifier ports.Notifier,
	clock kernel.Clock,
	metrics ports.MetricsRecorder,
	logger *slog.Logger,
	notificationTimeout time.Duration,
) *OrderLifecycle {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	l := &OrderLifecycle{
		notifier:            notifier,
		clock:               clock,
		metrics:             metrics,
		logger:              logger.With("component", "order_lifecycle"),
		notificationTimeout: notificationTimeout,
		hooks:               make(map[hookKey][]TransitionHook),
	}

	l.RegisterHook(order.Pending, order.InProgress, notifyHook(ports.NotificationOrderStarted))
	l.RegisterHook(order.InProgress, order.Ready, func(next *order.Order, at time.Time) (*ports.Notification, error) {
		next.StampCompleted(at)
		return notifyHook(ports.NotificationOrderReady)(next, at)
	})
	l.RegisterHook(order.Ready, order.Delivered, func(next *order.Order, at time.Time) (*ports.Notification, error) {
		next.StampDelivered(at)
		return notifyHook(ports.NotificationOrderDelivered)(next, at)
	})

	return l
}

func notifyHook(kind ports.NotificationKind) TransitionHook {
	return func(next *order.Order, at time.Time) (*ports.Notification, error) {
		n := CustomerNotification(kind, next, at)
		return &n, nil
	}
}

// RegisterHook appends a hook for from -> to. Hooks run in registration
// order. It must not be called concurrently with ExecuteTransition.
func (l *OrderLifecycle) RegisterHook(from, to order.Status, hook TransitionHook) {
	key := hookKey{from, to}
	l.hooks[key] = append(l.hooks[key], hook)
}

// CanTransition reports whether role may move an order from current to target.
func (l *OrderLifecycle) CanTransition(current, target order.Status, role kernel.Role) bool {
	if err := current.Validate(); err != nil {
		l.logger.Warn("invalid order state", "status", int(current), "error", err)
		return false
	}
	return order.CanTransition(current, target, role)
}

// ValidateTransition checks a transition without applying it.
func (l *OrderLifecycle) ValidateTransition(
	o *order.Order,
	target order.Status,
	role kernel.Role,
	fields order.TransitionFields,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.Status().Validate(); err != nil {
		l.logger.Warn("invalid order state", "order_id", o.ID().String(), "status", int(o.Status()))
		return err
	}
	return o.ValidateTransition(target, role, fields)
}

// ExecuteTransition validates and applies a transition, then runs the hooks of
// the edge. Notifications are sent in the background; see
// Transition.AwaitNotification.
func (l *OrderLifecycle) ExecuteTransition(
	ctx context.Context,
	o *order.Order,
	target order.Status,
	actor kernel.Actor,
	fields order.TransitionFields,
) (Transition, error) {
	if err := l.ValidateTransition(o, target, actor.Role, fields); err != nil {
		return Transition{}, err
	}

	now := l.clock.Now()
	next, err := o.Transition(target, actor, fields, now)
	if err != nil {
		return Transition{}, err
	}

	from := o.Status()
	l.metrics.TransitionApplied(from.String(), target.String())
	l.logger.InfoContext(ctx, "order transitioned",
		"order_id", next.ID().String(),
		"from", from.String(),
		"to", target.String(),
		"user_id", actor.ID,
		"user_role", actor.Role.String(),
	)

	result := Transition{Order: next, From: from}

	notifications, hookErr := l.runHooks(from, target, next, now)
	if hookErr != nil {
		l.logger.ErrorContext(ctx, "transition hook failed",
			"order_id", next.ID().String(),
			"from", from.String(),
			"to", target.String(),
			"error", hookErr,
		)
		return result, &SideEffectError{Order: next, From: from, To: target, Cause: hookErr}
	}

	result.notification = l.dispatch(ctx, notifications)
	return result, nil
}

// AvailableActions lists the transitions role may trigger from current.
func (l *OrderLifecycle) AvailableActions(current order.Status, role kernel.Role) []order.Action {
	return order.AvailableActions(current, role)
}

// RemindCustomer tells the customer of a ready order that it awaits pickup.
// Unlike transition notifications it is sent synchronously: the caller marks
// the customer as notified only once delivery succeeded.
func (l *OrderLifecycle) RemindCustomer(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Ready {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("customer can only be notified when the order is ready, not %s", o.Status()),
		)
	}
	return l.send(ctx, CustomerNotification(ports.NotificationOrderReadyReminder, o, l.clock.Now()))
}

func (l *OrderLifecycle) runHooks(
	from, to order.Status,
	next *order.Order,
	at time.Time,
) (notifications []ports.Notification, err error) {
	defer func() {
		if r := recover(); r != nil {
			notifications = nil
			err = fmt.Errorf("hook panicked: %v", r)
		}
	}()

	for _, hook := range l.hooks[hookKey{from, to}] {
		n, hookErr := hook(next, at)
		if hookErr != nil {
			return nil, hookErr
		}
		if n != nil {
			notifications = append(notifications, *n)
		}
	}
	return notifications, nil
}

func (l *OrderLifecycle) dispatch(ctx context.Context, notifications []ports.Notification) *pendingNotification {
	if len(notifications) == 0 {
		return nil
	}

	p := &pendingNotification{done: make(chan struct{})}
	sendCtx := context.WithoutCancel(ctx)

	go func() {
		defer close(p.done)

		failures := make([]error, 0)
		for _, n := range notifications {
			if err := l.send(sendCtx, n); err != nil {
				failures = append(failures, err)
			}
		}
		p.err = errors.Join(failures...)
	}()

	return p
}

func (l *OrderLifecycle) send(ctx context.Context, n ports.Notification) (err error) {
	if l.notificationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.notificationTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panicked: %v", r)
		}
		if err != nil {
			l.metrics.NotificationFailed(n.Kind)
			l.logger.WarnContext(ctx, "customer notification failed",
				"order_id", n.OrderID.String(),
				"user_id", n.UserID,
				"kind", n.Kind.String(),
				"error", err,
			)
		}
	}()

	if err = l.notifier.Notify(ctx, n); err != nil {
		return fmt.Errorf("notify %s of %s: %w", n.UserID, n.Kind, err)
	}
	return nil
}

type nopMetrics struct{}

func (nopMetrics) TransitionApplied(string, string) {}

func (nopMetrics) NotificationFailed(ports.NotificationKind) {}

func (nopMetrics) OrdersByStatus(map[string]int) {}
