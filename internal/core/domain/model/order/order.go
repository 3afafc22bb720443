package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/pkg/errs"
	"pressing/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned for orders not built by NewOrder or Restore.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or Restore")

// ServiceLine is one cleaning service of an order ("wash", "press", ...).
type ServiceLine struct {
	Name      string
	Completed bool
}

// StatusChange is one entry of the audit trail. Entries are appended on
// every successful transition and never rewritten.
type StatusChange struct {
	From      Status
	To        Status
	Timestamp time.Time
	UserID    string
	UserRole  kernel.Role
}

// Order is a customer drop-off tracked through the cleaning stages. It is the
// aggregate root of the lifecycle.
//
// Invariants:
//   - status is always a valid Status
//   - len(history) equals the number of transitions since creation
//   - the order reaches Ready only with every service completed
//   - the order reaches Delivered only once the customer was notified
//
// Transition never mutates its receiver: it returns a new *Order so snapshots
// handed to callers are never aliased.
type Order struct {
	id               kernel.UUID
	orderNumber      string
	customerID       string
	assignedTo       string
	services         []ServiceLine
	status           Status
	customerNotified bool
	history          []StatusChange
	createdAt        time.Time
	lastStatusChange *time.Time
	completedAt      *time.Time
	deliveredAt      *time.Time
	deliveredBy      string
	version          int64

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order at version 1. services may be empty: the
// services rule only applies when work starts.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID string,
	services []ServiceLine,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: createdAt,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setServices(services),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the full state of an order, used by adapters to persist and
// render orders.
type Snapshot struct {
	ID               kernel.UUID
	OrderNumber      string
	CustomerID       string
	AssignedTo       string
	Services         []ServiceLine
	Status           Status
	CustomerNotified bool
	History          []StatusChange
	CreatedAt        time.Time
	LastStatusChange *time.Time
	CompletedAt      *time.Time
	DeliveredAt      *time.Time
	DeliveredBy      string
	Version          int64
}

// Restore rebuilds an order from persisted state. An Unknown status is read as
// Pending; any other invalid status is rejected.
func Restore(s Snapshot) (*Order, error) {
	status := s.Status
	if status == Unknown {
		status = Pending
	}

	o := &Order{
		customerNotified: s.CustomerNotified,
		assignedTo:       s.AssignedTo,
		history:          slices.Clone(s.History),
		createdAt:        s.CreatedAt,
		lastStatusChange: cloneTime(s.LastStatusChange),
		completedAt:      cloneTime(s.CompletedAt),
		deliveredAt:      cloneTime(s.DeliveredAt),
		deliveredBy:      s.DeliveredBy,
		version:          s.Version,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setOrderNumber(s.OrderNumber),
		o.setCustomerID(s.CustomerID),
		o.setServices(s.Services),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot returns a deep copy of the order state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:               o.id,
		OrderNumber:      o.orderNumber,
		CustomerID:       o.customerID,
		AssignedTo:       o.assignedTo,
		Services:         slices.Clone(o.services),
		Status:           o.status,
		CustomerNotified: o.customerNotified,
		History:          slices.Clone(o.history),
		CreatedAt:        o.createdAt,
		LastStatusChange: cloneTime(o.lastStatusChange),
		CompletedAt:      cloneTime(o.completedAt),
		DeliveredAt:      cloneTime(o.deliveredAt),
		DeliveredBy:      o.deliveredBy,
		Version:          o.version,
	}
}

// Validate ensures the order was built by NewOrder or Restore.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber is the human-readable code printed on the ticket.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

func (o *Order) CustomerID() string {
	return o.customerID
}

// AssignedTo is the staff member working on the order, empty until assigned.
func (o *Order) AssignedTo() string {
	return o.assignedTo
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CustomerNotified() bool {
	return o.customerNotified
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) LastStatusChange() *time.Time {
	return cloneTime(o.lastStatusChange)
}

func (o *Order) CompletedAt() *time.Time {
	return cloneTime(o.completedAt)
}

func (o *Order) DeliveredAt() *time.Time {
	return cloneTime(o.deliveredAt)
}

func (o *Order) DeliveredBy() string {
	return o.deliveredBy
}

// Version is the optimistic concurrency token of the stored order.
func (o *Order) Version() int64 {
	return o.version
}

// Services returns a copy of the service lines.
func (o *Order) Services() []ServiceLine {
	return slices.Clone(o.services)
}

// StatusHistory returns a copy of the audit trail, oldest first.
func (o *Order) StatusHistory() []StatusChange {
	return slices.Clone(o.history)
}

// AllServicesCompleted reports whether every service line is done.
func (o *Order) AllServicesCompleted() bool {
	for _, s := range o.services {
		if !s.Completed {
			return false
		}
	}
	return true
}

// CompleteService marks the service at index as done. Staff do this while the
// order is being worked on.
func (o *Order) CompleteService(index int) error {
	if o.status != Pending && o.status != InProgress {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("services cannot be updated while the order is %s", o.status),
		)
	}
	if index < 0 || index >= len(o.services) {
		return errs.NewValueIsOutOfRangeError("service index", index, 0, len(o.services)-1)
	}
	o.services[index].Completed = true
	return nil
}

// MarkCustomerNotified records that the customer was told the order is ready.
func (o *Order) MarkCustomerNotified() error {
	if o.status != Ready {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("customer can only be notified when the order is ready, not %s", o.status),
		)
	}
	o.customerNotified = true
	return nil
}

// StampCompleted sets completedAt. It is called by the lifecycle when the
// order reaches Ready.
func (o *Order) StampCompleted(at time.Time) {
	o.completedAt = &at
}

// StampDelivered sets deliveredAt. It is called by the lifecycle when the
// order reaches Delivered.
func (o *Order) StampDelivered(at time.Time) {
	o.deliveredAt = &at
}

// AdvanceVersion moves the order to the version written by a repository.
func (o *Order) AdvanceVersion() {
	o.version++
}

// TransitionFields carries the values a caller supplies alongside a
// transition. Zero values mean "not supplied"; supplied values override the
// order's own when the transition is applied.
type TransitionFields struct {
	AssignedTo  string
	CompletedAt *time.Time
	DeliveredAt *time.Time
	DeliveredBy string
}

// ValidateTransition checks role, graph and the edge-specific rule without
// changing anything. Calling it repeatedly with the same inputs yields the
// same result.
func (o *Order) ValidateTransition(target Status, role kernel.Role, fields TransitionFields) error {
	if err := o.status.Validate(); err != nil {
		return err
	}
	if !CanTransition(o.status, target, role) {
		return errs.NewTransitionNotAllowedError(o.status.String(), target.String())
	}

	rule, ok := getTransitionRules()[edge{o.status, target}]
	if !ok {
		return nil
	}
	return rule.validate(o, fields)
}

// Transition validates and applies a status change, returning the new order.
// The receiver is left untouched. The returned order merges fields, carries
// the new status and one more history entry stamped at.
func (o *Order) Transition(target Status, actor kernel.Actor, fields TransitionFields, at time.Time) (*Order, error) {
	if err := o.ValidateTransition(target, actor.Role, fields); err != nil {
		return nil, err
	}

	next := o.clone()
	next.merge(fields)
	next.history = append(next.history, StatusChange{
		From:      o.status,
		To:        target,
		Timestamp: at,
		UserID:    actor.ID,
		UserRole:  actor.Role,
	})
	next.status = target
	next.lastStatusChange = &at

	return next, nil
}

func (o *Order) clone() *Order {
	c := *o
	c.services = slices.Clone(o.services)
	c.history = slices.Clone(o.history)
	c.lastStatusChange = cloneTime(o.lastStatusChange)
	c.completedAt = cloneTime(o.completedAt)
	c.deliveredAt = cloneTime(o.deliveredAt)
	return &c
}

func (o *Order) merge(fields TransitionFields) {
	if fields.AssignedTo != "" {
		o.assignedTo = fields.AssignedTo
	}
	if fields.CompletedAt != nil {
		o.completedAt = cloneTime(fields.CompletedAt)
	}
	if fields.DeliveredAt != nil {
		o.deliveredAt = cloneTime(fields.DeliveredAt)
	}
	if fields.DeliveredBy != "" {
		o.deliveredBy = fields.DeliveredBy
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setServices(services []ServiceLine) error {
	for i, s := range services {
		if strings.TrimSpace(s.Name) == "" {
			return errs.NewValueIsRequiredErrorWithCause("service name", fmt.Errorf("service %d has no name", i))
		}
	}
	o.services = slices.Clone(services)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
