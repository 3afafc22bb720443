package order

import (
	"errors"

	"pressing/internal/pkg/errs"
)

// Messages of the precondition failures reported by ValidateTransition.
const (
	// ReasonNoServices refuses starting work on an order without services.
	ReasonNoServices = "order must contain at least one service"
	// ReasonServicesIncomplete refuses marking an order ready while a service is open.
	ReasonServicesIncomplete = "all services must be completed"
	// ReasonCustomerNotNotified refuses delivery before the customer was told.
	ReasonCustomerNotNotified = "customer must be notified before delivery"
)

// requirement is a field that must be supplied by the caller or already be
// set on the order.
type requirement struct {
	field   string
	present func(o *Order, f TransitionFields) bool
}

// transitionRule guards one edge of the graph.
type transitionRule struct {
	required []requirement
	check    func(o *Order) bool
	reason   string
}

func getTransitionRules() map[edge]transitionRule {
	return map[edge]transitionRule{
		{Pending, InProgress}: {
			required: []requirement{
				{"assignedTo", func(o *Order, f TransitionFields) bool { return f.AssignedTo != "" || o.assignedTo != "" }},
			},
			check:  func(o *Order) bool { return len(o.services) > 0 },
			reason: ReasonNoServices,
		},
		{InProgress, Ready}: {
			required: []requirement{
				{"completedAt", func(o *Order, f TransitionFields) bool { return f.CompletedAt != nil || o.completedAt != nil }},
			},
			check:  (*Order).AllServicesCompleted,
			reason: ReasonServicesIncomplete,
		},
		{Ready, Delivered}: {
			required: []requirement{
				{"deliveredAt", func(o *Order, f TransitionFields) bool { return f.DeliveredAt != nil || o.deliveredAt != nil }},
				{"deliveredBy", func(o *Order, f TransitionFields) bool { return f.DeliveredBy != "" || o.deliveredBy != "" }},
			},
			check:  (*Order).CustomerNotified,
			reason: ReasonCustomerNotNotified,
		},
	}
}

// validate reports every missing field at once, then the business check.
func (r transitionRule) validate(o *Order, fields TransitionFields) error {
	missing := make([]error, 0, len(r.required))
	for _, req := range r.required {
		if !req.present(o, fields) {
			missing = append(missing, errs.NewValueIsRequiredError(req.field))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return err
	}

	if !r.check(o) {
		return errs.NewPreconditionFailedError(r.reason)
	}
	return nil
}
