package queries

import (
	"errors"

	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders oldest first, optionally only those in one
// status.
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates status when given. A nil status lists every order.
func NewListOrdersQuery(status *order.Status) (ListOrdersQuery, error) {
	query := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == nil {
		return query, nil
	}

	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	s := *status
	query.status = &s
	return query, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, or nil.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}
