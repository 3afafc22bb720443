package queries

import (
	"context"
	"errors"

	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/ports"
	"pressing/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts orders per status. Every status is present
// in the result, with zero when no order is in it.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

type CountOrdersByStatusQueryHandler struct {
	repo ports.OrderRepository
}

func NewCountOrdersByStatusQueryHandler(repo ports.OrderRepository) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{repo: repo}
}

func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (map[order.Status]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[order.Status]int, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		result[s] = counts[s]
	}
	return result, nil
}
