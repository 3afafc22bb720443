package queries

import (
	"context"

	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/ports"
)

type ListOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.List(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(orders))
	for _, o := range orders {
		snapshots = append(snapshots, o.Snapshot())
	}
	return snapshots, nil
}
