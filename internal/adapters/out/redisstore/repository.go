package redisstore

import (
	"context"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/ports"
	"pressing/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on one collection. Every
// write is a single atomic read-modify-write of the collection key.
type OrderRepository struct {
	store      *CollectionStore
	collection string
}

func NewOrderRepository(store *CollectionStore, collection string) *OrderRepository {
	return &OrderRepository{store: store, collection: collection}
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc := fromSnapshot(aggregate.Snapshot())
	return r.store.update(ctx, r.collection, func(docs []orderDocument) ([]orderDocument, error) {
		for _, existing := range docs {
			if existing.ID == doc.ID {
				return nil, errs.NewValueIsInvalidError("order " + doc.ID + " already exists")
			}
			if existing.OrderNumber == doc.OrderNumber {
				return nil, errs.NewValueIsInvalidError("orderNumber " + doc.OrderNumber + " already exists")
			}
		}
		return append(docs, doc), nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// mutate may run several times, so doc stays untouched.
	doc := fromSnapshot(aggregate.Snapshot())
	expected := aggregate.Version()
	err := r.store.update(ctx, r.collection, func(docs []orderDocument) ([]orderDocument, error) {
		i := indexOf(docs, doc.ID)
		if i < 0 {
			return nil, errs.NewObjectNotFoundError("order", doc.ID)
		}
		stored := docs[i].Version
		if stored == 0 {
			stored = 1
		}
		if stored != expected {
			return nil, errs.NewVersionIsInvalidError("order", expected, stored)
		}
		next := doc
		next.Version = expected + 1
		docs[i] = next
		return docs, nil
	})
	if err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := r.store.Load(ctx, r.collection)
	if err != nil {
		return nil, err
	}
	for _, s := range snapshots {
		if s.ID.IsEqual(id) {
			return order.Restore(s)
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

// List returns orders in insertion order.
func (r *OrderRepository) List(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return nil, err
		}
	}

	snapshots, err := r.store.Load(ctx, r.collection)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(snapshots))
	for _, s := range snapshots {
		o, restoreErr := order.Restore(s)
		if restoreErr != nil {
			return nil, restoreErr
		}
		if status != nil && o.Status() != *status {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	orders, err := r.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		counts[s] = 0
	}
	for _, o := range orders {
		counts[o.Status()]++
	}
	return counts, nil
}

func indexOf(docs []orderDocument, id string) int {
	for i, doc := range docs {
		if doc.ID == id {
			return i
		}
	}
	return -1
}

// UnitOfWorkFactory hands out units of work over the Redis repository.
// Redis writes are atomic per call, so Begin, Commit and Rollback have
// nothing to coordinate.
type UnitOfWorkFactory struct {
	repository *OrderRepository
}

func NewUnitOfWorkFactory(repository *OrderRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repository: repository}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return unitOfWork{repository: f.repository}
}

type unitOfWork struct {
	repository *OrderRepository
}

func (unitOfWork) Begin(context.Context) error {
	return nil
}

func (unitOfWork) Commit(context.Context) error {
	return nil
}

func (unitOfWork) Rollback(context.Context) error {
	return nil
}

func (u unitOfWork) OrderRepository() ports.OrderRepository {
	return u.repository
}
