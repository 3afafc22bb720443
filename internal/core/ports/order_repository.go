package ports

import (
	"context"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The stored version must
	// equal aggregate.Version(), otherwise *errs.VersionIsInvalidError is
	// returned and nothing is written. On success the aggregate is advanced
	// to the new version.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its service lines and status history.
	// Returns *errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders oldest first. A nil status returns every order.
	List(ctx context.Context, status *order.Status) ([]*order.Order, error)

	// CountByStatus returns the number of orders per status. Statuses
	// without orders are reported with a zero count.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}

// CollectionStore reads and writes a named collection of orders as a whole,
// the way a key-value backend stores them.
type CollectionStore interface {
	Load(ctx context.Context, collection string) ([]order.Snapshot, error)
	Save(ctx context.Context, collection string, orders []order.Snapshot) error
}
