package orderrepo

import (
	"context"
	"errors"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its service lines and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("order "+dto.OrderNumber+" already exists", err)
	}
	return err
}

// Update writes the order when the stored version still matches, replaces
// its service lines and appends the history entries not stored yet.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"assigned_to":        dto.AssignedTo,
			"status":             dto.Status,
			"customer_notified":  dto.CustomerNotified,
			"last_status_change": dto.LastStatusChange,
			"completed_at":       dto.CompletedAt,
			"delivered_at":       dto.DeliveredAt,
			"delivered_by":       dto.DeliveredBy,
			"version":            dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.conflict(ctx, aggregate)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&ServiceLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Services) > 0 {
		if err := db.Create(&dto.Services).Error; err != nil {
			return err
		}
	}

	var stored int64
	if err := db.Model(&StatusChangeDTO{}).Where("order_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if appended := dto.History[min(int(stored), len(dto.History)):]; len(appended) > 0 {
		if err := db.Create(&appended).Error; err != nil {
			return err
		}
	}

	aggregate.AdvanceVersion()
	return nil
}

// conflict explains why an update touched no row.
func (r *GormOrderRepository) conflict(ctx context.Context, aggregate *order.Order) error {
	var stored OrderDTO
	err := r.db.WithContext(ctx).Select("id", "version").First(&stored, "id = ?", aggregate.ID().Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), err)
	}
	if err != nil {
		return err
	}
	return errs.NewVersionIsInvalidError("order", aggregate.Version(), stored.Version)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns orders oldest first, optionally restricted to one status.
func (r *GormOrderRepository) List(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	query := r.withChildren(ctx).Order("created_at, id")
	if status != nil {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		query = query.Where("status = ?", status.String())
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountByStatus groups orders by status. Rows without status count as pending.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] += row.Count
	}

	return counts, nil
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}
