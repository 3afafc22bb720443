// Package orderrepo maps order aggregates to relational tables: one row per
// order, its service lines and its status history in child tables.
package orderrepo

import (
	"time"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO is the orders table. Status holds the wire code ("in_progress");
// an empty status is read back as pending.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber      string    `gorm:"uniqueIndex;not null"`
	CustomerID       string    `gorm:"index;not null"`
	AssignedTo       string
	Status           string `gorm:"index"`
	CustomerNotified bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	LastStatusChange *time.Time
	CompletedAt      *time.Time
	DeliveredAt      *time.Time
	DeliveredBy      string
	Version          int64 `gorm:"not null;default:1"`

	Services []ServiceLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History  []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ServiceLineDTO is one service of an order, kept in its original position.
type ServiceLineDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Position  int       `gorm:"not null"`
	Name      string    `gorm:"not null"`
	Completed bool      `gorm:"not null;default:false"`
}

func (ServiceLineDTO) TableName() string {
	return "order_service_lines"
}

// StatusChangeDTO is one audit entry. Rows are only ever inserted.
type StatusChangeDTO struct {
	ID         uint      `gorm:"primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Position   int       `gorm:"not null"`
	FromStatus string    `gorm:"not null"`
	ToStatus   string    `gorm:"not null"`
	Timestamp  time.Time `gorm:"not null"`
	UserID     string
	UserRole   string
}

func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// AutoMigrate creates or updates the order tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &ServiceLineDTO{}, &StatusChangeDTO{})
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()
	id := s.ID.Bytes()

	services := make([]ServiceLineDTO, 0, len(s.Services))
	for i, line := range s.Services {
		services = append(services, ServiceLineDTO{
			OrderID:   id,
			Position:  i,
			Name:      line.Name,
			Completed: line.Completed,
		})
	}

	return OrderDTO{
		ID:               id,
		OrderNumber:      s.OrderNumber,
		CustomerID:       s.CustomerID,
		AssignedTo:       s.AssignedTo,
		Status:           s.Status.String(),
		CustomerNotified: s.CustomerNotified,
		CreatedAt:        s.CreatedAt,
		LastStatusChange: s.LastStatusChange,
		CompletedAt:      s.CompletedAt,
		DeliveredAt:      s.DeliveredAt,
		DeliveredBy:      s.DeliveredBy,
		Version:          s.Version,
		Services:         services,
		History:          historyFromDomain(id, s.History),
	}
}

func historyFromDomain(orderID uuid.UUID, history []order.StatusChange) []StatusChangeDTO {
	dtos := make([]StatusChangeDTO, 0, len(history))
	for i, change := range history {
		dtos = append(dtos, StatusChangeDTO{
			OrderID:    orderID,
			Position:   i,
			FromStatus: change.From.String(),
			ToStatus:   change.To.String(),
			Timestamp:  change.Timestamp,
			UserID:     change.UserID,
			UserRole:   change.UserRole.String(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	services := make([]order.ServiceLine, 0, len(dto.Services))
	for _, line := range dto.Services {
		services = append(services, order.ServiceLine{Name: line.Name, Completed: line.Completed})
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, change := range dto.History {
		from, fromErr := order.ParseStatus(change.FromStatus)
		if fromErr != nil {
			return nil, fromErr
		}
		to, toErr := order.ParseStatus(change.ToStatus)
		if toErr != nil {
			return nil, toErr
		}
		history = append(history, order.StatusChange{
			From:      from,
			To:        to,
			Timestamp: change.Timestamp.UTC(),
			UserID:    change.UserID,
			UserRole:  kernel.Role(change.UserRole),
		})
	}

	return order.Restore(order.Snapshot{
		ID:               id,
		OrderNumber:      dto.OrderNumber,
		CustomerID:       dto.CustomerID,
		AssignedTo:       dto.AssignedTo,
		Services:         services,
		Status:           status,
		CustomerNotified: dto.CustomerNotified,
		History:          history,
		CreatedAt:        dto.CreatedAt.UTC(),
		LastStatusChange: utc(dto.LastStatusChange),
		CompletedAt:      utc(dto.CompletedAt),
		DeliveredAt:      utc(dto.DeliveredAt),
		DeliveredBy:      dto.DeliveredBy,
		Version:          dto.Version,
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
