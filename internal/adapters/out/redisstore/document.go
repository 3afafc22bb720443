package redisstore

import (
	"time"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
)

// orderDocument is the JSON form of an order inside a collection.
type orderDocument struct {
	ID               string         `json:"id"`
	OrderNumber      string         `json:"orderNumber"`
	CustomerID       string         `json:"customerId"`
	AssignedTo       string         `json:"assignedTo,omitempty"`
	Services         []serviceLine  `json:"services"`
	Status           string         `json:"status,omitempty"`
	CustomerNotified bool           `json:"customerNotified"`
	StatusHistory    []statusChange `json:"statusHistory"`
	CreatedAt        time.Time      `json:"createdAt"`
	LastStatusChange *time.Time     `json:"lastStatusChange,omitempty"`
	CompletedAt      *time.Time     `json:"completedAt,omitempty"`
	DeliveredAt      *time.Time     `json:"deliveredAt,omitempty"`
	DeliveredBy      string         `json:"deliveredBy,omitempty"`
	Version          int64          `json:"version"`
}

type serviceLine struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type statusChange struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	UserRole  string    `json:"userRole"`
}

func fromSnapshot(s order.Snapshot) orderDocument {
	services := make([]serviceLine, 0, len(s.Services))
	for _, line := range s.Services {
		services = append(services, serviceLine{Name: line.Name, Completed: line.Completed})
	}

	history := make([]statusChange, 0, len(s.History))
	for _, change := range s.History {
		history = append(history, statusChange{
			From:      change.From.String(),
			To:        change.To.String(),
			Timestamp: change.Timestamp,
			UserID:    change.UserID,
			UserRole:  change.UserRole.String(),
		})
	}

	return orderDocument{
		ID:               s.ID.String(),
		OrderNumber:      s.OrderNumber,
		CustomerID:       s.CustomerID,
		AssignedTo:       s.AssignedTo,
		Services:         services,
		Status:           s.Status.String(),
		CustomerNotified: s.CustomerNotified,
		StatusHistory:    history,
		CreatedAt:        s.CreatedAt,
		LastStatusChange: s.LastStatusChange,
		CompletedAt:      s.CompletedAt,
		DeliveredAt:      s.DeliveredAt,
		DeliveredBy:      s.DeliveredBy,
		Version:          s.Version,
	}
}

// toSnapshot decodes a document. A missing status is read as pending.
func (d orderDocument) toSnapshot() (order.Snapshot, error) {
	id, err := kernel.UUIDFromString(d.ID)
	if err != nil {
		return order.Snapshot{}, err
	}

	status, err := order.ParseStatus(d.Status)
	if err != nil {
		return order.Snapshot{}, err
	}

	services := make([]order.ServiceLine, 0, len(d.Services))
	for _, line := range d.Services {
		services = append(services, order.ServiceLine{Name: line.Name, Completed: line.Completed})
	}

	history := make([]order.StatusChange, 0, len(d.StatusHistory))
	for _, change := range d.StatusHistory {
		from, fromErr := order.ParseStatus(change.From)
		if fromErr != nil {
			return order.Snapshot{}, fromErr
		}
		to, toErr := order.ParseStatus(change.To)
		if toErr != nil {
			return order.Snapshot{}, toErr
		}
		history = append(history, order.StatusChange{
			From:      from,
			To:        to,
			Timestamp: change.Timestamp,
			UserID:    change.UserID,
			UserRole:  kernel.Role(change.UserRole),
		})
	}

	version := d.Version
	if version == 0 {
		version = 1
	}

	return order.Snapshot{
		ID:               id,
		OrderNumber:      d.OrderNumber,
		CustomerID:       d.CustomerID,
		AssignedTo:       d.AssignedTo,
		Services:         services,
		Status:           status,
		CustomerNotified: d.CustomerNotified,
		History:          history,
		CreatedAt:        d.CreatedAt,
		LastStatusChange: d.LastStatusChange,
		CompletedAt:      d.CompletedAt,
		DeliveredAt:      d.DeliveredAt,
		DeliveredBy:      d.DeliveredBy,
		Version:          version,
	}, nil
}
