package http

import (
	"pressing/internal/core/domain/model/order"
	"pressing/internal/generated/servers"
)

func toOrder(s order.Snapshot) servers.Order {
	lines := make([]servers.ServiceLine, 0, len(s.Services))
	for _, line := range s.Services {
		lines = append(lines, servers.ServiceLine{Name: line.Name, Completed: line.Completed})
	}

	history := make([]servers.StatusChange, 0, len(s.History))
	for _, change := range s.History {
		history = append(history, servers.StatusChange{
			From:      servers.OrderStatus(change.From.String()),
			To:        servers.OrderStatus(change.To.String()),
			Timestamp: change.Timestamp,
			UserId:    change.UserID,
			UserRole:  change.UserRole.String(),
		})
	}

	return servers.Order{
		Id:               s.ID.Bytes(),
		OrderNumber:      s.OrderNumber,
		CustomerId:       s.CustomerID,
		AssignedTo:       optional(s.AssignedTo),
		Services:         lines,
		Status:           servers.OrderStatus(s.Status.String()),
		StatusLabel:      s.Status.Label(),
		CustomerNotified: s.CustomerNotified,
		StatusHistory:    history,
		CreatedAt:        s.CreatedAt,
		LastStatusChange: s.LastStatusChange,
		CompletedAt:      s.CompletedAt,
		DeliveredAt:      s.DeliveredAt,
		DeliveredBy:      optional(s.DeliveredBy),
		Version:          s.Version,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
