package notify

import (
	"encoding/json"
	"time"

	"pressing/internal/core/ports"
)

// Message is the wire form of a notification shared by every transport.
type Message struct {
	UserID      string    `json:"user_id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	SentAt      time.Time `json:"sent_at"`
}

func NewMessage(n ports.Notification) Message {
	return Message{
		UserID:      n.UserID,
		Kind:        n.Kind.String(),
		Title:       n.Title,
		Body:        n.Body,
		OrderID:     n.OrderID.String(),
		OrderNumber: n.OrderNumber,
		SentAt:      n.SentAt.UTC(),
	}
}

// Encode marshals the message of n.
func Encode(n ports.Notification) ([]byte, error) {
	return json.Marshal(NewMessage(n))
}
