package services

import (
	"fmt"
	"time"

	"pressing/internal/core/domain/model/order"
	"pressing/internal/core/ports"
)

type template struct {
	title string
	body  string
}

func getTemplates() map[ports.NotificationKind]template {
	return map[ports.NotificationKind]template{
		ports.NotificationOrderStarted: {
			title: "Commande en cours",
			body:  "Votre commande %s est en cours de traitement.",
		},
		ports.NotificationOrderReady: {
			title: "Commande prête",
			body:  "Votre commande %s est prête. Vous pouvez venir la récupérer.",
		},
		ports.NotificationOrderDelivered: {
			title: "Commande livrée",
			body:  "Votre commande %s a été livrée. Merci de votre confiance !",
		},
		ports.NotificationOrderReadyReminder: {
			title: "Rappel : commande prête",
			body:  "Votre commande %s vous attend au pressing.",
		},
	}
}

// CustomerNotification builds the message of the given kind for the customer
// of o.
func CustomerNotification(kind ports.NotificationKind, o *order.Order, at time.Time) ports.Notification {
	t := getTemplates()[kind]
	return ports.Notification{
		UserID:      o.CustomerID(),
		Kind:        kind,
		Title:       t.title,
		Body:        fmt.Sprintf(t.body, o.OrderNumber()),
		OrderID:     o.ID(),
		OrderNumber: o.OrderNumber(),
		SentAt:      at,
	}
}
