// Package rabbitmq publishes customer notifications to a fanout exchange.
// Consumers bind their own queues; the publisher declares only the exchange.
package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pressing/internal/adapters/out/notify"
	"pressing/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "pressing_notifications"

var _ ports.Notifier = (*Publisher)(nil)

// Channel is the part of *amqp091.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp091.Connection
	channel  Channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher dials url and declares a durable fanout exchange.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	p := NewPublisherWithChannel(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisherWithChannel publishes on an already prepared channel.
func NewPublisherWithChannel(ch Channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}
}

func (p *Publisher) Notify(ctx context.Context, n ports.Notification) error {
	body, err := notify.Encode(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		"",    // routing key (not used for fanout)
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Type:         n.Kind.String(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.DebugContext(ctx, "Notification published",
		"order_number", n.OrderNumber,
		"kind", n.Kind.String(),
	)
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("error closing channel: %w", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("error closing connection: %w", err)
		}
	}
	return nil
}
