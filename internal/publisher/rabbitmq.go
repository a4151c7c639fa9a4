package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"listing_sync/internal/domain"
)

// RabbitMQ publishes record change events to a topic exchange. Routing keys
// look like "<prefix>.<entity>.<action>", e.g. "listings.agents.created".
type RabbitMQ struct {
	conn          *amqp.Connection
	channel       *amqp.Channel
	mu            sync.Mutex
	exchange      string
	routingPrefix string
	logger        *slog.Logger
}

type Config struct {
	URL           string
	Exchange      string
	RoutingPrefix string
	QueueName     string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	// The queue is optional; consumers may bind their own.
	if cfg.QueueName != "" {
		q, err := ch.QueueDeclare(
			cfg.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue: %w", err)
		}

		if err := ch.QueueBind(q.Name, bindingPattern(cfg.RoutingPrefix), cfg.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("bind queue: %w", err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_prefix", cfg.RoutingPrefix,
	)

	return &RabbitMQ{
		conn:          conn,
		channel:       ch,
		exchange:      cfg.Exchange,
		routingPrefix: cfg.RoutingPrefix,
		logger:        logger,
	}, nil
}

func (r *RabbitMQ) Publish(ctx context.Context, ev domain.RecordEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	key := RoutingKey(r.routingPrefix, ev)

	// amqp channels are not safe for concurrent publishes.
	r.mu.Lock()
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    ev.ID,
			Type:         ev.Entity,
			Body:         body,
			Timestamp:    ev.Timestamp,
		},
	)
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	r.logger.Debug("published record event",
		"routing_key", key,
		"airtable_id", ev.AirtableID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

func RoutingKey(prefix string, ev domain.RecordEvent) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	return strings.Join(append(parts, ev.Entity, string(ev.Action)), ".")
}

func bindingPattern(prefix string) string {
	if prefix == "" {
		return "#"
	}
	return prefix + ".#"
}
