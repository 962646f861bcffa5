package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/metrics"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/rabbit"
	"github.com/rabbitmq/amqp091-go"
)

// RefreshNotifier publishes a message to a queue whenever the dataset
// changes, so downstream consumers (mail digests, exports) can react
// without polling the API.
type RefreshNotifier struct {
	client *rabbit.RabbitMQ
	queue  string
}

func NewRefreshNotifier(client *rabbit.RabbitMQ, queue string) (*RefreshNotifier, error) {
	// Declare up front so publishes never race queue creation.
	if _, err := client.Channel.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &RefreshNotifier{
		client: client,
		queue:  queue,
	}, nil
}

type refreshEvent struct {
	Records   int       `json:"records"`
	Checksum  string    `json:"checksum"`
	Timestamp time.Time `json:"timestamp"`
}

// PublishRefresh announces a changed dataset.
func (r *RefreshNotifier) PublishRefresh(ctx context.Context, records int, checksum string) error {
	const op = "RefreshNotifier.PublishRefresh"

	if err := r.client.EnsureConnection(ctx); err != nil {
		metrics.RecordRefreshEvent(types.ServiceName, err)
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	body, err := json.Marshal(refreshEvent{
		Records:   records,
		Checksum:  checksum,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		ctx = wrap.WithAction(ctx, "marshal_refresh_event")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal message: %w", op, err))
	}

	err = r.client.Channel.PublishWithContext(
		ctx,
		"",      // default exchange
		r.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	metrics.RecordRefreshEvent(types.ServiceName, err)
	if err != nil {
		ctx = wrap.WithAction(ctx, "publish_message")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish with context: %w", op, err))
	}

	return nil
}
