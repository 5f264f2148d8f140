package events

import (
	"context"

	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp091.Connection
}

func NewRabbitMQPublisher(connection *amqp091.Connection) contracts.EventPublisher {
	return &rabbitMQPublisher{connection: connection}
}

func (p *rabbitMQPublisher) PublishAuthEvent(ctx context.Context, event *models.AuthEvent) error {
	channel, err := p.connection.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	if _, err = channel.QueueDeclare(constvars.EventQueueAuth, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return channel.PublishWithContext(ctx, "", constvars.EventQueueAuth, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
}

// NopEventPublisher is used when event publishing is disabled by config.
type NopEventPublisher struct{}

func (NopEventPublisher) PublishAuthEvent(ctx context.Context, event *models.AuthEvent) error {
	return nil
}
