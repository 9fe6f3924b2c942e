package eventqueue

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const DefaultSchedulingEventsQueue = "scheduling_events"

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// schedulingEventPublisher publishes persistent JSON messages to a durable queue and
// waits for the broker confirm of each one.
type schedulingEventPublisher struct {
	ch        publishChannel
	confirms  <-chan amqp.Confirmation
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

// NewSchedulingEventPublisher declares the queue and enables publisher confirms on a
// fresh channel.
func NewSchedulingEventPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.SchedulingEventPublisher, error) {
	if queueName == "" {
		queueName = DefaultSchedulingEventsQueue
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &schedulingEventPublisher{
		ch:        ch,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		queueName: queueName,
		log:       log,
	}, nil
}

func (p *schedulingEventPublisher) Publish(ctx context.Context, event *models.SchedulingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("schedulingEventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.Int(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.String(constvars.LoggingQueueNameKey, p.queueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	select {
	case confirmed, ok := <-p.confirms:
		if !ok {
			return exceptions.ErrRabbitMQPublishMessage(errors.New("channel closed before confirm"), p.queueName)
		}
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(errors.New("message not confirmed"), p.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queueName)
	}
	return nil
}
