package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/space-booking-slots-resolver/internal/config"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/in"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

type BookingEventListener struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	availability in.AvailabilityUseCase
	reassignment in.ReassignmentUseCase
	cfg          *config.Config
	logger       out.LoggerPort
}

type (
	BookingEventAction       string
	BookingEventResourceType string
)

type BookingMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType BookingEventResourceType
	Action       BookingEventAction
}

const (
	BookingEventResourceTypeAll         BookingEventResourceType = "_all_"
	BookingEventResourceTypeTemplate    BookingEventResourceType = "template"
	BookingEventResourceTypeOverride    BookingEventResourceType = "override"
	BookingEventResourceTypeBlockedSlot BookingEventResourceType = "blockedslot"
	BookingEventResourceTypeEvent       BookingEventResourceType = "event"
)

const (
	BookingEventActionStore      BookingEventAction = "store"
	BookingEventActionInvalidate BookingEventAction = "invalidate"
	BookingEventActionReschedule BookingEventAction = "reschedule"
)

func NewBookingEventListener(
	availability in.AvailabilityUseCase,
	reassignment in.ReassignmentUseCase,
	cfg *config.Config,
	logger out.LoggerPort,
) (*BookingEventListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMq.AmqpUri,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &BookingEventListener{
		conn:         conn,
		channel:      channel,
		availability: availability,
		reassignment: reassignment,
		cfg:          cfg,
		logger:       logger,
	}, nil
}

func (l *BookingEventListener) Start(ctx context.Context) error {
	var err error
	err = l.startAvailabilityQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("availability.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.AvailabilityQueueName,
	})
	err = l.startRescheduleQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("reschedule.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.RescheduleQueueName,
	})

	return nil
}

func (l *BookingEventListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Пример routingKey:
// booking.space-slots-resolver.override.<spaceId>.invalidate
// booking.space-slots-resolver.blockedslot.<spaceId>.store
// booking.space-slots-resolver.event.<spaceId>.reschedule
func (l *BookingEventListener) parseBookingMessageRoutingKey(ctx context.Context, msg amqp.Delivery) (BookingMessageRoutingKey, error) {
	routingKey := msg.RoutingKey
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 {
		return BookingMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return BookingMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: BookingEventResourceType(parts[2]),
		Action:       BookingEventAction(parts[4]),
	}, nil
}
