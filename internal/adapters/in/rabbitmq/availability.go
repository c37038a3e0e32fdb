package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

// AvailabilityChangeMessage - изменение конфигурации доступности в бэкофисе:
// шаблона, оверрайда или списка заблокированных слотов
type AvailabilityChangeMessage struct {
	SpaceID uuid.UUID `json:"space_id"`
}

func (l *BookingEventListener) startAvailabilityQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.AvailabilityQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueConfig.AvailabilityQueueBind,
		l.cfg.RabbitMq.QueueConfig.AvailabilityQueueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processAvailabilityMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *BookingEventListener) processAvailabilityMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseBookingMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	switch routingKey.ResourceType {
	case BookingEventResourceTypeTemplate, BookingEventResourceTypeOverride, BookingEventResourceTypeBlockedSlot:
	case BookingEventResourceTypeAll:
		// Массовое изменение конфигурации - сбрасываем весь кэш.
		// Инвалидация синхронная: ack сообщения означает, что кэш уже чист
		if err := l.availability.InvalidateAllCache(ctx); err != nil {
			return err
		}

		l.logger.Info("availability.message.invalidated_all", out.LogFields{
			"routingKey": msg.RoutingKey,
		})
		return nil
	default:
		return nil
	}

	var message AvailabilityChangeMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}

	l.logger.Info("availability.message.received", out.LogFields{
		"spaceId":      message.SpaceID,
		"resourceType": routingKey.ResourceType,
		"action":       routingKey.Action,
	})

	// Резолвер считает все с нуля на каждый запрос,
	// при любом изменении конфигурации достаточно выбросить кэш пространства.
	// Инвалидация синхронная: ack сообщения означает, что кэш уже чист
	return l.availability.InvalidateSpaceCache(ctx, message.SpaceID)
}
