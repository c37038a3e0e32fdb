package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
)

// EventRescheduledMessage - событие перенесено на другой час
type EventRescheduledMessage struct {
	SpaceID      uuid.UUID `json:"space_id"`
	OldHour      int       `json:"old_hour"`
	OldDayOfWeek int       `json:"old_day_of_week"`
	NewHour      int       `json:"new_hour"`
	NewDayOfWeek int       `json:"new_day_of_week"`
}

func (l *BookingEventListener) startRescheduleQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.RescheduleQueueName,
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
		l.cfg.RabbitMq.QueueConfig.RescheduleQueueBind,
		l.cfg.RabbitMq.QueueConfig.RescheduleQueueExchange,
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
				if err := l.processRescheduleMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *BookingEventListener) processRescheduleMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseBookingMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != BookingEventResourceTypeEvent || routingKey.Action != BookingEventActionReschedule {
		return nil
	}

	var message EventRescheduledMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}

	l.logger.Info("reschedule.message.received", out.LogFields{
		"spaceId": message.SpaceID,
		"oldHour": message.OldHour,
		"newHour": message.NewHour,
	})

	oldSlot := domain.SlotRef{Hour: message.OldHour, DayOfWeek: message.OldDayOfWeek}
	newSlot := domain.SlotRef{Hour: message.NewHour, DayOfWeek: message.NewDayOfWeek}

	result, err := l.reassignment.OnEventRescheduled(ctx, message.SpaceID, oldSlot, newSlot)
	if err != nil {
		// Конфликт переноса не перевыставляем в очередь: диагностика
		// для оператора уже отправлена, автоповтор только повторит сбой
		if errors.Is(err, domain.ErrReassignmentConflict) {
			l.logger.Warn("reschedule.message.conflict", out.LogFields{
				"spaceId":         message.SpaceID,
				"newSlotBlocked":  result.NewSlotBlocked,
				"oldSlotReleased": result.OldSlotReleased,
				"error":           err.Error(),
			})
			return nil
		}
		return err
	}

	l.logger.Info("reschedule.message.processed", out.LogFields{
		"spaceId": message.SpaceID,
		"changed": result.Changed,
	})

	return nil
}
