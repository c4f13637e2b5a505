package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	bindings := []struct {
		exchange string
		queue    string
	}{
		{VideoProcessExchange, VideoProcessQueue},
		{UserCascadeExchange, UserCascadeQueue},
	}

	for _, b := range bindings {
		err := p.channel.ExchangeDeclare(
			b.exchange,
			"direct",
			true,  // durable
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", b.exchange, err)
		}

		_, err = p.channel.QueueDeclare(
			b.queue,
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", b.queue, err)
		}

		if err = p.channel.QueueBind(b.queue, b.queue, b.exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", b.queue, err)
		}
	}
	return nil
}

func (p *Producer) publish(ctx context.Context, exchange, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.channel.PublishWithContext(ctx, exchange, routingKey, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		})
}

func (p *Producer) PublishUploadEvent(ctx context.Context, event *UploadEvent) {
	if err := p.publish(ctx, VideoProcessExchange, VideoProcessQueue, event); err != nil {
		hlog.CtxErrorf(ctx, "failed to publish upload event for video %d: %v", event.VideoID, err)
	}
}

func (p *Producer) PublishCascadeEvent(ctx context.Context, event *CascadeEvent) {
	if err := p.publish(ctx, UserCascadeExchange, UserCascadeQueue, event); err != nil {
		hlog.CtxErrorf(ctx, "failed to publish cascade event for user %d: %v", event.UserID, err)
	}
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
