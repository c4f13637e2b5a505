package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

type UploadEventHandler interface {
	HandleUploadEvent(ctx context.Context, event *UploadEvent) error
}

type CascadeEventHandler interface {
	HandleCascadeEvent(ctx context.Context, event *CascadeEvent) error
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// cap unacked deliveries so a slow pipeline doesn't hoard messages
	err = ch.Qos(
		10,    // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
	}, nil
}

func (c *Consumer) ConsumeUploadEvents(ctx context.Context, handler UploadEventHandler) error {
	msgs, err := c.channel.Consume(
		VideoProcessQueue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				hlog.Info("upload event consumer context cancelled")
				return
			case d, ok := <-msgs:
				if !ok {
					hlog.Info("upload event consumer channel closed")
					return
				}

				var event UploadEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					hlog.Errorf("failed to unmarshal upload event: %v", err)
					d.Nack(false, false)
					continue
				}

				if err := handler.HandleUploadEvent(ctx, &event); err != nil {
					hlog.Errorf("failed to handle upload event %s: %v", event.EventID, err)
					d.Nack(false, true) // requeue, the transition is idempotent
					continue
				}
				d.Ack(false)
			}
		}
	}()
	return nil
}

func (c *Consumer) ConsumeCascadeEvents(ctx context.Context, handler CascadeEventHandler) error {
	msgs, err := c.channel.Consume(
		UserCascadeQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				hlog.Info("cascade event consumer context cancelled")
				return
			case d, ok := <-msgs:
				if !ok {
					hlog.Info("cascade event consumer channel closed")
					return
				}

				var event CascadeEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					hlog.Errorf("failed to unmarshal cascade event: %v", err)
					d.Nack(false, false)
					continue
				}

				if err := handler.HandleCascadeEvent(ctx, &event); err != nil {
					hlog.Errorf("failed to handle cascade event %s: %v", event.EventID, err)
					d.Nack(false, true)
					continue
				}
				d.Ack(false)
			}
		}
	}()
	return nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
