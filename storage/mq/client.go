package mq

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"ContactBook/config"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

func Init() error {
	connOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()
		conn, connErr = amqp.Dial(url)
		if connErr != nil {
			return
		}

		ch, err := conn.Channel()
		if err != nil {
			connErr = err
			return
		}
		defer ch.Close()

		// 事件交换机，topic 类型，routing key 形如 contact.created
		connErr = ch.ExchangeDeclare(
			config.Cfg.EventsExchange,
			"topic",
			true,  // durable
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,
		)
	})

	return connErr
}

func Close(ctx context.Context) error {
	closePublisherChannel()

	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
