package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"

	"github.com/nirs/shop-api/internal/application/stock"
)

var _ stock.EventPublisher = (*Publisher)(nil)

// Publisher publica eventos de stock en una cola durable de RabbitMQ.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewPublisher conecta al broker y declara la cola de eventos de stock.
func NewPublisher(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("conectar a RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declarar cola %s: %w", queue, err)
	}

	return &Publisher{conn: conn, channel: ch, queue: queue}, nil
}

// PublishStockAdjusted publica el evento como JSON persistente en la cola.
func (p *Publisher) PublishStockAdjusted(ctx context.Context, event stock.StockAdjustedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}

	err = p.channel.Publish(
		"",      // exchange por defecto
		p.queue, // routing key = nombre de la cola
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("publicar evento: %w", err)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cerrar canal: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cerrar conexión: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errores cerrando el publisher: %v", errs)
	}
	return nil
}
