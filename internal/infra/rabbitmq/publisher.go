package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Publisher implementa gateway.EventPublisher sobre um canal AMQP.
// Hoje carrega o transfer.completed (domain.TransferCompletedEvent) na exchange
// topic bank_events, publicado só depois do commit; o worker de notificações
// consome via transfer.#. Mensagens são persistentes e o corpo é JSON.
type Publisher struct {
	channel *amqp.Channel
}

func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{channel: ch}
}

func (p *Publisher) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	msg, err := newPublishing(body)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		exchange,   // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Info().Str("exchange", exchange).Str("routing_key", routingKey).Msg("Evento publicado no RabbitMQ")
	return nil
}

// newPublishing serializa o evento no formato que o worker espera.
func newPublishing(body interface{}) (amqp.Publishing, error) {
	bytes, err := json.Marshal(body)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         bytes,
		DeliveryMode: amqp.Persistent, // Garante que a mensagem não suma se o Rabbit reiniciar
	}, nil
}
