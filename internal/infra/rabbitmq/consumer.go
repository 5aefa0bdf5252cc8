package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// ErrPoisonMessage marca mensagens que nunca vão ser processáveis:
// o consumer descarta (Nack sem requeue) em vez de devolver para a fila.
var ErrPoisonMessage = errors.New("poison message")

// HandlerFunc processa o corpo de uma mensagem.
type HandlerFunc func(ctx context.Context, body []byte) error

// Consume lê a fila com Qos(1) e Ack manual até o ctx ser cancelado
// ou o canal fechar.
func Consume(ctx context.Context, ch *amqp.Channel, queue string, handler HandlerFunc) error {
	// Garante que o worker pegue apenas 1 mensagem por vez (Fair Dispatch)
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.Consume(
		queue,
		"",    // Consumer tag
		false, // Auto-Ack: FALSE (confirmamos manualmente após salvar)
		false, // Exclusive
		false, // No-local
		false, // No-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			handleDelivery(ctx, d, handler)
		}
	}
}

func handleDelivery(ctx context.Context, d amqp.Delivery, handler HandlerFunc) {
	err := handler(ctx, d.Body)
	switch {
	case err == nil:
		// ✅ Sucesso! Confirma para o RabbitMQ apagar a mensagem da fila
		if ackErr := d.Ack(false); ackErr != nil {
			log.Error().Err(ackErr).Msg("Falha ao confirmar mensagem")
		}
	case errors.Is(err, ErrPoisonMessage):
		log.Error().Err(err).Str("body", string(d.Body)).Msg("Mensagem inválida descartada")
		_ = d.Nack(false, false)
	default:
		// Falha transitória: devolve para a fila tentar de novo
		log.Error().Err(err).Msg("Erro ao processar mensagem, devolvendo para a fila")
		_ = d.Nack(false, true)
	}
}
