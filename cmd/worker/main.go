package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/config"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/mongodb"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/rabbitmq"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	notificationQueue = "transfer_notifications"
	transferBinding   = "transfer.#" // # é curinga/wildcard
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	mongoClient, err := mongodb.Connect(connectCtx, cfg.MongoURI())
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao conectar no MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Erro ao desconectar Mongo")
		}
	}()
	log.Info().Msg("✅ Conectado ao MongoDB!")

	notificationRepo := mongodb.NewNotificationRepository(mongoClient, cfg.MongoDB)
	if err := notificationRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Erro ao criar índices")
	}
	notifyUseCase := usecase.NewNotifyRecipient(notificationRepo)

	conn, err := amqp.DialConfig(cfg.RabbitURL(), amqp.Config{
		Properties: amqp.Table{
			"connection_name": "NotificationWorker_Consumer",
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao conectar no RabbitMQ")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Erro ao fechar conexão RabbitMQ")
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao abrir canal")
	}
	defer func() {
		if err := ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			log.Error().Err(err).Msg("Erro ao fechar canal RabbitMQ")
		}
	}()

	if err := rabbitmq.DeclareQueue(ch, usecase.EventsExchange, notificationQueue, transferBinding); err != nil {
		log.Fatal().Err(err).Msg("Erro ao declarar topologia")
	}

	// Monitoramento de queda de conexão: cancela o consumo para o Docker reiniciar o worker
	notifyClose := ch.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		if err := <-notifyClose; err != nil {
			log.Error().Err(err).Msg("🔴 Canal RabbitMQ fechado")
			stop()
		}
	}()

	log.Info().Str("queue", notificationQueue).Msg(" [*] Worker iniciado. Aguardando mensagens...")

	if err := rabbitmq.Consume(ctx, ch, notificationQueue, newTransferEventHandler(notifyUseCase)); err != nil {
		log.Error().Err(err).Msg("Consumo interrompido")
		os.Exit(1) // Força o worker a cair para o Docker subir de novo
	}

	log.Info().Msg("Shutting down worker...")
}

// newTransferEventHandler decodifica o evento e classifica o erro:
// JSON inválido ou evento incompleto é descartado, o resto volta para a fila.
func newTransferEventHandler(notifyUseCase *usecase.NotifyRecipientUseCase) rabbitmq.HandlerFunc {
	return func(ctx context.Context, body []byte) error {
		var event domain.TransferCompletedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("%w: %v", rabbitmq.ErrPoisonMessage, err)
		}

		saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := notifyUseCase.Execute(saveCtx, event)
		if errors.Is(err, usecase.ErrIncompleteEvent) {
			return fmt.Errorf("%w: %v", rabbitmq.ErrPoisonMessage, err)
		}
		if err != nil {
			return err
		}
		log.Info().Int64("transfer_id", event.TransferID).Int64("recipient_id", event.RecipientID).Msg(" [✅] Notificação salva e Ack enviado.")
		return nil
	}
}
