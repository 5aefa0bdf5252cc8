package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/config"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/http/handler"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/memory"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/metrics"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/postgres"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/rabbitmq"
	redisInfra "github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/redis"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/security"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// storage agrupa as implementações escolhidas por STORAGE_DRIVER.
type storage struct {
	accounts  gateway.AccountRepository
	transfers gateway.TransferRepository
	uow       gateway.TransactionManager
	close     func()
}

func main() {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível inicializar o armazenamento")
	}
	defer store.close()

	sessions, closeSessions, err := openSessions(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível conectar ao Redis")
	}
	defer closeSessions()

	var eventPublisher gateway.EventPublisher
	rabbitConn, err := amqp.DialConfig(cfg.RabbitURL(), amqp.Config{
		Properties: amqp.Table{
			"connection_name": "BrBankAPI_Publisher",
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Falha ao conectar no RabbitMQ (Eventos não serão enviados)")
	} else {
		defer rabbitConn.Close()
		log.Info().Msg("✅ Conectado ao RabbitMQ!")

		ch, err := rabbitConn.Channel()
		if err != nil {
			log.Fatal().Err(err).Msg("Falha ao abrir canal RabbitMQ")
		}
		defer ch.Close()

		if err := rabbitmq.DeclareExchange(ch, usecase.EventsExchange); err != nil {
			log.Fatal().Err(err).Msg("Falha ao declarar Exchange")
		}
		eventPublisher = rabbitmq.NewPublisher(ch)
	}

	appMetrics := metrics.New()
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	validator := usecase.NewAccountValidator(store.accounts)

	// Inicialização da Camada de UseCase (Regras de Negócio)
	transferUseCase := usecase.NewTransferMoney(store.accounts, store.transfers, store.uow, eventPublisher, appMetrics)
	userHandler := handler.NewUserHandler(
		usecase.NewRegisterUser(store.accounts, validator, hasher),
		usecase.NewLoginUser(store.accounts, sessions, hasher, cfg.SessionTTL),
		usecase.NewLogoutUser(sessions),
		usecase.NewUpdateUser(store.accounts, validator, hasher),
		usecase.NewDeleteUser(store.accounts),
		usecase.NewGetUser(store.accounts),
		usecase.NewListUsers(store.accounts),
	)

	router := handler.NewRouter(handler.RouterConfig{
		Users:     userHandler,
		Transfers: handler.NewTransferHandler(transferUseCase),
		Sessions:  sessions,
		Metrics:   appMetrics,
		Timeout:   cfg.HTTPTimeout,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Msgf("🚀 Servidor rodando na porta %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Falha ao iniciar servidor HTTP")
		}
	}()

	<-ctx.Done() // O programa fica parado AQUI até Ctrl+C / SIGTERM
	log.Info().Msg("Desligando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Erro no shutdown do servidor HTTP")
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn().Msg("STORAGE_DRIVER=memory: dados somem ao reiniciar")
		store := memory.NewStore()
		return &storage{
			accounts:  memory.NewAccountRepository(store),
			transfers: memory.NewTransferRepository(store),
			uow:       memory.NewUow(store),
			close:     func() {},
		}, nil
	}

	isoLevel, err := postgres.ParseIsoLevel(cfg.DBIsolation)
	if err != nil {
		return nil, err
	}

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, err
	}
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, err
	}
	log.Info().Msg("✅ Conectado ao PostgreSQL com sucesso!")

	if err := postgres.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, err
	}

	return &storage{
		accounts:  postgres.NewAccountRepository(dbPool),
		transfers: postgres.NewTransferRepository(dbPool),
		uow:       postgres.NewUow(dbPool, isoLevel), // Unit of Work (Gerenciador de Transações)
		close:     dbPool.Close,
	}, nil
}

// openSessions usa o Redis. Sessões em memória só valem para um processo,
// então o fallback fica restrito a APP_ENV=development.
func openSessions(ctx context.Context, cfg *config.Config) (gateway.SessionRepository, func(), error) {
	redisClient, err := redisInfra.Connect(ctx, cfg.RedisAddr(), cfg.RedisPassword, 0)
	if err != nil {
		if !cfg.IsDevelopment() {
			return nil, nil, err
		}
		log.Warn().Err(err).Msg("Não foi possível conectar ao Redis (sessões em memória, só dev)")
		return memory.NewSessionRepository(), func() {}, nil
	}

	log.Info().Msg("✅ Conectado ao Redis!")
	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("Erro ao fechar Redis")
		}
	}
	return redisInfra.NewSessionRepository(redisClient), closeFn, nil
}
