package handler

import (
	"net/http"
	"time"

	internalMiddleware "github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/http/middleware"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// RouterConfig reúne o que o roteador precisa. Metrics pode ser nil.
type RouterConfig struct {
	Users     *UserHandler
	Transfers *TransferHandler
	Sessions  gateway.SessionRepository
	Metrics   MetricsProvider
	Timeout   time.Duration
}

// MetricsProvider é implementado por metrics.Metrics.
type MetricsProvider interface {
	internalMiddleware.RequestObserver
	Handler() http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	// Middlewares básicos
	router.Use(middleware.RequestID)
	router.Use(internalMiddleware.RequestLogger)
	router.Use(middleware.Recoverer) // Evita crash se der panic
	if cfg.Timeout > 0 {
		router.Use(middleware.Timeout(cfg.Timeout))
	}
	if cfg.Metrics != nil {
		router.Use(internalMiddleware.Metrics(cfg.Metrics))
		router.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	// Rota de Health Check (para o Docker saber se estamos vivos)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("Falha ao escrever resposta de health check")
		}
	})

	auth := internalMiddleware.Authenticate(cfg.Sessions)
	userRoutes := func(r chi.Router) {
		r.Post("/register", cfg.Users.Register)
		r.Post("/login", cfg.Users.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/logout", cfg.Users.Logout)
			r.Post("/transfer", cfg.Transfers.Create)
			r.Get("/", cfg.Users.List)
			r.Get("/{id}", cfg.Users.Get)
			r.Put("/{id}", cfg.Users.Update)
			r.Delete("/{id}", cfg.Users.Delete)
		})
	}

	// Mesmas rotas nos dois prefixos (o segundo mantém clientes antigos)
	router.Route("/users", userRoutes)
	router.Route("/api/bank/users", userRoutes)

	return router
}
