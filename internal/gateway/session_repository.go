package gateway

import (
	"context"
	"time"
)

// SessionRepository guarda tokens opacos de login -> id da conta.
type SessionRepository interface {
	// Get devolve domain.ErrSessionNotFound se o token não existir ou expirou.
	Get(ctx context.Context, token string) (int64, error)
	Save(ctx context.Context, token string, accountID int64, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
