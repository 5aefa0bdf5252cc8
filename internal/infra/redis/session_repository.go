package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// SessionRepository guarda token -> id da conta com expiração nativa do Redis (SET EX).
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Get(ctx context.Context, token string) (int64, error) {
	val, err := r.client.Get(ctx, sessionPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrSessionNotFound // Não encontrado ou expirou
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get session: %w", err)
	}

	accountID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted session value %q: %w", val, err)
	}
	return accountID, nil
}

func (r *SessionRepository) Save(ctx context.Context, token string, accountID int64, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionPrefix+token, strconv.FormatInt(accountID, 10), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
