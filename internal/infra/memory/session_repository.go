package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
)

type session struct {
	accountID int64
	expiresAt time.Time
}

type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]session
	now      func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]session),
		now:      time.Now,
	}
}

func (r *SessionRepository) Get(ctx context.Context, token string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	if !r.now().Before(s.expiresAt) {
		delete(r.sessions, token)
		return 0, domain.ErrSessionNotFound
	}
	return s.accountID, nil
}

func (r *SessionRepository) Save(ctx context.Context, token string, accountID int64, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = session{accountID: accountID, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}
