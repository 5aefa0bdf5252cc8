package usecase

import (
	"context"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

// LogoutUserUseCase invalida o token de sessão. Token inexistente não é erro.
type LogoutUserUseCase struct {
	sessions gateway.SessionRepository
}

func NewLogoutUser(sessions gateway.SessionRepository) *LogoutUserUseCase {
	return &LogoutUserUseCase{sessions: sessions}
}

func (uc *LogoutUserUseCase) Execute(ctx context.Context, token string) error {
	if err := uc.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("erro ao encerrar sessão: %w", err)
	}
	return nil
}
