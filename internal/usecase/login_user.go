package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/google/uuid"
)

type LoginUserInput struct {
	Login    string // email
	Password string
}

type LoginUserOutput struct {
	Token     string
	AccountID int64
	ExpiresAt time.Time
}

// LoginUserUseCase é o colaborador de autenticação: o core de transferência
// nunca confere senha, só recebe a identidade já resolvida.
type LoginUserUseCase struct {
	accountRepository gateway.AccountRepository
	sessions          gateway.SessionRepository
	hasher            gateway.PasswordHasher
	sessionTTL        time.Duration
}

func NewLoginUser(accountRepo gateway.AccountRepository, sessions gateway.SessionRepository, hasher gateway.PasswordHasher, ttl time.Duration) *LoginUserUseCase {
	return &LoginUserUseCase{
		accountRepository: accountRepo,
		sessions:          sessions,
		hasher:            hasher,
		sessionTTL:        ttl,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	account, err := uc.accountRepository.FindByEmail(ctx, input.Login)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta: %w", err)
	}

	ok, err := uc.hasher.Compare(account.Password, input.Password)
	if err != nil {
		return nil, fmt.Errorf("erro ao conferir senha: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := uc.sessions.Save(ctx, token, account.ID, uc.sessionTTL); err != nil {
		return nil, fmt.Errorf("erro ao criar sessão: %w", err)
	}

	return &LoginUserOutput{
		Token:     token,
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(uc.sessionTTL),
	}, nil
}
