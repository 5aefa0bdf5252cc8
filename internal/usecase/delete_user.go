package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

type DeleteUserUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewDeleteUser(accountRepo gateway.AccountRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{accountRepository: accountRepo}
}

// Execute remove a conta. Transferências antigas continuam (guardam os nomes).
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id int64) error {
	account, err := uc.accountRepository.FindByID(ctx, id)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.ErrUserNotExists
	}
	if err != nil {
		return fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return uc.accountRepository.Delete(ctx, account)
}
