package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

type GetUserUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewGetUser(accountRepo gateway.AccountRepository) *GetUserUseCase {
	return &GetUserUseCase{accountRepository: accountRepo}
}

func (u *GetUserUseCase) Execute(ctx context.Context, id int64) (*UserOutput, error) {
	account, err := u.accountRepository.FindByID(ctx, id)
	if err != nil {
		// Se for erro de "não encontrado", retornamos o erro de domínio
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUserNotExists
		}
		// Outros erros (banco fora do ar, etc)
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	output := newUserOutput(account)
	return &output, nil
}

type ListUsersUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewListUsers(accountRepo gateway.AccountRepository) *ListUsersUseCase {
	return &ListUsersUseCase{accountRepository: accountRepo}
}

func (u *ListUsersUseCase) Execute(ctx context.Context) ([]UserOutput, error) {
	accounts, err := u.accountRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}

	output := make([]UserOutput, 0, len(accounts))
	for _, account := range accounts {
		output = append(output, newUserOutput(account))
	}
	return output, nil
}
