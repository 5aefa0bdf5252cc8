package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/shopspring/decimal"
)

type UpdateUserInput struct {
	ID       int64
	Name     string
	TaxID    string
	Email    string
	Password string
	Balance  *decimal.Decimal // nil = mantém o saldo atual
	Role     string
}

type UpdateUserUseCase struct {
	accountRepository gateway.AccountRepository
	validator         *AccountValidator
	hasher            gateway.PasswordHasher
}

func NewUpdateUser(accountRepo gateway.AccountRepository, validator *AccountValidator, hasher gateway.PasswordHasher) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		accountRepository: accountRepo,
		validator:         validator,
		hasher:            hasher,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UserOutput, error) {
	current, err := uc.accountRepository.FindByID(ctx, input.ID)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, domain.ErrUserNotExists
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	role, _ := domain.ParseRole(input.Role)
	updated := &domain.Account{
		ID:        current.ID,
		Name:      input.Name,
		TaxID:     input.TaxID,
		Email:     input.Email,
		Role:      role,
		Balance:   current.Balance,
		CreatedAt: current.CreatedAt,
	}
	if input.Balance != nil {
		updated.Balance = *input.Balance
	}

	if err := uc.validator.ValidateForUpdate(ctx, updated); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	updated.Password = hash

	if err := uc.accountRepository.Save(ctx, updated); err != nil {
		return nil, err
	}

	output := newUserOutput(updated)
	return &output, nil
}
