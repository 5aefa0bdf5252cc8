package usecase

import (
	"context"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/shopspring/decimal"
)

type RegisterUserInput struct {
	Name     string
	TaxID    string
	Email    string
	Password string
	Balance  *decimal.Decimal // nil = saldo inicial zero
	Role     string
}

type RegisterUserOutput struct {
	ID int64
}

type RegisterUserUseCase struct {
	accountRepository gateway.AccountRepository
	validator         *AccountValidator
	hasher            gateway.PasswordHasher
}

func NewRegisterUser(accountRepo gateway.AccountRepository, validator *AccountValidator, hasher gateway.PasswordHasher) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		accountRepository: accountRepo,
		validator:         validator,
		hasher:            hasher,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	account := input.toAccount()

	if err := uc.validator.ValidateForCreate(ctx, account); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	account.Password = hash

	// Uma criação é um insert só, não precisamos de UoW aqui.
	// A unique constraint do banco cobre a corrida entre validação e insert.
	if err := uc.accountRepository.Create(ctx, account); err != nil {
		return nil, err
	}

	return &RegisterUserOutput{ID: account.ID}, nil
}

// toAccount: papel inválido vira RoleUnknown e o validator reprova.
func (in RegisterUserInput) toAccount() *domain.Account {
	role, _ := domain.ParseRole(in.Role)
	balance := decimal.Zero
	if in.Balance != nil {
		balance = *in.Balance
	}
	return &domain.Account{
		Name:    in.Name,
		TaxID:   in.TaxID,
		Email:   in.Email,
		Role:    role,
		Balance: balance,
	}
}
