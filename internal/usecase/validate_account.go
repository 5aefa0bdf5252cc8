package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

// AccountValidator barra dados inválidos antes de qualquer escrita no banco.
type AccountValidator struct {
	accountRepository gateway.AccountRepository
}

func NewAccountValidator(accountRepo gateway.AccountRepository) *AccountValidator {
	return &AccountValidator{accountRepository: accountRepo}
}

// ValidateForCreate: papel -> nome -> unicidade (email ou CPF) -> saldo.
func (v *AccountValidator) ValidateForCreate(ctx context.Context, account *domain.Account) error {
	if err := validateProfile(account); err != nil {
		return err
	}

	exists, err := v.accountRepository.ExistsByEmailOrTaxID(ctx, account.Email, account.TaxID)
	if err != nil {
		return fmt.Errorf("falha ao verificar duplicidade: %w", err)
	}
	if exists {
		return domain.ErrDuplicateAccount
	}

	return validateBalance(account)
}

// ValidateForUpdate aceita que o próprio registro seja dono do email/CPF;
// rejeita só se OUTRA conta já usa algum dos dois.
func (v *AccountValidator) ValidateForUpdate(ctx context.Context, account *domain.Account) error {
	if err := validateProfile(account); err != nil {
		return err
	}

	byEmail, err := v.accountRepository.FindByEmail(ctx, account.Email)
	if ownerErr := v.checkOwner(byEmail, err, account.ID); ownerErr != nil {
		return ownerErr
	}

	byTaxID, err := v.accountRepository.FindByTaxID(ctx, account.TaxID)
	if ownerErr := v.checkOwner(byTaxID, err, account.ID); ownerErr != nil {
		return ownerErr
	}

	return validateBalance(account)
}

func (v *AccountValidator) checkOwner(owner *domain.Account, lookupErr error, selfID int64) error {
	if errors.Is(lookupErr, domain.ErrAccountNotFound) {
		return nil
	}
	if lookupErr != nil {
		return fmt.Errorf("falha ao verificar duplicidade: %w", lookupErr)
	}
	if owner.ID != selfID {
		return domain.ErrDuplicateAccount
	}
	return nil
}

func validateProfile(account *domain.Account) error {
	if !account.Role.Valid() {
		return domain.ErrInvalidRole
	}
	if !domain.HasFullName(account.Name) {
		return domain.ErrInvalidName
	}
	return nil
}

func validateBalance(account *domain.Account) error {
	if account.Balance.IsNegative() {
		return domain.ErrNegativeBalance
	}
	return nil
}
