package usecase

import (
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/shopspring/decimal"
)

// UserOutput é a visão pública da conta. Senha nunca sai daqui.
type UserOutput struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	TaxID   string          `json:"taxId"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
	Role    domain.Role     `json:"role"`
}

func newUserOutput(account *domain.Account) UserOutput {
	return UserOutput{
		ID:      account.ID,
		Name:    account.Name,
		TaxID:   account.TaxID,
		Email:   account.Email,
		Balance: account.Balance,
		Role:    account.Role,
	}
}
