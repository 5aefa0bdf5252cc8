package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Role classifica a conta. Enum fechado: o zero value é inválido.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleCommonUser
	RoleMerchant
	RoleAdmin
)

// ParseRole converte a representação externa (JSON, coluna do banco) para o enum.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "COMMON_USER":
		return RoleCommonUser, nil
	case "MERCHANT":
		return RoleMerchant, nil
	case "ADMIN":
		return RoleAdmin, nil
	}
	return RoleUnknown, ErrInvalidRole
}

func (r Role) String() string {
	switch r {
	case RoleCommonUser:
		return "COMMON_USER"
	case RoleMerchant:
		return "MERCHANT"
	case RoleAdmin:
		return "ADMIN"
	case RoleUnknown:
		return "UNKNOWN"
	}
	return fmt.Sprintf("Role(%d)", r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCommonUser, RoleMerchant, RoleAdmin:
		return true
	case RoleUnknown:
		return false
	}
	return false
}

// CanSendMoney: lojistas só recebem.
func (r Role) CanSendMoney() bool {
	switch r {
	case RoleCommonUser, RoleAdmin:
		return true
	case RoleMerchant, RoleUnknown:
		return false
	}
	return false
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidRole
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Nome + sobrenome, ambos capitalizados (ex: "Bruno Silva").
var fullNamePattern = regexp.MustCompile(`^[A-Z][a-z].* [A-Z][a-z].*$`)

// Account representa o usuário/lojista e o saldo dele.
// Clean Architecture: Esta entidade não sabe o que é JSON nem SQL.
type Account struct {
	ID        int64
	Name      string
	TaxID     string // CPF
	Email     string
	Password  string // hash bcrypt, nunca o texto puro
	Role      Role
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func HasFullName(name string) bool {
	return fullNamePattern.MatchString(name)
}

func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Debit e Credit não validam: quem chama (ValidateTransfer) já garantiu as regras.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}
