package gateway

import (
	"context"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
)

// AccountRepository define o contrato para persistência de contas.
// Buscas por email e CPF são exatas (case-sensitive).
// Métodos Find* devolvem domain.ErrAccountNotFound quando não existe.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Save(ctx context.Context, account *domain.Account) error

	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	// Lock Pessimista: só faz sentido dentro de TransactionManager.Run
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByTaxID(ctx context.Context, taxID string) (*domain.Account, error)
	FindAll(ctx context.Context) ([]*domain.Account, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	ExistsByEmailOrTaxID(ctx context.Context, email, taxID string) (bool, error)

	Delete(ctx context.Context, account *domain.Account) error
	DeleteByID(ctx context.Context, id int64) error

	// WithTx permite que o repositório participe de uma transação iniciada no nível superior
	WithTx(tx TransactionObject) AccountRepository
}
