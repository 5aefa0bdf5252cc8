package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/postgres/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// AccountRepository implementa gateway.AccountRepository usando pgx/v5
type AccountRepository struct {
	db      *pgxpool.Pool //  Usamos pgxpool em vez de sql.DB
	queries *db.Queries
}

// NewAccountRepository cria uma nova instância
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	row, err := r.queries.CreateAccount(ctx, db.CreateAccountParams{
		Name:     account.Name,
		TaxID:    account.TaxID,
		Email:    account.Email,
		Password: account.Password,
		Role:     account.Role.String(),
		Balance:  account.Balance,
	})
	if err != nil {
		return accountWriteError("failed to create account", err)
	}

	// Atualiza o ID e timestamps gerados pelo banco de volta no objeto de domínio
	account.ID = row.ID
	account.CreatedAt = row.CreatedAt.Time
	account.UpdatedAt = row.UpdatedAt.Time
	return nil
}

func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	rowsAffected, err := r.queries.UpdateAccount(ctx, db.UpdateAccountParams{
		ID:       account.ID,
		Name:     account.Name,
		TaxID:    account.TaxID,
		Email:    account.Email,
		Password: account.Password,
		Role:     account.Role.String(),
		Balance:  account.Balance,
	})
	if err != nil {
		return accountWriteError("failed to save account", err)
	}
	if rowsAffected == 0 {
		return domain.NewStorageError("failed to save account", fmt.Errorf("account %d: %w", account.ID, domain.ErrAccountNotFound))
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	row, err := r.queries.GetAccount(ctx, id)
	return toDomainAccountOrError("failed to get account", row, err)
}

// 🔐 Implementação do Lock
func (r *AccountRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	// Chama a query com "FOR UPDATE"
	row, err := r.queries.GetAccountForUpdate(ctx, id)
	return toDomainAccountOrError("failed to lock account", row, err)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByEmail(ctx, email)
	return toDomainAccountOrError("failed to get account by email", row, err)
}

func (r *AccountRepository) FindByTaxID(ctx context.Context, taxID string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByTaxID(ctx, taxID)
	return toDomainAccountOrError("failed to get account by tax id", row, err)
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx)
	if err != nil {
		return nil, domain.NewStorageError("failed to list accounts", err)
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		account, err := toDomainAccount(row)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := r.queries.ExistsAccountByEmail(ctx, email)
	if err != nil {
		return false, domain.NewStorageError("failed to check email", err)
	}
	return exists, nil
}

func (r *AccountRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	exists, err := r.queries.ExistsAccountByTaxID(ctx, taxID)
	if err != nil {
		return false, domain.NewStorageError("failed to check tax id", err)
	}
	return exists, nil
}

func (r *AccountRepository) ExistsByEmailOrTaxID(ctx context.Context, email, taxID string) (bool, error) {
	exists, err := r.queries.ExistsAccountByEmailOrTaxID(ctx, db.ExistsAccountByEmailOrTaxIDParams{
		Email: email,
		TaxID: taxID,
	})
	if err != nil {
		return false, domain.NewStorageError("failed to check email or tax id", err)
	}
	return exists, nil
}

func (r *AccountRepository) Delete(ctx context.Context, account *domain.Account) error {
	return r.DeleteByID(ctx, account.ID)
}

func (r *AccountRepository) DeleteByID(ctx context.Context, id int64) error {
	rowsAffected, err := r.queries.DeleteAccount(ctx, id)
	if err != nil {
		return domain.NewStorageError("failed to delete account", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// WithTx retorna uma cópia do repositório usando uma transação específica
func (r *AccountRepository) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &AccountRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}

func toDomainAccountOrError(op string, row db.Account, err error) (*domain.Account, error) {
	if err != nil {
		// pgx retorna pgx.ErrNoRows, diferente de sql.ErrNoRows
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, domain.NewStorageError(op, err)
	}
	return toDomainAccount(row)
}

// Mapper: linha do banco -> domínio. O papel é validado aqui também.
func toDomainAccount(row db.Account) (*domain.Account, error) {
	role, err := domain.ParseRole(row.Role)
	if err != nil {
		return nil, domain.NewStorageError("invalid role stored", fmt.Errorf("account %d has role %q", row.ID, row.Role))
	}
	return &domain.Account{
		ID:       row.ID,
		Name:     row.Name,
		TaxID:    row.TaxID,
		Email:    row.Email,
		Password: row.Password,
		Role:     role,
		Balance:  row.Balance,
		//  pgtype.Timestamptz é uma struct, acessamos o valor .Time
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}, nil
}

// accountWriteError: violação de unique (email/CPF) vira erro de validação.
func accountWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicateAccount
	}
	return domain.NewStorageError(op, err)
}
