package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

type AccountRepository struct {
	store *Store
	inTx  bool
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// lockWrites: fora de transação cada escrita pega o txMu; dentro, o Uow já pegou.
func (r *AccountRepository) lockWrites() func() {
	if r.inTx {
		return func() {}
	}
	r.store.txMu.Lock()
	return r.store.txMu.Unlock
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	defer r.lockWrites()()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.accounts {
		if existing.Email == account.Email || existing.TaxID == account.TaxID {
			return domain.ErrDuplicateAccount
		}
	}

	r.store.nextAccountID++
	now := time.Now()
	account.ID = r.store.nextAccountID
	account.CreatedAt = now
	account.UpdatedAt = now
	r.store.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	defer r.lockWrites()()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[account.ID]; !ok {
		return domain.NewStorageError("failed to save account", domain.ErrAccountNotFound)
	}
	for id, existing := range r.store.accounts {
		if id != account.ID && (existing.Email == account.Email || existing.TaxID == account.TaxID) {
			return domain.ErrDuplicateAccount
		}
	}

	account.UpdatedAt = time.Now()
	r.store.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

// FindByIDForUpdate: o Uow já serializa as transações, não há lock de linha.
func (r *AccountRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findFirst(func(a domain.Account) bool { return a.Email == email })
}

func (r *AccountRepository) FindByTaxID(ctx context.Context, taxID string) (*domain.Account, error) {
	return r.findFirst(func(a domain.Account) bool { return a.TaxID == taxID })
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Account, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		account := account
		result = append(result, &account)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(func(a domain.Account) bool { return a.Email == email }), nil
}

func (r *AccountRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	return r.exists(func(a domain.Account) bool { return a.TaxID == taxID }), nil
}

func (r *AccountRepository) ExistsByEmailOrTaxID(ctx context.Context, email, taxID string) (bool, error) {
	return r.exists(func(a domain.Account) bool { return a.Email == email || a.TaxID == taxID }), nil
}

func (r *AccountRepository) Delete(ctx context.Context, account *domain.Account) error {
	return r.DeleteByID(ctx, account.ID)
}

func (r *AccountRepository) DeleteByID(ctx context.Context, id int64) error {
	defer r.lockWrites()()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.store.accounts, id)
	return nil
}

func (r *AccountRepository) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	store, ok := tx.(*Store)
	if !ok {
		return r
	}
	return &AccountRepository{store: store, inTx: true}
}

func (r *AccountRepository) findFirst(match func(domain.Account) bool) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, account := range r.store.accounts {
		if match(account) {
			found := account
			return &found, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *AccountRepository) exists(match func(domain.Account) bool) bool {
	_, err := r.findFirst(match)
	return err == nil
}
