// Package memory guarda contas, transferências e sessões em mapas.
// Serve para rodar a API sem Postgres/Redis (STORAGE_DRIVER=memory) e como fake nos testes.
package memory

import (
	"context"
	"sync"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

var (
	_ gateway.AccountRepository  = (*AccountRepository)(nil)
	_ gateway.TransferRepository = (*TransferRepository)(nil)
	_ gateway.SessionRepository  = (*SessionRepository)(nil)
	_ gateway.TransactionManager = (*Uow)(nil)
)

// Store é o "banco" compartilhado pelos repositórios em memória.
type Store struct {
	txMu sync.Mutex // serializa transações e escritas fora delas

	mu             sync.RWMutex
	accounts       map[int64]domain.Account
	transfers      map[int64]domain.TransferRecord
	nextAccountID  int64
	nextTransferID int64
}

func NewStore() *Store {
	return &Store{
		accounts:  make(map[int64]domain.Account),
		transfers: make(map[int64]domain.TransferRecord),
	}
}

type snapshot struct {
	accounts       map[int64]domain.Account
	transfers      map[int64]domain.TransferRecord
	nextAccountID  int64
	nextTransferID int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		accounts:       make(map[int64]domain.Account, len(s.accounts)),
		transfers:      make(map[int64]domain.TransferRecord, len(s.transfers)),
		nextAccountID:  s.nextAccountID,
		nextTransferID: s.nextTransferID,
	}
	for id, a := range s.accounts {
		snap.accounts[id] = a
	}
	for id, t := range s.transfers {
		snap.transfers[id] = t
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = snap.accounts
	s.transfers = snap.transfers
	s.nextAccountID = snap.nextAccountID
	s.nextTransferID = snap.nextTransferID
}

// Uow implementa gateway.TransactionManager em memória:
// uma transação por vez, rollback restaurando o snapshot.
type Uow struct {
	store *Store
}

func NewUow(store *Store) *Uow {
	return &Uow{store: store}
}

func (u *Uow) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	snap := u.store.snapshot()
	ctxWithTx := context.WithValue(ctx, gateway.TransactionKey, u.store)

	if err := fn(ctxWithTx); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}
