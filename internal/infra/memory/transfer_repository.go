package memory

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

type TransferRepository struct {
	store *Store
	inTx  bool
}

func NewTransferRepository(store *Store) *TransferRepository {
	return &TransferRepository{store: store}
}

func (r *TransferRepository) Create(ctx context.Context, record *domain.TransferRecord) error {
	if !r.inTx {
		r.store.txMu.Lock()
		defer r.store.txMu.Unlock()
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTransferID++
	record.ID = r.store.nextTransferID
	record.CreatedAt = time.Now()
	r.store.transfers[record.ID] = *record
	return nil
}

func (r *TransferRepository) FindByID(ctx context.Context, id int64) (*domain.TransferRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	record, ok := r.store.transfers[id]
	if !ok {
		return nil, domain.ErrTransferNotFound
	}
	return &record, nil
}

// Count é usado pelos testes para garantir que nada foi gravado após falha.
func (r *TransferRepository) Count() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.transfers)
}

func (r *TransferRepository) WithTx(tx gateway.TransactionObject) gateway.TransferRepository {
	store, ok := tx.(*Store)
	if !ok {
		return r
	}
	return &TransferRepository{store: store, inTx: true}
}
