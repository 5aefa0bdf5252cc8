package gateway

import (
	"context"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
)

type TransferRepository interface {
	// Create preenche ID e CreatedAt no registro recebido
	Create(ctx context.Context, record *domain.TransferRecord) error
	FindByID(ctx context.Context, id int64) (*domain.TransferRecord, error)
	WithTx(tx TransactionObject) TransferRepository
}
