package postgres

import (
	"context"
	"errors"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/postgres/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransferRepository struct {
	db      *pgxpool.Pool
	queries *db.Queries
}

func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

func (r *TransferRepository) Create(ctx context.Context, record *domain.TransferRecord) error {
	// Conversão do domínio para o formato do SQLC
	row, err := r.queries.CreateTransfer(ctx, db.CreateTransferParams{
		SenderID:      record.SenderID,
		SenderName:    record.SenderName,
		RecipientID:   record.RecipientID,
		RecipientName: record.RecipientName,
		Amount:        record.Amount,
	})
	if err != nil {
		return domain.NewStorageError("failed to create transfer", err)
	}

	record.ID = row.ID
	record.CreatedAt = row.CreatedAt.Time
	return nil
}

func (r *TransferRepository) FindByID(ctx context.Context, id int64) (*domain.TransferRecord, error) {
	row, err := r.queries.GetTransfer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}
		return nil, domain.NewStorageError("failed to get transfer", err)
	}
	return &domain.TransferRecord{
		ID:            row.ID,
		SenderID:      row.SenderID,
		SenderName:    row.SenderName,
		RecipientID:   row.RecipientID,
		RecipientName: row.RecipientName,
		Amount:        row.Amount,
		CreatedAt:     row.CreatedAt.Time,
	}, nil
}

func (r *TransferRepository) WithTx(tx gateway.TransactionObject) gateway.TransferRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &TransferRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}
