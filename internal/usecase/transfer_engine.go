package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

// TransferEngine valida, movimenta e persiste uma transferência entre duas
// contas já carregadas. Não abre transação: quem chama decide (ver TransferMoneyUseCase).
//
// Se a persistência falhar no meio, as contas recebidas já estão alteradas em
// memória. Quem chamou não deve reaproveitar esses objetos.
type TransferEngine struct {
	accountRepository  gateway.AccountRepository
	transferRepository gateway.TransferRepository
}

func NewTransferEngine(accountRepo gateway.AccountRepository, transferRepo gateway.TransferRepository) *TransferEngine {
	return &TransferEngine{
		accountRepository:  accountRepo,
		transferRepository: transferRepo,
	}
}

// WithTx devolve uma cópia do engine ligada à transação
func (e *TransferEngine) WithTx(tx gateway.TransactionObject) *TransferEngine {
	return &TransferEngine{
		accountRepository:  e.accountRepository.WithTx(tx),
		transferRepository: e.transferRepository.WithTx(tx),
	}
}

func (e *TransferEngine) Execute(ctx context.Context, req domain.TransferRequest, sender, recipient *domain.Account) (*domain.TransferRecord, error) {
	record, err := domain.ApplyTransfer(req, sender, recipient)
	if err != nil {
		return nil, err
	}

	if err := e.accountRepository.Save(ctx, sender); err != nil {
		return nil, storageFailure(fmt.Sprintf("falha no débito (origem %d)", sender.ID), err)
	}
	if err := e.accountRepository.Save(ctx, recipient); err != nil {
		return nil, storageFailure(fmt.Sprintf("falha no crédito (destino %d)", recipient.ID), err)
	}
	if err := e.transferRepository.Create(ctx, record); err != nil {
		return nil, storageFailure("falha ao salvar registro da transferência", err)
	}

	return record, nil
}

// storageFailure garante que qualquer falha de escrita chegue como StorageError.
func storageFailure(op string, err error) error {
	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return domain.NewStorageError(op, err)
}
