package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	EventsExchange           = "bank_events"
	TransferCompletedRouting = "transfer.completed"
)

// TransferMoneyInput define os dados necessários para realizar uma transferência.
// Usamos DTOs (Data Transfer Objects) para não acoplar a API HTTP ao UseCase.
type TransferMoneyInput struct {
	SenderID    int64
	RecipientID int64
	Amount      decimal.Decimal
	// InitiatedBy é a identidade já autenticada de quem chamou (opaca para o core)
	InitiatedBy int64
}

// TransferMoneyOutput define o que devolvemos para quem chamou.
type TransferMoneyOutput struct {
	TransferID       int64
	SenderBalance    decimal.Decimal
	RecipientBalance decimal.Decimal
}

// TransferMoneyUseCase contém as dependências necessárias.
type TransferMoneyUseCase struct {
	accountRepository  gateway.AccountRepository
	transferRepository gateway.TransferRepository
	transactionManager gateway.TransactionManager // Nosso "Unit of Work"
	eventPublisher     gateway.EventPublisher
	metrics            gateway.TransferMetrics
}

// NewTransferMoney cria uma nova instância do UseCase.
// publisher e metrics podem ser nil.
func NewTransferMoney(
	accountRepo gateway.AccountRepository,
	transferRepo gateway.TransferRepository,
	txManager gateway.TransactionManager,
	publisher gateway.EventPublisher,
	metrics gateway.TransferMetrics,
) *TransferMoneyUseCase {
	return &TransferMoneyUseCase{
		accountRepository:  accountRepo,
		transferRepository: transferRepo,
		transactionManager: txManager,
		eventPublisher:     publisher,
		metrics:            metrics,
	}
}

// Execute roda a lógica de negócio.
func (u *TransferMoneyUseCase) Execute(ctx context.Context, input TransferMoneyInput) (*TransferMoneyOutput, error) {
	var (
		record            *domain.TransferRecord
		sender, recipient *domain.Account
	)

	// Se a função anônima retornar erro, o Run faz ROLLBACK; se nil, COMMIT.
	err := u.transactionManager.Run(ctx, func(contextWithTx context.Context) error {
		transactionObject := contextWithTx.Value(gateway.TransactionKey)
		if transactionObject == nil {
			return fmt.Errorf("erro crítico: transação não encontrada no contexto")
		}

		accountRepoTx := u.accountRepository.WithTx(transactionObject)
		engine := NewTransferEngine(u.accountRepository, u.transferRepository).WithTx(transactionObject)

		var err error
		sender, recipient, err = lockAccounts(contextWithTx, accountRepoTx, input.SenderID, input.RecipientID)
		if err != nil {
			return err
		}

		record, err = engine.Execute(contextWithTx, domain.TransferRequest{
			SenderID:    input.SenderID,
			RecipientID: input.RecipientID,
			Amount:      input.Amount,
		}, sender, recipient)
		return err
	})
	if err != nil {
		u.recordFailure(err)
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.TransferSucceeded(record.Amount)
	}
	u.publish(ctx, record, input.InitiatedBy)

	return &TransferMoneyOutput{
		TransferID:       record.ID,
		SenderBalance:    sender.Balance,
		RecipientBalance: recipient.Balance,
	}, nil
}

// lockAccounts trava as duas contas (SELECT ... FOR UPDATE) sempre do menor
// ID para o maior, para que A->B e B->A simultâneas não entrem em deadlock.
func lockAccounts(ctx context.Context, repo gateway.AccountRepository, senderID, recipientID int64) (*domain.Account, *domain.Account, error) {
	firstID, secondID := senderID, recipientID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}

	locked := make(map[int64]*domain.Account, 2)
	for _, id := range []int64{firstID, secondID} {
		if _, ok := locked[id]; ok {
			continue
		}
		account, err := repo.FindByIDForUpdate(ctx, id)
		if errors.Is(err, domain.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("falha ao travar conta %d: %w", id, err)
		}
		locked[id] = account
	}

	sender, ok := locked[senderID]
	if !ok {
		return nil, nil, domain.ErrSenderNotFound
	}
	recipient, ok := locked[recipientID]
	if !ok {
		return nil, nil, domain.ErrRecipientMissing
	}
	return sender, recipient, nil
}

func (u *TransferMoneyUseCase) recordFailure(err error) {
	if u.metrics == nil {
		return
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		u.metrics.TransferFailed("validation")
		return
	}
	u.metrics.TransferFailed("storage")
}

func (u *TransferMoneyUseCase) publish(ctx context.Context, record *domain.TransferRecord, initiatedBy int64) {
	if u.eventPublisher == nil {
		return
	}
	event := domain.NewTransferCompletedEvent(record, initiatedBy)
	// Apenas logamos o erro, não falhamos a request HTTP
	if err := u.eventPublisher.Publish(ctx, EventsExchange, TransferCompletedRouting, event); err != nil {
		log.Error().Err(err).Int64("transfer_id", record.ID).Msg("Falha ao publicar evento de transferência")
	}
}
