package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
)

// ErrIncompleteEvent indica mensagem que nunca vai ser processável (não recolocar na fila).
var ErrIncompleteEvent = errors.New("incomplete transfer event")

// NotifyRecipientUseCase transforma um transfer.completed em aviso para quem recebeu.
type NotifyRecipientUseCase struct {
	notificationRepository gateway.NotificationRepository
	now                    func() time.Time
}

func NewNotifyRecipient(repo gateway.NotificationRepository) *NotifyRecipientUseCase {
	return &NotifyRecipientUseCase{
		notificationRepository: repo,
		now:                    time.Now,
	}
}

func (uc *NotifyRecipientUseCase) Execute(ctx context.Context, event domain.TransferCompletedEvent) error {
	if event.TransferID == 0 || event.RecipientID == 0 {
		return fmt.Errorf("%w: transfer=%d recipient=%d", ErrIncompleteEvent, event.TransferID, event.RecipientID)
	}

	notification := domain.NewRecipientNotification(event)
	notification.CreatedAt = uc.now()

	if err := uc.notificationRepository.Save(ctx, notification); err != nil {
		return fmt.Errorf("falha ao salvar notificação da transferência %d: %w", event.TransferID, err)
	}
	return nil
}
