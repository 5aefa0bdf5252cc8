package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferCompletedEvent é o payload publicado após o commit de uma transferência.
type TransferCompletedEvent struct {
	TransferID    int64           `json:"transfer_id"`
	SenderID      int64           `json:"sender_id"`
	SenderName    string          `json:"sender_name"`
	RecipientID   int64           `json:"recipient_id"`
	RecipientName string          `json:"recipient_name"`
	Amount        decimal.Decimal `json:"amount"`
	InitiatedBy   int64           `json:"initiated_by,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func NewTransferCompletedEvent(record *TransferRecord, initiatedBy int64) TransferCompletedEvent {
	return TransferCompletedEvent{
		TransferID:    record.ID,
		SenderID:      record.SenderID,
		SenderName:    record.SenderName,
		RecipientID:   record.RecipientID,
		RecipientName: record.RecipientName,
		Amount:        record.Amount,
		InitiatedBy:   initiatedBy,
		OccurredAt:    record.CreatedAt,
	}
}

// Notification é o aviso que o destinatário recebe ao ganhar dinheiro.
type Notification struct {
	TransferID  int64
	RecipientID int64
	Message     string
	Amount      decimal.Decimal
	Read        bool
	CreatedAt   time.Time
}

func NewRecipientNotification(event TransferCompletedEvent) Notification {
	return Notification{
		TransferID:  event.TransferID,
		RecipientID: event.RecipientID,
		Message:     fmt.Sprintf("You received %s from %s", event.Amount.StringFixed(2), event.SenderName),
		Amount:      event.Amount,
	}
}
