package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest é a intenção de transferência. Não é persistida.
type TransferRequest struct {
	SenderID    int64
	RecipientID int64
	Amount      decimal.Decimal
}

// TransferRecord é o registro imutável de uma transferência concluída.
// Os nomes são um retrato do momento da transferência.
type TransferRecord struct {
	ID            int64
	SenderID      int64
	SenderName    string
	RecipientID   int64
	RecipientName string
	Amount        decimal.Decimal
	CreatedAt     time.Time
}

// ValidateTransfer aplica as regras na ordem contratada:
// saldo -> zero -> negativo -> lojista -> para si mesmo.
// A verificação de saldo vem antes das de sinal de propósito; não reordenar.
func ValidateTransfer(req TransferRequest, sender *Account) error {
	if !sender.HasSufficientFunds(req.Amount) {
		return ErrNotEnoughBalance
	}
	if req.Amount.IsZero() {
		return ErrZeroAmount
	}
	if req.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !sender.Role.CanSendMoney() {
		return ErrMerchantSender
	}
	if req.RecipientID == req.SenderID {
		return ErrSelfTransfer
	}
	return nil
}

// ApplyTransfer valida, movimenta os saldos e devolve o registro (ainda sem ID).
// Em caso de erro nenhuma conta é alterada.
func ApplyTransfer(req TransferRequest, sender, recipient *Account) (*TransferRecord, error) {
	if err := ValidateTransfer(req, sender); err != nil {
		return nil, err
	}

	sender.Debit(req.Amount)
	recipient.Credit(req.Amount)

	return &TransferRecord{
		SenderID:      req.SenderID,
		SenderName:    sender.Name,
		RecipientID:   req.RecipientID,
		RecipientName: recipient.Name,
		Amount:        req.Amount,
	}, nil
}
