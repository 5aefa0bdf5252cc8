package handler

import (
	"net/http"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/http/middleware"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/usecase"
	"github.com/shopspring/decimal"
)

// TransferHandler expõe as operações de transferência via HTTP
type TransferHandler struct {
	transferUseCase *usecase.TransferMoneyUseCase
}

// NewTransferHandler cria uma nova instância
func NewTransferHandler(uc *usecase.TransferMoneyUseCase) *TransferHandler {
	return &TransferHandler{
		transferUseCase: uc,
	}
}

// DTOs (Data Transfer Objects) para Request/Response.
// Ponteiros para distinguir "não enviado" de zero.
type CreateTransferRequest struct {
	SenderID    *int64           `json:"senderId" validate:"required"`
	RecipientID *int64           `json:"recipientId" validate:"required"`
	Value       *decimal.Decimal `json:"value" validate:"required"`
}

type CreateTransferResponse struct {
	Message          string          `json:"message"`
	TransferID       int64           `json:"transferId"`
	SenderBalance    decimal.Decimal `json:"senderBalance"`
	RecipientBalance decimal.Decimal `json:"recipientBalance"`
}

// Create processa a requisição de transferência
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTransferRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Identidade autenticada segue opaca até o usecase (vai no evento)
	initiatedBy, _ := middleware.AccountIDFromContext(ctx)

	output, err := h.transferUseCase.Execute(ctx, usecase.TransferMoneyInput{
		SenderID:    *req.SenderID,
		RecipientID: *req.RecipientID,
		Amount:      *req.Value,
		InitiatedBy: initiatedBy,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, CreateTransferResponse{
		Message:          "Transfer completed successfully",
		TransferID:       output.TransferID,
		SenderBalance:    output.SenderBalance,
		RecipientBalance: output.RecipientBalance,
	})
}
