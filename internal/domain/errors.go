package domain

import (
	"errors"
	"fmt"
)

// ValidationError é o erro de regra de negócio: dado enviado pelo cliente
// (ou estado referenciado por ele) que viola uma regra. Sempre vira 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// StorageError embrulha falhas da camada de persistência. Sempre vira 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Regras de transferência (a mensagem é contrato com o cliente)
var (
	ErrNotEnoughBalance = NewValidationError("Not enough balance for the transfer")
	ErrZeroAmount       = NewValidationError("The transfer amount cannot be 0")
	ErrNegativeAmount   = NewValidationError("Transactions with negative amounts are not permitted")
	ErrMerchantSender   = NewValidationError("Merchant cannot send money")
	ErrSelfTransfer     = NewValidationError("It is not allowed to make a transaction for yourself")
	ErrSenderNotFound   = NewValidationError("This sender ID does not exist in our system")
	ErrRecipientMissing = NewValidationError("This recipient ID does not exist in our system")
)

// Regras de conta
var (
	ErrInvalidRole      = NewValidationError("Wrong user type, the types are: MERCHANT, COMMON_USER or ADMIN")
	ErrInvalidName      = NewValidationError("The name must contain at least the first and middle name")
	ErrDuplicateAccount = NewValidationError("This email or CPF already has an associated record")
	ErrNegativeBalance  = NewValidationError("You cannot have a negative amount on your balance")
	ErrUserNotExists    = NewValidationError("User not exists")
)

var (
	// ErrAccountNotFound é devolvido pelos repositórios; o usecase traduz
	// para a ValidationError adequada ao contexto.
	ErrAccountNotFound    = errors.New("account not found")
	ErrTransferNotFound   = errors.New("transfer not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUnauthorized       = errors.New("authentication required")
	ErrSessionNotFound    = errors.New("session not found")
)
