package gateway

import "github.com/shopspring/decimal"

// TransferMetrics é opcional nos usecases (nil = sem métricas).
type TransferMetrics interface {
	TransferSucceeded(amount decimal.Decimal)
	TransferFailed(reason string)
}
