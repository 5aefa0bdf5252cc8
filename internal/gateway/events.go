package gateway

import (
	"context"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
)

// EventPublisher entrega eventos de domínio (ex: transfer.completed na exchange bank_events).
// body é serializado em JSON pela implementação.
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}

// NotificationRepository persiste os avisos gerados pelo worker.
// Save precisa ser idempotente por TransferID (a fila pode reentregar).
type NotificationRepository interface {
	Save(ctx context.Context, notification domain.Notification) error
}
