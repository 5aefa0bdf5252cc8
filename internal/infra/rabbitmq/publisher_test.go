package rabbitmq

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishing_TransferCompleted(t *testing.T) {
	event := domain.NewTransferCompletedEvent(&domain.TransferRecord{
		ID:            7,
		SenderID:      1,
		SenderName:    "Bruno Silva",
		RecipientID:   2,
		RecipientName: "Wallace Silva",
		Amount:        decimal.RequireFromString("23.39"),
		CreatedAt:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}, 1)

	msg, err := newPublishing(event)
	require.NoError(t, err)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	// O worker decodifica exatamente este corpo
	var decoded domain.TransferCompletedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, int64(7), decoded.TransferID)
	assert.Equal(t, int64(2), decoded.RecipientID)
	assert.True(t, decoded.Amount.Equal(event.Amount))
	assert.JSONEq(t, `"23.39"`, string(mustField(t, msg.Body, "amount")))
}

func TestNewPublishing_Unmarshalable(t *testing.T) {
	_, err := newPublishing(make(chan int))
	assert.ErrorContains(t, err, "failed to marshal event")
}

func mustField(t *testing.T, body []byte, field string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	return fields[field]
}
