package main

import (
	"context"
	"errors"
	"testing"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/rabbitmq"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifications struct {
	saved []domain.Notification
	err   error
}

func (f *fakeNotifications) Save(_ context.Context, n domain.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, n)
	return nil
}

func TestTransferEventHandler(t *testing.T) {
	repo := &fakeNotifications{}
	handle := newTransferEventHandler(usecase.NewNotifyRecipient(repo))

	body := []byte(`{"transfer_id":7,"sender_id":1,"sender_name":"Bruno Silva","recipient_id":2,"recipient_name":"Wallace Silva","amount":"23.39","occurred_at":"2024-03-10T12:00:00Z"}`)
	require.NoError(t, handle(context.Background(), body))
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "You received 23.39 from Bruno Silva", repo.saved[0].Message)
	assert.Equal(t, int64(2), repo.saved[0].RecipientID)
}

func TestTransferEventHandler_PoisonMessages(t *testing.T) {
	handle := newTransferEventHandler(usecase.NewNotifyRecipient(&fakeNotifications{}))

	err := handle(context.Background(), []byte(`not json`))
	assert.ErrorIs(t, err, rabbitmq.ErrPoisonMessage)

	err = handle(context.Background(), []byte(`{"transfer_id":0,"recipient_id":2}`))
	assert.ErrorIs(t, err, rabbitmq.ErrPoisonMessage)
}

func TestTransferEventHandler_StorageFailureIsRetried(t *testing.T) {
	handle := newTransferEventHandler(usecase.NewNotifyRecipient(&fakeNotifications{err: errors.New("mongo down")}))

	err := handle(context.Background(), []byte(`{"transfer_id":7,"recipient_id":2,"amount":"1"}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, rabbitmq.ErrPoisonMessage)
}
