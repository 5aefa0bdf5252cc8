package usecase

import (
	"context"
	"testing"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferEngine_Execute_PersistsEverything(t *testing.T) {
	env := newTestEnv(t)
	sender := env.mustCreate(t, "Bruno Silva", validCPF, "bruno@gmail.com", domain.RoleCommonUser, "100.00")
	recipient := env.mustCreate(t, "Maria Souza", otherValidCPF, "maria@gmail.com", domain.RoleCommonUser, "0")
	engine := NewTransferEngine(env.accounts, env.transfers)

	record, err := engine.Execute(context.Background(), domain.TransferRequest{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Amount:      decimal.RequireFromString("23.39"),
	}, sender, recipient)
	require.NoError(t, err)

	assert.True(t, env.reload(t, sender.ID).Balance.Equal(decimal.RequireFromString("76.61")))
	assert.True(t, env.reload(t, recipient.ID).Balance.Equal(decimal.RequireFromString("23.39")))

	stored, err := env.transfers.FindByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, sender.ID, stored.SenderID)
	assert.Equal(t, "Bruno Silva", stored.SenderName)
	assert.Equal(t, recipient.ID, stored.RecipientID)
	assert.Equal(t, "Maria Souza", stored.RecipientName)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("23.39")))
	assert.Equal(t, 1, env.transfers.Count())
}

func TestTransferEngine_Execute_ValidationFailureWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	sender := env.mustCreate(t, "Bruno Silva", validCPF, "bruno@gmail.com", domain.RoleCommonUser, "10")
	recipient := env.mustCreate(t, "Maria Souza", otherValidCPF, "maria@gmail.com", domain.RoleCommonUser, "0")
	engine := NewTransferEngine(env.accounts, env.transfers)

	_, err := engine.Execute(context.Background(), domain.TransferRequest{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Amount:      decimal.NewFromInt(20),
	}, sender, recipient)

	assert.EqualError(t, err, "Not enough balance for the transfer")
	assert.True(t, env.reload(t, sender.ID).Balance.Equal(decimal.NewFromInt(10)))
	assert.True(t, env.reload(t, recipient.ID).Balance.IsZero())
	assert.Equal(t, 0, env.transfers.Count())
}

func TestTransferEngine_Execute_MerchantCannotSend(t *testing.T) {
	env := newTestEnv(t)
	merchant := env.mustCreate(t, "Loja Central", validCPF, "loja@gmail.com", domain.RoleMerchant, "1000")
	recipient := env.mustCreate(t, "Maria Souza", otherValidCPF, "maria@gmail.com", domain.RoleCommonUser, "0")

	_, err := NewTransferEngine(env.accounts, env.transfers).Execute(context.Background(), domain.TransferRequest{
		SenderID:    merchant.ID,
		RecipientID: recipient.ID,
		Amount:      decimal.NewFromInt(1),
	}, merchant, recipient)

	assert.ErrorIs(t, err, domain.ErrMerchantSender)
}

func TestTransferEngine_Execute_StorageFailure(t *testing.T) {
	env := newTestEnv(t)
	sender := env.mustCreate(t, "Bruno Silva", validCPF, "bruno@gmail.com", domain.RoleCommonUser, "100")
	recipient := env.mustCreate(t, "Maria Souza", otherValidCPF, "maria@gmail.com", domain.RoleCommonUser, "0")
	accounts := &failingAccountRepository{AccountRepository: env.accounts, failSaveID: recipient.ID}

	_, err := NewTransferEngine(accounts, env.transfers).Execute(context.Background(), domain.TransferRequest{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Amount:      decimal.NewFromInt(30),
	}, sender, recipient)

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	// O engine não desfaz o que já aplicou nos objetos recebidos.
	assert.True(t, sender.Balance.Equal(decimal.NewFromInt(70)))
	assert.True(t, recipient.Balance.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 0, env.transfers.Count())
}

func TestTransferEngine_Execute_RecordFailureIsStorageError(t *testing.T) {
	env := newTestEnv(t)
	sender := env.mustCreate(t, "Bruno Silva", validCPF, "bruno@gmail.com", domain.RoleCommonUser, "100")
	recipient := env.mustCreate(t, "Maria Souza", otherValidCPF, "maria@gmail.com", domain.RoleCommonUser, "0")

	_, err := NewTransferEngine(env.accounts, &failingTransferRepository{}).Execute(context.Background(), domain.TransferRequest{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Amount:      decimal.NewFromInt(30),
	}, sender, recipient)

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Contains(t, err.Error(), "disk full")
}
