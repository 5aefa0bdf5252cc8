package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t)
	uc := NewRegisterUser(env.accounts, env.validator, env.hasher)

	out, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Bruno Silva",
		TaxID:    validCPF,
		Email:    "bruno@gmail.com",
		Password: "12345",
		Role:     "common_user",
	})
	require.NoError(t, err)

	saved := env.reload(t, out.ID)
	assert.Equal(t, domain.RoleCommonUser, saved.Role)
	assert.True(t, saved.Balance.IsZero(), "balance defaults to zero")
	assert.Equal(t, "hashed:12345", saved.Password)
}

func TestRegisterUser_Rejections(t *testing.T) {
	env := newTestEnv(t)
	uc := NewRegisterUser(env.accounts, env.validator, env.hasher)
	negative := decimal.NewFromInt(-10)

	_, err := uc.Execute(context.Background(), RegisterUserInput{Name: "bruno", TaxID: validCPF, Email: "bruno@gmail.com", Password: "1", Role: "MERCHANT"})
	assert.EqualError(t, err, "The name must contain at least the first and middle name")

	_, err = uc.Execute(context.Background(), RegisterUserInput{Name: "Bruno Silva", TaxID: validCPF, Email: "bruno@gmail.com", Password: "1", Role: "USER"})
	assert.EqualError(t, err, "Wrong user type, the types are: MERCHANT, COMMON_USER or ADMIN")

	_, err = uc.Execute(context.Background(), RegisterUserInput{Name: "Bruno Silva", TaxID: validCPF, Email: "bruno@gmail.com", Password: "1", Role: "ADMIN", Balance: &negative})
	assert.EqualError(t, err, "You cannot have a negative amount on your balance")

	_, err = uc.Execute(context.Background(), RegisterUserInput{Name: "Bruno Silva", TaxID: validCPF, Email: "bruno@gmail.com", Password: "1", Role: "ADMIN"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), RegisterUserInput{Name: "Maria Souza", TaxID: otherValidCPF, Email: "bruno@gmail.com", Password: "1", Role: "ADMIN"})
	assert.EqualError(t, err, "This email or CPF already has an associated record")
}

func TestLoginUser(t *testing.T) {
	env := newTestEnv(t)
	account := env.mustCreate(t, "Bruno Silva", validCPF, "bruno@gmail.com", domain.RoleCommonUser, "0")
	uc := NewLoginUser(env.accounts, env.sessions, env.hasher, time.Hour)

	out, err := uc.Execute(context.Background(), LoginUserInput{Login: "bruno@gmail.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, account.ID, out.AccountID)

	id, err := env.sessions.Get(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, id)

	_, err = uc.Execute(context.Background(), LoginUserInput{Login: "bruno@gmail.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), LoginUserInput{Login: "nobody@gmail.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutUser(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.sessions.Save(context.Background(), "token-1", 1, time.Hour))
	uc := NewLogoutUser(env.sessions)

	require.NoError(t, uc.Execute(context.Background(), "token-1"))
	_, err := env.sessions.Get(context.Background(), "token-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Logout repetido não falha
	assert.NoError(t, uc.Execute(context.Background(), "token-1"))
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	bruno := env.mustCreate(t, "Bruno Silva", validCPF, "bruno@gmail.com", domain.RoleCommonUser, "100")
	env.mustCreate(t, "Maria Souza", otherValidCPF, "maria@gmail.com", domain.RoleCommonUser, "0")
	uc := NewUpdateUser(env.accounts, env.validator, env.hasher)

	// mesmo email/CPF do próprio registro: não é duplicidade
	out, err := uc.Execute(context.Background(), UpdateUserInput{
		ID: bruno.ID, Name: "Bruno Silva Santos", TaxID: validCPF, Email: "bruno@gmail.com", Password: "new", Role: "merchant",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bruno Silva Santos", out.Name)
	assert.Equal(t, domain.RoleMerchant, out.Role)

	saved := env.reload(t, bruno.ID)
	assert.True(t, saved.Balance.Equal(decimal.NewFromInt(100)), "absent balance keeps the current one")
	assert.Equal(t, "hashed:new", saved.Password)

	_, err = uc.Execute(context.Background(), UpdateUserInput{
		ID: bruno.ID, Name: "Bruno Silva", TaxID: validCPF, Email: "maria@gmail.com", Password: "x", Role: "COMMON_USER",
	})
	assert.EqualError(t, err, "This email or CPF already has an associated record")

	_, err = uc.Execute(context.Background(), UpdateUserInput{ID: 404, Name: "Bruno Silva", Role: "COMMON_USER"})
	assert.EqualError(t, err, "User not exists")
}

func TestDeleteAndGetUser(t *testing.T) {
	env := newTestEnv(t)
	bruno := env.mustCreate(t, "Bruno Silva", validCPF, "bruno@gmail.com", domain.RoleCommonUser, "100")
	env.mustCreate(t, "Maria Souza", otherValidCPF, "maria@gmail.com", domain.RoleMerchant, "0")

	got, err := NewGetUser(env.accounts).Execute(context.Background(), bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, "bruno@gmail.com", got.Email)

	all, err := NewListUsers(env.accounts).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, bruno.ID, all[0].ID)

	require.NoError(t, NewDeleteUser(env.accounts).Execute(context.Background(), bruno.ID))
	assert.ErrorIs(t, NewDeleteUser(env.accounts).Execute(context.Background(), bruno.ID), domain.ErrUserNotExists)

	_, err = NewGetUser(env.accounts).Execute(context.Background(), bruno.ID)
	assert.EqualError(t, err, "User not exists")
}

func TestNotifyRecipient(t *testing.T) {
	repo := &memoryNotifications{}
	uc := NewNotifyRecipient(repo)
	uc.now = fixedClock()

	err := uc.Execute(context.Background(), domain.TransferCompletedEvent{
		TransferID:  3,
		SenderID:    1,
		SenderName:  "Bruno Silva",
		RecipientID: 2,
		Amount:      decimal.RequireFromString("23.39"),
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "You received 23.39 from Bruno Silva", repo.saved[0].Message)
	assert.Equal(t, fixedClock()(), repo.saved[0].CreatedAt)

	err = uc.Execute(context.Background(), domain.TransferCompletedEvent{RecipientID: 2})
	assert.ErrorIs(t, err, ErrIncompleteEvent)
}
