package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/gateway"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	validCPF      = "13711695000"
	otherValidCPF = "52998224725"
)

type testEnv struct {
	store     *memory.Store
	accounts  *memory.AccountRepository
	transfers *memory.TransferRepository
	sessions  *memory.SessionRepository
	uow       *memory.Uow
	hasher    *plainHasher
	validator *AccountValidator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	accounts := memory.NewAccountRepository(store)
	return &testEnv{
		store:     store,
		accounts:  accounts,
		transfers: memory.NewTransferRepository(store),
		sessions:  memory.NewSessionRepository(),
		uow:       memory.NewUow(store),
		hasher:    &plainHasher{},
		validator: NewAccountValidator(accounts),
	}
}

func (e *testEnv) mustCreate(t *testing.T, name, taxID, email string, role domain.Role, balance string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Name:     name,
		TaxID:    taxID,
		Email:    email,
		Password: "hashed:secret",
		Role:     role,
		Balance:  decimal.RequireFromString(balance),
	}
	require.NoError(t, e.accounts.Create(context.Background(), account))
	return account
}

func (e *testEnv) reload(t *testing.T, id int64) *domain.Account {
	t.Helper()
	account, err := e.accounts.FindByID(context.Background(), id)
	require.NoError(t, err)
	return account
}

// plainHasher evita o custo do bcrypt nos testes de usecase.
type plainHasher struct {
	fail bool
}

func (h *plainHasher) Hash(plain string) (string, error) {
	if h.fail {
		return "", errors.New("hash failure")
	}
	return "hashed:" + plain, nil
}

func (h *plainHasher) Compare(hash, plain string) (bool, error) {
	if !strings.HasPrefix(hash, "hashed:") {
		return false, errors.New("corrupted hash")
	}
	return hash == "hashed:"+plain, nil
}

// failingAccountRepository falha o Save de um ID específico.
type failingAccountRepository struct {
	gateway.AccountRepository
	failSaveID int64
}

func (r *failingAccountRepository) Save(ctx context.Context, account *domain.Account) error {
	if account.ID == r.failSaveID {
		return errors.New("connection reset")
	}
	return r.AccountRepository.Save(ctx, account)
}

func (r *failingAccountRepository) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	return &failingAccountRepository{AccountRepository: r.AccountRepository.WithTx(tx), failSaveID: r.failSaveID}
}

type failingTransferRepository struct {
	gateway.TransferRepository
}

func (r *failingTransferRepository) Create(ctx context.Context, record *domain.TransferRecord) error {
	return domain.NewStorageError("failed to create transfer", errors.New("disk full"))
}

func (r *failingTransferRepository) WithTx(tx gateway.TransactionObject) gateway.TransferRepository {
	return r
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.TransferCompletedEvent
	keys   []string
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, exchange+"/"+routingKey)
	p.events = append(p.events, body.(domain.TransferCompletedEvent))
	return nil
}

type recordingMetrics struct {
	succeeded []decimal.Decimal
	failed    []string
}

func (m *recordingMetrics) TransferSucceeded(amount decimal.Decimal) {
	m.succeeded = append(m.succeeded, amount)
}

func (m *recordingMetrics) TransferFailed(reason string) {
	m.failed = append(m.failed, reason)
}

type memoryNotifications struct {
	saved []domain.Notification
	err   error
}

func (r *memoryNotifications) Save(ctx context.Context, n domain.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, n)
	return nil
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
}
