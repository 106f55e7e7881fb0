package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

// MockWalletRepository is a mock implementation of WalletRepository.
// Reads return copies so callers cannot mutate stored state directly,
// matching how a real store behaves.
type MockWalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) error
	GetByUserIDFunc          func(ctx context.Context, userID string) (*domain.Wallet, error)
	GetByPhoneFunc           func(ctx context.Context, phone string) (*domain.Wallet, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, userID string) (*domain.Wallet, error)
	UpdateBalanceFunc        func(ctx context.Context, tx usecase.Transaction, userID string, balance int64, updatedAt time.Time) error
	ListFunc                 func(ctx context.Context) ([]*domain.Wallet, error)
}

func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{
		wallets: make(map[string]*domain.Wallet),
	}
}

func (m *MockWalletRepository) Create(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, wallet)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.wallets[wallet.UserID]; ok {
		return domain.ErrDuplicateUserID
	}
	for _, w := range m.wallets {
		if w.Phone == wallet.Phone {
			return domain.ErrDuplicatePhone
		}
	}
	cp := *wallet
	m.wallets[wallet.UserID] = &cp
	return nil
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[userID]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) GetByPhone(ctx context.Context, phone string) (*domain.Wallet, error) {
	if m.GetByPhoneFunc != nil {
		return m.GetByPhoneFunc(ctx, phone)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, w := range m.wallets {
		if w.Phone == phone {
			cp := *w
			return &cp, nil
		}
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) GetByUserIDForUpdate(ctx context.Context, tx usecase.Transaction, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDForUpdateFunc != nil {
		return m.GetByUserIDForUpdateFunc(ctx, tx, userID)
	}
	return m.GetByUserID(ctx, userID)
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, userID string, balance int64, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, userID, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.wallets[userID]; ok {
		w.Balance = balance
		w.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockWalletRepository) List(ctx context.Context) ([]*domain.Wallet, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	wallets := make([]*domain.Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		cp := *w
		wallets = append(wallets, &cp)
	}
	sort.Slice(wallets, func(i, j int) bool {
		return wallets[i].CreatedAt.Before(wallets[j].CreatedAt)
	})
	return wallets, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.RWMutex
	records []*domain.TransactionRecord

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error
	ListFunc       func(ctx context.Context) ([]*domain.TransactionRecord, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.TransactionRecord, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *record
	m.records = append(m.records, &cp)
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.TransactionRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]*domain.TransactionRecord, 0, len(m.records))
	for _, r := range m.records {
		cp := *r
		records = append(records, &cp)
	}
	return records, nil
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.TransactionRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.TransactionRecord
	for _, r := range m.records {
		if r.UserID == userID {
			cp := *r
			records = append(records, &cp)
		}
	}
	return records, nil
}

// MockTxManager serializes transactions with a mutex, emulating the
// per-row locking a real store provides for read-modify-write sequences.
type MockTxManager struct {
	mu sync.Mutex

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	return &MockTransaction{release: m.mu.Unlock}, nil
}

// MockTransaction is a mock implementation of Transaction. Commit and
// Rollback both release the manager lock; only the first call counts.
type MockTransaction struct {
	release func()
	done    bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.finish()
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.finish()
	return nil
}

func (t *MockTransaction) finish() {
	if t.done {
		return
	}
	t.done = true
	if t.release != nil {
		t.release()
	}
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("txn-%06d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
