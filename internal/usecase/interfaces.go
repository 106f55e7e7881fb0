package usecase

import (
	"context"
	"time"

	"github.com/iho/walletledger/internal/domain"
)

// WalletRepository defines data access for wallets.
type WalletRepository interface {
	Create(ctx context.Context, tx Transaction, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx Transaction, userID string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx Transaction, userID string, balance int64, updatedAt time.Time) error
	List(ctx context.Context) ([]*domain.Wallet, error)
}

// TransactionRepository defines data access for transaction records.
// Records are append-only; there are no update or delete operations.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.TransactionRecord) error
	List(ctx context.Context) ([]*domain.TransactionRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TransactionRecord, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
