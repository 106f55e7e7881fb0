package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
)

const balanceCacheKey = "balance:"

// MetricsRecorder records business metrics for wallet operations.
type MetricsRecorder interface {
	RecordWalletCreated()
	RecordTransaction(txType domain.TransactionType)
	RecordDebitRejected()
}

// WalletUseCase owns the balance-mutation protocol: every mutating
// operation reads the wallet under a store-level lock, validates,
// computes the new balance, appends a transaction record and persists
// the balance inside a single store transaction.
type WalletUseCase struct {
	txManager  TransactionManager
	walletRepo WalletRepository
	txRepo     TransactionRepository
	idGen      IDGenerator
	retrier    Retrier
	cache      Cache
	cacheTTL   time.Duration
	metrics    MetricsRecorder
}

// WalletUseCaseConfig holds dependencies for WalletUseCase.
// Retrier, Cache and Metrics are optional.
type WalletUseCaseConfig struct {
	TxManager       TransactionManager
	WalletRepo      WalletRepository
	TransactionRepo TransactionRepository
	IDGen           IDGenerator
	Retrier         Retrier
	Cache           Cache
	CacheTTL        time.Duration
	Metrics         MetricsRecorder
}

// NewWalletUseCase creates a new WalletUseCase.
func NewWalletUseCase(cfg WalletUseCaseConfig) *WalletUseCase {
	return &WalletUseCase{
		txManager:  cfg.TxManager,
		walletRepo: cfg.WalletRepo,
		txRepo:     cfg.TransactionRepo,
		idGen:      cfg.IDGen,
		retrier:    cfg.Retrier,
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		metrics:    cfg.Metrics,
	}
}

// CreateWalletInput represents input for creating a wallet.
type CreateWalletInput struct {
	UserID         string
	UserName       string
	Phone          string
	InitialBalance decimal.Decimal
}

// CreateWallet creates a new wallet funded with the founding deposit and
// appends the wallet_creation record. Duplicate checks by user id, then
// by phone, both run before any write.
func (uc *WalletUseCase) CreateWallet(ctx context.Context, input CreateWalletInput) (*domain.Wallet, error) {
	if err := domain.ValidateUserID(input.UserID); err != nil {
		return nil, err
	}
	if err := domain.ValidateUserName(input.UserName); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(input.Phone); err != nil {
		return nil, err
	}

	initial, err := domain.ToMinorUnits(input.InitialBalance)
	if err != nil {
		return nil, err
	}
	if initial < 0 {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := uc.walletRepo.GetByUserID(ctx, input.UserID); err == nil {
		return nil, domain.ErrDuplicateUserID
	} else if !errors.Is(err, domain.ErrWalletNotFound) {
		return nil, err
	}

	if _, err := uc.walletRepo.GetByPhone(ctx, input.Phone); err == nil {
		return nil, domain.ErrDuplicatePhone
	} else if !errors.Is(err, domain.ErrWalletNotFound) {
		return nil, err
	}

	now := time.Now().UTC()

	wallet := &domain.Wallet{
		UserID:    input.UserID,
		UserName:  input.UserName,
		Phone:     input.Phone,
		Balance:   initial,
		CreatedAt: now,
		UpdatedAt: now,
	}

	record := &domain.TransactionRecord{
		ID:             uc.idGen.Generate(),
		UserID:         input.UserID,
		Type:           domain.TransactionWalletCreation,
		InitialBalance: 0,
		Amount:         initial,
		FinalBalance:   initial,
		Remarks:        "Wallet Created",
		CreatedAt:      now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	err = uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.walletRepo.Create(ctx, tx, wallet); err != nil {
			return err
		}

		if err := uc.txRepo.Create(ctx, tx, record); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordWalletCreated()
		uc.metrics.RecordTransaction(domain.TransactionWalletCreation)
	}

	return wallet, nil
}

// Credit adds funds to a wallet.
func (uc *WalletUseCase) Credit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, error) {
	return uc.mutate(ctx, userID, amount, domain.TransactionCredit)
}

// Debit spends funds from a wallet. On ErrInsufficientBalance the current
// wallet is returned alongside the error so callers can report the balance.
func (uc *WalletUseCase) Debit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, error) {
	return uc.mutate(ctx, userID, amount, domain.TransactionDebit)
}

// mutate runs the balance-mutation protocol for credits and debits:
// lock wallet row, validate, compute, append record, persist balance,
// commit. The record append and the balance update are one atomic unit.
func (uc *WalletUseCase) mutate(ctx context.Context, userID string, amount decimal.Decimal, txType domain.TransactionType) (*domain.Wallet, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	minor, err := domain.ToMinorUnits(amount)
	if err != nil {
		return nil, err
	}
	if minor <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var wallet *domain.Wallet

	err = uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		w, err := uc.walletRepo.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		var newBalance int64
		switch txType {
		case domain.TransactionDebit:
			if err := w.ValidateDebit(minor); err != nil {
				wallet = w
				return err
			}
			newBalance = w.ApplyDebit(minor)
		default:
			newBalance = w.ApplyCredit(minor)
		}

		now := time.Now().UTC()

		record := &domain.TransactionRecord{
			ID:             uc.idGen.Generate(),
			UserID:         userID,
			Type:           txType,
			InitialBalance: w.Balance,
			Amount:         minor,
			FinalBalance:   newBalance,
			CreatedAt:      now,
		}

		if err := record.Validate(); err != nil {
			return err
		}

		if err := uc.txRepo.Create(ctx, tx, record); err != nil {
			return err
		}

		if err := uc.walletRepo.UpdateBalance(ctx, tx, userID, newBalance, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		w.Balance = newBalance
		w.UpdatedAt = now
		wallet = w

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			if uc.metrics != nil {
				uc.metrics.RecordDebitRejected()
			}
			return wallet, err
		}
		return nil, err
	}

	uc.invalidateBalance(ctx, userID)

	if uc.metrics != nil {
		uc.metrics.RecordTransaction(txType)
	}

	return wallet, nil
}

// GetBalance returns the wallet balance in major units.
func (uc *WalletUseCase) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return decimal.Zero, err
	}

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, balanceCacheKey+userID); err == nil {
			if minor, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return domain.FromMinorUnits(minor), nil
			}
		}
	}

	wallet, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, balanceCacheKey+userID, strconv.FormatInt(wallet.Balance, 10), uc.cacheTTL)
	}

	return domain.FromMinorUnits(wallet.Balance), nil
}

// ListWallets returns all wallets.
func (uc *WalletUseCase) ListWallets(ctx context.Context) ([]*domain.Wallet, error) {
	return uc.walletRepo.List(ctx)
}

func (uc *WalletUseCase) withRetry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

func (uc *WalletUseCase) invalidateBalance(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, balanceCacheKey+userID)
}
