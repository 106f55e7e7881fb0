package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// WalletRepository implements usecase.WalletRepository.
type WalletRepository struct {
	pool *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{pool: pool}
}

const walletColumns = `user_id, user_name, phone, balance, created_at, updated_at`

// Create creates a new wallet inside the given transaction. Unique
// violations on user_id or phone map to the duplicate sentinels, backing
// up the pre-write checks in the use case.
func (r *WalletRepository) Create(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO wallets (user_id, user_name, phone, balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		wallet.UserID, wallet.UserName, wallet.Phone, wallet.Balance, wallet.CreatedAt, wallet.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "phone") {
				return domain.ErrDuplicatePhone
			}
			return domain.ErrDuplicateUserID
		}
		return err
	}

	return nil
}

// GetByUserID retrieves a wallet by user id.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)

	return scanWallet(row)
}

// GetByPhone retrieves a wallet by phone number.
func (r *WalletRepository) GetByPhone(ctx context.Context, phone string) (*domain.Wallet, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE phone = $1`, phone)

	return scanWallet(row)
}

// GetByUserIDForUpdate retrieves a wallet by user id with a FOR UPDATE
// lock, serializing concurrent read-modify-write sequences per user_id.
func (r *WalletRepository) GetByUserIDForUpdate(ctx context.Context, tx usecase.Transaction, userID string) (*domain.Wallet, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 FOR UPDATE`, userID)

	return scanWallet(row)
}

// UpdateBalance updates the balance of a wallet.
func (r *WalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, userID string, balance int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE wallets SET balance = $2, updated_at = $3 WHERE user_id = $1`,
		userID, balance, updatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}

	return nil
}

// List lists all wallets in creation order.
func (r *WalletRepository) List(ctx context.Context) ([]*domain.Wallet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+walletColumns+` FROM wallets ORDER BY created_at, user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []*domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}

	return wallets, rows.Err()
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet

	err := row.Scan(&w.UserID, &w.UserName, &w.Phone, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}

	return &w, nil
}
