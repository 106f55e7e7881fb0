package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
// The transactions table is append-only.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, user_id, transaction_type, initial_balance, amount, final_balance, remarks, created_at`

// Create appends a transaction record inside the given transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO transactions (id, user_id, transaction_type, initial_balance, amount, final_balance, remarks, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.UserID, string(record.Type),
		record.InitialBalance, record.Amount, record.FinalBalance,
		record.Remarks, record.CreatedAt,
	)

	return err
}

// List lists all transaction records in chronological order.
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByUser lists one wallet's transaction records in chronological order.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]*domain.TransactionRecord, error) {
	var records []*domain.TransactionRecord

	for rows.Next() {
		var rec domain.TransactionRecord
		var txType string

		err := rows.Scan(&rec.ID, &rec.UserID, &txType,
			&rec.InitialBalance, &rec.Amount, &rec.FinalBalance,
			&rec.Remarks, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}

		rec.Type = domain.TransactionType(txType)
		records = append(records, &rec)
	}

	return records, rows.Err()
}
