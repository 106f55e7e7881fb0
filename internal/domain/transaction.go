package domain

import (
	"fmt"
	"time"
)

// TransactionType enumerates the kinds of balance changes.
type TransactionType string

const (
	TransactionCredit         TransactionType = "credit"
	TransactionDebit          TransactionType = "debit"
	TransactionWalletCreation TransactionType = "wallet_creation"
)

// Valid transaction types
var validTransactionTypes = map[TransactionType]bool{
	TransactionCredit:         true,
	TransactionDebit:          true,
	TransactionWalletCreation: true,
}

// IsValid checks if the transaction type is known.
func (t TransactionType) IsValid() bool {
	return validTransactionTypes[t]
}

// TransactionRecord is an immutable log entry describing one balance change.
// Records are append-only: they are never updated or deleted.
type TransactionRecord struct {
	ID             string
	UserID         string
	Type           TransactionType
	InitialBalance int64
	Amount         int64
	FinalBalance   int64
	Remarks        string
	CreatedAt      time.Time
}

// Validate checks the record's internal consistency: the final balance
// must equal the initial balance adjusted by the amount for the type.
func (r *TransactionRecord) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("unknown transaction type %q", r.Type)
	}
	if r.Amount < 0 {
		return ErrInvalidAmount
	}

	var want int64
	switch r.Type {
	case TransactionDebit:
		want = r.InitialBalance - r.Amount
	default:
		want = r.InitialBalance + r.Amount
	}

	if r.FinalBalance != want {
		return fmt.Errorf("inconsistent record: initial %d %s amount %d != final %d",
			r.InitialBalance, r.Type, r.Amount, r.FinalBalance)
	}

	return nil
}
