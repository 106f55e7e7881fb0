package domain

import (
	"time"
)

// Wallet represents a per-user balance record.
// Balance is stored in integer minor units (cents).
type Wallet struct {
	UserID    string
	UserName  string
	Phone     string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks if the wallet holds enough funds for amount.
func (w *Wallet) ValidateDebit(amount int64) error {
	if w.Balance < amount {
		return ErrInsufficientBalance
	}
	return nil
}

// ApplyDebit returns the balance after a debit of amount.
func (w *Wallet) ApplyDebit(amount int64) int64 {
	return w.Balance - amount
}

// ApplyCredit returns the balance after a credit of amount.
func (w *Wallet) ApplyCredit(amount int64) int64 {
	return w.Balance + amount
}
