package domain_test

import (
	"errors"
	"testing"

	"github.com/iho/walletledger/internal/domain"
)

func TestWallet_ValidateDebit(t *testing.T) {
	w := &domain.Wallet{UserID: "u1", Balance: 1000}

	if err := w.ValidateDebit(1000); err != nil {
		t.Errorf("debit of full balance should be allowed: %v", err)
	}

	if err := w.ValidateDebit(500); err != nil {
		t.Errorf("debit within balance should be allowed: %v", err)
	}

	if err := w.ValidateDebit(1001); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestWallet_Apply(t *testing.T) {
	w := &domain.Wallet{Balance: 1000}

	if got := w.ApplyCredit(250); got != 1250 {
		t.Errorf("expected 1250 after credit, got %d", got)
	}

	if got := w.ApplyDebit(250); got != 750 {
		t.Errorf("expected 750 after debit, got %d", got)
	}

	// Apply computes, it does not mutate
	if w.Balance != 1000 {
		t.Errorf("balance should be untouched, got %d", w.Balance)
	}
}
