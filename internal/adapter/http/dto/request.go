package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

// CreateWalletRequest represents a request to create a wallet.
// Balance is the founding deposit in major units.
type CreateWalletRequest struct {
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name"`
	Phone    string          `json:"phone"`
	Balance  decimal.Decimal `json:"balance"`
}

// Validate checks the request shape before it reaches the core.
func (r *CreateWalletRequest) Validate() error {
	if err := domain.ValidateUserID(r.UserID); err != nil {
		return err
	}
	if err := domain.ValidateUserName(r.UserName); err != nil {
		return err
	}
	if err := domain.ValidatePhone(r.Phone); err != nil {
		return err
	}
	if r.Balance.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// ToUseCaseInput converts to use case input.
func (r *CreateWalletRequest) ToUseCaseInput() usecase.CreateWalletInput {
	return usecase.CreateWalletInput{
		UserID:         r.UserID,
		UserName:       r.UserName,
		Phone:          r.Phone,
		InitialBalance: r.Balance,
	}
}

// AmountRequest represents a credit or debit request.
// Amount is in major units.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Validate checks the request shape before it reaches the core.
func (r *AmountRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}
