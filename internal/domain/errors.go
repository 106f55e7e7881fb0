package domain

import "errors"

var (
	// Wallet errors
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrDuplicateUserID     = errors.New("wallet with this user id already exists")
	ErrDuplicatePhone      = errors.New("wallet with this phone already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Amount errors
	ErrInvalidAmount = errors.New("amount must be a valid decimal")
)
