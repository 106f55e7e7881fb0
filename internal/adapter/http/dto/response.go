package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

// WalletResponse represents a wallet in API responses.
// Balance is converted back to major units.
type WalletResponse struct {
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name"`
	Phone     string          `json:"phone"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletFromDomain converts a domain wallet to a response.
func WalletFromDomain(w *domain.Wallet) *WalletResponse {
	return &WalletResponse{
		UserID:    w.UserID,
		UserName:  w.UserName,
		Phone:     w.Phone,
		Balance:   domain.FromMinorUnits(w.Balance),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// WalletsFromDomain converts domain wallets to responses.
func WalletsFromDomain(wallets []*domain.Wallet) []*WalletResponse {
	result := make([]*WalletResponse, len(wallets))
	for i, w := range wallets {
		result[i] = WalletFromDomain(w)
	}
	return result
}

// WalletEnvelope wraps a wallet with a human-readable outcome message.
type WalletEnvelope struct {
	Message string          `json:"message"`
	Wallet  *WalletResponse `json:"wallet"`
}

// ListWalletsResponse represents the wallet listing payload.
type ListWalletsResponse struct {
	Wallets []*WalletResponse `json:"wallets"`
	Total   int64             `json:"total"`
}

// BalanceResponse represents a balance query payload.
type BalanceResponse struct {
	UserID  string          `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

// TransactionResponse represents a detailed transaction entry: a record
// joined with its wallet's identity fields, monetary values in major units.
type TransactionResponse struct {
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name"`
	Phone          string          `json:"phone"`
	Type           string          `json:"transaction_type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Amount         decimal.Decimal `json:"amount"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
	Remarks        string          `json:"remarks"`
	CreatedAt      time.Time       `json:"transaction_time"`
}

// TransactionFromDetail converts a joined transaction detail to a response.
func TransactionFromDetail(d *usecase.TransactionDetail) *TransactionResponse {
	return &TransactionResponse{
		UserID:         d.UserID,
		UserName:       d.UserName,
		Phone:          d.Phone,
		Type:           string(d.Type),
		InitialBalance: domain.FromMinorUnits(d.InitialBalance),
		Amount:         domain.FromMinorUnits(d.Amount),
		FinalBalance:   domain.FromMinorUnits(d.FinalBalance),
		Remarks:        d.Remarks,
		CreatedAt:      d.CreatedAt,
	}
}

// TransactionsFromDetails converts joined transaction details to responses.
func TransactionsFromDetails(details []*usecase.TransactionDetail) []*TransactionResponse {
	result := make([]*TransactionResponse, len(details))
	for i, d := range details {
		result[i] = TransactionFromDetail(d)
	}
	return result
}

// ListTransactionsResponse represents the transaction listing payload.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// InsufficientBalanceResponse is the rejected-debit payload. It reports
// the current balance so the caller can see why the debit failed.
type InsufficientBalanceResponse struct {
	Error   string          `json:"error"`
	Balance decimal.Decimal `json:"balance"`
	Wallet  *WalletResponse `json:"wallet"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
