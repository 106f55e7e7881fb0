package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/walletledger/internal/adapter/http/dto"
	"github.com/iho/walletledger/internal/usecase"
)

// ReportService defines the behavior needed by TransactionHandler.
type ReportService interface {
	ListTransactions(ctx context.Context) ([]*usecase.TransactionDetail, error)
	ListUserTransactions(ctx context.Context, userID string) ([]*usecase.TransactionDetail, error)
}

// TransactionHandler handles transaction history HTTP requests.
type TransactionHandler struct {
	reportUC ReportService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(reportUC ReportService) *TransactionHandler {
	return &TransactionHandler{reportUC: reportUC}
}

// List lists all transactions with wallet identity fields joined in.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.reportUC.ListTransactions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDetails(details),
		Total:        int64(len(details)),
	})
}

// ListByUser lists one wallet's transactions.
func (h *TransactionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	details, err := h.reportUC.ListUserTransactions(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDetails(details),
		Total:        int64(len(details)),
	})
}
