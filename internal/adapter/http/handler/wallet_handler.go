package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/walletledger/internal/adapter/http/dto"
	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

// WalletService defines the behavior needed by WalletHandler.
type WalletService interface {
	CreateWallet(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, error)
	Debit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Wallet, error)
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	ListWallets(ctx context.Context) ([]*domain.Wallet, error)
}

// WalletHandler handles wallet-related HTTP requests.
type WalletHandler struct {
	walletUC WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletUC WalletService) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// Create creates a new wallet.
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	wallet, err := h.walletUC.CreateWallet(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.WalletEnvelope{
		Message: "User created",
		Wallet:  dto.WalletFromDomain(wallet),
	})
}

// Credit adds funds to a wallet.
func (h *WalletHandler) Credit(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	wallet, err := h.walletUC.Credit(r.Context(), userID, req.Amount)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WalletEnvelope{
		Message: "Fund Successfully Added",
		Wallet:  dto.WalletFromDomain(wallet),
	})
}

// Debit spends funds from a wallet. An insufficient balance is a
// reported business outcome, not a failure: the 406 payload carries the
// wallet's current balance.
func (h *WalletHandler) Debit(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	wallet, err := h.walletUC.Debit(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) && wallet != nil {
			writeJSON(w, http.StatusNotAcceptable, dto.InsufficientBalanceResponse{
				Error:   "Insufficient Balance",
				Balance: domain.FromMinorUnits(wallet.Balance),
				Wallet:  dto.WalletFromDomain(wallet),
			})

			return
		}

		writeServiceError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, dto.WalletEnvelope{
		Message: "Fund Successfully Spent",
		Wallet:  dto.WalletFromDomain(wallet),
	})
}

// GetBalance returns the wallet balance in major units.
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	balance, err := h.walletUC.GetBalance(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		UserID:  userID,
		Balance: balance,
	})
}

// List lists all wallets.
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.walletUC.ListWallets(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListWalletsResponse{
		Wallets: dto.WalletsFromDomain(wallets),
		Total:   int64(len(wallets)),
	})
}
