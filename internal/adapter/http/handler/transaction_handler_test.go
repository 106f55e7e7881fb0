package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/walletledger/internal/adapter/http/dto"
	"github.com/iho/walletledger/internal/domain"
	"github.com/iho/walletledger/internal/usecase"
)

type reportServiceStub struct {
	listFn       func(ctx context.Context) ([]*usecase.TransactionDetail, error)
	listByUserFn func(ctx context.Context, userID string) ([]*usecase.TransactionDetail, error)
}

func (s *reportServiceStub) ListTransactions(ctx context.Context) ([]*usecase.TransactionDetail, error) {
	return s.listFn(ctx)
}

func (s *reportServiceStub) ListUserTransactions(ctx context.Context, userID string) ([]*usecase.TransactionDetail, error) {
	return s.listByUserFn(ctx, userID)
}

func testDetail(userID string, txType domain.TransactionType) *usecase.TransactionDetail {
	return &usecase.TransactionDetail{
		UserID:         userID,
		UserName:       "Alice",
		Phone:          "9876543210",
		Type:           txType,
		InitialBalance: 1000,
		Amount:         250,
		FinalBalance:   1250,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestTransactionHandler_List(t *testing.T) {
	handler := NewTransactionHandler(&reportServiceStub{
		listFn: func(ctx context.Context) ([]*usecase.TransactionDetail, error) {
			return []*usecase.TransactionDetail{
				testDetail("alice", domain.TransactionCredit),
				testDetail("bob", domain.TransactionDebit),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Transactions) != 2 || resp.Total != 2 {
		t.Fatalf("expected 2 transactions, got %+v", resp)
	}

	first := resp.Transactions[0]
	if first.Type != "credit" {
		t.Fatalf("expected transaction_type credit, got %s", first.Type)
	}
	if first.Amount.String() != "2.5" {
		t.Fatalf("expected amount in major units, got %s", first.Amount)
	}
	if first.UserName != "Alice" || first.Phone != "9876543210" {
		t.Fatalf("expected joined wallet fields, got %+v", first)
	}
}

func TestTransactionHandler_List_ServiceError(t *testing.T) {
	handler := NewTransactionHandler(&reportServiceStub{
		listFn: func(ctx context.Context) ([]*usecase.TransactionDetail, error) {
			return nil, errors.New("db error")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestTransactionHandler_ListByUser(t *testing.T) {
	handler := NewTransactionHandler(&reportServiceStub{
		listByUserFn: func(ctx context.Context, userID string) ([]*usecase.TransactionDetail, error) {
			if userID != "alice" {
				t.Fatalf("expected user id alice, got %s", userID)
			}
			return []*usecase.TransactionDetail{testDetail("alice", domain.TransactionWalletCreation)}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/alice/transactions", nil)
	req = setChiURLParam(req, "user_id", "alice")
	rec := httptest.NewRecorder()

	handler.ListByUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(resp.Transactions))
	}
}

func TestTransactionHandler_ListByUser_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&reportServiceStub{
		listByUserFn: func(ctx context.Context, userID string) ([]*usecase.TransactionDetail, error) {
			return nil, domain.ErrWalletNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/ghost/transactions", nil)
	req = setChiURLParam(req, "user_id", "ghost")
	rec := httptest.NewRecorder()

	handler.ListByUser(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
