package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/walletledger/internal/domain"
)

// TransactionDetail is a transaction record joined with the identity
// fields of its wallet. Monetary fields stay in minor units; conversion
// to major units happens at the response boundary.
type TransactionDetail struct {
	UserID         string
	UserName       string
	Phone          string
	Type           domain.TransactionType
	InitialBalance int64
	Amount         int64
	FinalBalance   int64
	Remarks        string
	CreatedAt      time.Time
}

// ReportUseCase joins transaction records with wallet identity fields
// for history listings. The join happens at read time; wallet fields are
// never denormalized into the records.
type ReportUseCase struct {
	walletRepo WalletRepository
	txRepo     TransactionRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(walletRepo WalletRepository, txRepo TransactionRepository) *ReportUseCase {
	return &ReportUseCase{
		walletRepo: walletRepo,
		txRepo:     txRepo,
	}
}

// ListTransactions lists all transaction records in chronological order.
// A record whose wallet cannot be resolved is logged and skipped; wallets
// are never deleted in normal operation, so this is a defensive path.
func (uc *ReportUseCase) ListTransactions(ctx context.Context) ([]*TransactionDetail, error) {
	records, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	wallets, err := uc.walletRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	walletsByUser := make(map[string]*domain.Wallet, len(wallets))
	for _, w := range wallets {
		walletsByUser[w.UserID] = w
	}

	details := make([]*TransactionDetail, 0, len(records))
	for _, r := range records {
		w, ok := walletsByUser[r.UserID]
		if !ok {
			log.Warn().
				Str("transaction_id", r.ID).
				Str("user_id", r.UserID).
				Msg("transaction references unknown wallet, skipping")

			continue
		}

		details = append(details, joinRecord(r, w))
	}

	return details, nil
}

// ListUserTransactions lists the transaction records of one wallet in
// chronological order. Returns ErrWalletNotFound for an unknown user id.
func (uc *ReportUseCase) ListUserTransactions(ctx context.Context, userID string) ([]*TransactionDetail, error) {
	wallet, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := uc.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]*TransactionDetail, 0, len(records))
	for _, r := range records {
		details = append(details, joinRecord(r, wallet))
	}

	return details, nil
}

func joinRecord(r *domain.TransactionRecord, w *domain.Wallet) *TransactionDetail {
	return &TransactionDetail{
		UserID:         r.UserID,
		UserName:       w.UserName,
		Phone:          w.Phone,
		Type:           r.Type,
		InitialBalance: r.InitialBalance,
		Amount:         r.Amount,
		FinalBalance:   r.FinalBalance,
		Remarks:        r.Remarks,
		CreatedAt:      r.CreatedAt,
	}
}
