// Package transfer orchestrates moving funds between two accounts: it
// checks request preconditions, applies the balance change atomically
// through the account store, and sends best-effort notifications to both
// holders once the change is committed.
package transfer

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "payvault/internal/errors"
	"payvault/internal/models"
)

// minAmount is the smallest transferable unit.
var minAmount = decimal.NewFromInt32(1).Shift(-2)

type service struct {
	accounts AccountStore
	notifier NotificationService
	logger   *zap.Logger
}

// NewService creates a new transfer service instance.
func NewService(accounts AccountStore, notifier NotificationService, logger *zap.Logger) Service {
	if accounts == nil {
		panic("account store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		accounts: accounts,
		notifier: notifier,
		logger:   logger,
	}
}

// Transfer moves funds between two accounts. Account lookup, the balance
// check and both mutations happen atomically inside the store; on success
// both holders are notified with post-transfer snapshots.
func (s *service) Transfer(ctx context.Context, req models.TransferRequest) (*Receipt, error) {
	if req.AccountFromID == req.AccountToID {
		return nil, apperrors.ErrSameAccount
	}
	if err := ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	from, to, err := s.accounts.TransferBalance(req.AccountFromID, req.AccountToID, req.Amount)
	if err != nil {
		return nil, err
	}

	amount := req.Amount.StringFixed(2)
	s.notify(ctx, from, fmt.Sprintf("Amount %s deducted from account id %s", amount, from.AccountID))
	s.notify(ctx, to, fmt.Sprintf("Amount %s credited to account id %s", amount, to.AccountID))

	s.logger.Info("transfer completed",
		zap.String("account_from", from.AccountID),
		zap.String("account_to", to.AccountID),
		zap.String("amount", amount))

	return &Receipt{From: from, To: to, Amount: req.Amount}, nil
}

// notify delivers a best-effort notification. The transfer is final once
// the balances are updated, so delivery failures are logged and swallowed.
func (s *service) notify(ctx context.Context, account models.Account, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyAboutTransfer(ctx, account, message); err != nil {
		s.logger.Warn("transfer notification failed",
			zap.String("account_id", account.AccountID),
			zap.Error(err))
	}
}

// ValidateAmount rejects amounts below 0.01 and amounts carrying sub-cent
// precision.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThan(minAmount) {
		return apperrors.ErrInvalidAmount
	}
	if !amount.Equal(amount.Round(2)) {
		return apperrors.ErrInvalidAmount
	}
	return nil
}
