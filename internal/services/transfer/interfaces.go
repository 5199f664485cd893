package transfer

import (
	"context"

	"github.com/shopspring/decimal"

	"payvault/internal/models"
)

// AccountStore defines the account operations used by the transfer service.
type AccountStore interface {
	TransferBalance(fromID, toID string, amount decimal.Decimal) (models.Account, models.Account, error)
}

// NotificationService notifies account holders about transfers.
type NotificationService interface {
	NotifyAboutTransfer(ctx context.Context, account models.Account, message string) error
}

// Service moves money between two accounts.
type Service interface {
	Transfer(ctx context.Context, req models.TransferRequest) (*Receipt, error)
}
