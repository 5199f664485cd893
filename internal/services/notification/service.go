package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payvault/internal/models"
)

// Service is a log-only notification sender. Real delivery channels (email,
// SMS, push) sit behind the same interface.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new notification service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// NotifyAboutTransfer delivers a transfer message to the account holder.
func (s *Service) NotifyAboutTransfer(_ context.Context, account models.Account, message string) error {
	s.logger.Info("transfer notification",
		zap.String("delivery_id", uuid.NewString()),
		zap.String("account_id", account.AccountID),
		zap.String("message", message))
	return nil
}
