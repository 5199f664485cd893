package account

import (
	"context"

	"go.uber.org/zap"

	apperrors "payvault/internal/errors"
	"payvault/internal/models"
	"payvault/internal/repositories"
)

// Service manages account creation and lookup.
type Service interface {
	CreateAccount(ctx context.Context, account models.Account) error
	GetAccount(ctx context.Context, id string) (models.Account, error)
}

type service struct {
	repo   repositories.AccountRepository
	logger *zap.Logger
}

// NewService creates a new account service.
func NewService(repo repositories.AccountRepository, logger *zap.Logger) Service {
	if repo == nil {
		panic("account repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, logger: logger}
}

// CreateAccount registers a new account with its opening balance. The
// balance must not be negative; the id must not already exist.
func (s *service) CreateAccount(ctx context.Context, account models.Account) error {
	if account.Balance.IsNegative() {
		return apperrors.ErrInvalidAmount
	}

	if err := s.repo.CreateAccount(account); err != nil {
		return err
	}

	s.logger.Info("account created",
		zap.String("account_id", account.AccountID),
		zap.String("balance", account.Balance.StringFixed(2)))
	return nil
}

// GetAccount returns a snapshot of the account's current state.
func (s *service) GetAccount(ctx context.Context, id string) (models.Account, error) {
	return s.repo.GetAccount(id)
}
