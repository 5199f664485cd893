package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "payvault/internal/errors"
	"payvault/internal/models"
)

type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) TransferBalance(fromID, toID string, amount decimal.Decimal) (models.Account, models.Account, error) {
	args := m.Called(fromID, toID, amount)
	return args.Get(0).(models.Account), args.Get(1).(models.Account), args.Error(2)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyAboutTransfer(ctx context.Context, account models.Account, message string) error {
	args := m.Called(ctx, account, message)
	return args.Error(0)
}

func TestTransfer_SameAccount(t *testing.T) {
	store := new(MockAccountStore)
	notifier := new(MockNotifier)
	s := NewService(store, notifier, zap.NewNop())

	_, err := s.Transfer(context.Background(), models.TransferRequest{
		AccountFromID: "Id-123",
		AccountToID:   "Id-123",
		Amount:        decimal.RequireFromString("100.00"),
	})

	assert.ErrorIs(t, err, apperrors.ErrSameAccount)
	store.AssertNotCalled(t, "TransferBalance")
	notifier.AssertNotCalled(t, "NotifyAboutTransfer")
}

func TestTransfer_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "zero", amount: "0"},
		{name: "negative", amount: "-10.00"},
		{name: "below minimum granularity", amount: "0.001"},
		{name: "sub-cent precision", amount: "10.005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockAccountStore)
			notifier := new(MockNotifier)
			s := NewService(store, notifier, zap.NewNop())

			_, err := s.Transfer(context.Background(), models.TransferRequest{
				AccountFromID: "Id-1234",
				AccountToID:   "Id-1235",
				Amount:        decimal.RequireFromString(tt.amount),
			})

			assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
			store.AssertNotCalled(t, "TransferBalance")
		})
	}
}

func TestTransfer_StoreErrorsPropagateUnchanged(t *testing.T) {
	amount := decimal.RequireFromString("100.00")

	tests := []struct {
		name     string
		storeErr error
		wantKind error
		wantMsg  string
	}{
		{
			name:     "account not found",
			storeErr: apperrors.AccountNotFound("Id-999"),
			wantKind: apperrors.ErrAccountNotFound,
			wantMsg:  "Account id Id-999 not found.",
		},
		{
			name:     "insufficient balance",
			storeErr: apperrors.InsufficientBalance("Id-1234"),
			wantKind: apperrors.ErrInsufficientBalance,
			wantMsg:  "Account id Id-1234 does not have sufficient balance.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockAccountStore)
			notifier := new(MockNotifier)
			store.On("TransferBalance", "Id-1234", "Id-1235", amount).
				Return(models.Account{}, models.Account{}, tt.storeErr)

			s := NewService(store, notifier, zap.NewNop())
			_, err := s.Transfer(context.Background(), models.TransferRequest{
				AccountFromID: "Id-1234",
				AccountToID:   "Id-1235",
				Amount:        amount,
			})

			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantMsg, err.Error())
			notifier.AssertNotCalled(t, "NotifyAboutTransfer")
			store.AssertExpectations(t)
		})
	}
}

func TestTransfer_Success(t *testing.T) {
	amount := decimal.RequireFromString("100.00")
	fromSnap := models.Account{AccountID: "Id-1234", Balance: decimal.RequireFromString("900.00")}
	toSnap := models.Account{AccountID: "Id-1235", Balance: decimal.RequireFromString("1100.00")}

	store := new(MockAccountStore)
	notifier := new(MockNotifier)
	store.On("TransferBalance", "Id-1234", "Id-1235", amount).
		Return(fromSnap, toSnap, nil)
	notifier.On("NotifyAboutTransfer", mock.Anything, fromSnap,
		"Amount 100.00 deducted from account id Id-1234").Return(nil)
	notifier.On("NotifyAboutTransfer", mock.Anything, toSnap,
		"Amount 100.00 credited to account id Id-1235").Return(nil)

	s := NewService(store, notifier, zap.NewNop())
	receipt, err := s.Transfer(context.Background(), models.TransferRequest{
		AccountFromID: "Id-1234",
		AccountToID:   "Id-1235",
		Amount:        amount,
	})

	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.True(t, receipt.From.Balance.Equal(fromSnap.Balance))
	assert.True(t, receipt.To.Balance.Equal(toSnap.Balance))

	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "NotifyAboutTransfer", 2)
}

func TestTransfer_NotificationFailureDoesNotFailTransfer(t *testing.T) {
	amount := decimal.RequireFromString("50.00")
	fromSnap := models.Account{AccountID: "Id-1234", Balance: decimal.RequireFromString("950.00")}
	toSnap := models.Account{AccountID: "Id-1235", Balance: decimal.RequireFromString("1050.00")}

	store := new(MockAccountStore)
	notifier := new(MockNotifier)
	store.On("TransferBalance", "Id-1234", "Id-1235", amount).
		Return(fromSnap, toSnap, nil)
	notifier.On("NotifyAboutTransfer", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("delivery channel down"))

	s := NewService(store, notifier, zap.NewNop())
	receipt, err := s.Transfer(context.Background(), models.TransferRequest{
		AccountFromID: "Id-1234",
		AccountToID:   "Id-1235",
		Amount:        amount,
	})

	assert.NoError(t, err)
	assert.NotNil(t, receipt)
	notifier.AssertNumberOfCalls(t, "NotifyAboutTransfer", 2)
}

func TestTransfer_NilNotifier(t *testing.T) {
	amount := decimal.RequireFromString("10.00")
	store := new(MockAccountStore)
	store.On("TransferBalance", "Id-1", "Id-2", amount).
		Return(models.Account{AccountID: "Id-1"}, models.Account{AccountID: "Id-2"}, nil)

	s := NewService(store, nil, zap.NewNop())
	_, err := s.Transfer(context.Background(), models.TransferRequest{
		AccountFromID: "Id-1",
		AccountToID:   "Id-2",
		Amount:        amount,
	})

	assert.NoError(t, err)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(decimal.RequireFromString("0.01")))
	assert.NoError(t, ValidateAmount(decimal.RequireFromString("1000")))
	assert.Error(t, ValidateAmount(decimal.Zero))
	assert.Error(t, ValidateAmount(decimal.RequireFromString("0.009")))
}
