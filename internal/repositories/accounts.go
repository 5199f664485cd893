// Package repositories holds the data access layer. The account repository
// owns account existence and balance state and is the only component allowed
// to mutate balances.
package repositories

import (
	"github.com/shopspring/decimal"

	"payvault/internal/models"
)

// AccountRepository stores accounts keyed by id. All methods are safe for
// concurrent use.
type AccountRepository interface {
	// CreateAccount inserts a new account keyed by its id. The account is
	// visible to lookups as soon as the call returns.
	CreateAccount(account models.Account) error

	// GetAccount returns a snapshot of the account's current state.
	GetAccount(id string) (models.Account, error)

	// TransferBalance atomically debits fromID and credits toID by amount
	// and returns post-transfer snapshots of both accounts. No concurrent
	// call touching either account can observe a state where one side has
	// been applied but not the other.
	TransferBalance(fromID, toID string, amount decimal.Decimal) (models.Account, models.Account, error)
}
