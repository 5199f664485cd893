package repositories

import (
	"sync"

	"github.com/shopspring/decimal"

	apperrors "payvault/internal/errors"
	"payvault/internal/models"
)

// accountEntry is the authoritative state for one account. Its mutex guards
// the balance. Accounts are never deleted, so a pointer obtained under the
// map lock stays valid after the lock is released.
type accountEntry struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

// memoryAccountRepository keeps all accounts in a process-local map guarded
// by an RWMutex, with a mutex per account for balance access. Operations on
// unrelated accounts do not contend with each other.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*accountEntry
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() AccountRepository {
	return &memoryAccountRepository{accounts: make(map[string]*accountEntry)}
}

func (r *memoryAccountRepository) CreateAccount(account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.AccountID]; ok {
		return apperrors.DuplicateAccountID(account.AccountID)
	}
	r.accounts[account.AccountID] = &accountEntry{balance: account.Balance}
	return nil
}

func (r *memoryAccountRepository) GetAccount(id string) (models.Account, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return models.Account{}, err
	}

	entry.mu.Lock()
	balance := entry.balance
	entry.mu.Unlock()

	return models.Account{AccountID: id, Balance: balance}, nil
}

// TransferBalance locks the two accounts in lexicographic id order, so
// opposing transfers over the same pair acquire the locks in the same order
// and cannot deadlock. The balance check and both mutations happen under
// both locks.
func (r *memoryAccountRepository) TransferBalance(fromID, toID string, amount decimal.Decimal) (models.Account, models.Account, error) {
	from, err := r.lookup(fromID)
	if err != nil {
		return models.Account{}, models.Account{}, err
	}
	to, err := r.lookup(toID)
	if err != nil {
		return models.Account{}, models.Account{}, err
	}

	first, second := from, to
	if toID < fromID {
		first, second = to, from
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.balance.LessThan(amount) {
		return models.Account{}, models.Account{}, apperrors.InsufficientBalance(fromID)
	}
	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)

	return models.Account{AccountID: fromID, Balance: from.balance},
		models.Account{AccountID: toID, Balance: to.balance},
		nil
}

func (r *memoryAccountRepository) lookup(id string) (*accountEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.accounts[id]
	if !ok {
		return nil, apperrors.AccountNotFound(id)
	}
	return entry, nil
}
