package models

import "github.com/shopspring/decimal"

// Account is a snapshot of a stored account. Copies handed out by the
// repository never alias its internal state, so callers cannot mutate a
// balance except through the repository.
type Account struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransferRequest asks to move an amount from one account to another.
type TransferRequest struct {
	AccountFromID string
	AccountToID   string
	Amount        decimal.Decimal
}
