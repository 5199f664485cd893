package errors

import "fmt"

// Error codes for account operations.
const (
	CodeDuplicateAccountID  = "DUPLICATE_ACCOUNT_ID"
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeSameAccount         = "SAME_ACCOUNT"
	CodeInvalidAmount       = "INVALID_AMOUNT"
)

var (
	ErrDuplicateAccountID = &DomainError{
		Code:    CodeDuplicateAccountID,
		Message: "account id already exists",
	}
	ErrAccountNotFound = &DomainError{
		Code:    CodeAccountNotFound,
		Message: "account not found",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    CodeInsufficientBalance,
		Message: "insufficient account balance",
	}
	ErrSameAccount = &DomainError{
		Code:    CodeSameAccount,
		Message: "accountFrom and accountTo ids cannot be the same",
	}
	ErrInvalidAmount = &DomainError{
		Code:    CodeInvalidAmount,
		Message: "amount must be at least 0.01",
	}
)

// DuplicateAccountID reports a creation collision for the given account id.
func DuplicateAccountID(id string) *DomainError {
	return &DomainError{
		Code:    CodeDuplicateAccountID,
		Message: fmt.Sprintf("Account id %s already exists!", id),
	}
}

// AccountNotFound reports that the given account id is absent.
func AccountNotFound(id string) *DomainError {
	return &DomainError{
		Code:    CodeAccountNotFound,
		Message: fmt.Sprintf("Account id %s not found.", id),
	}
}

// InsufficientBalance reports that the given account cannot cover a debit.
func InsufficientBalance(id string) *DomainError {
	return &DomainError{
		Code:    CodeInsufficientBalance,
		Message: fmt.Sprintf("Account id %s does not have sufficient balance.", id),
	}
}
