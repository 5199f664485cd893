// Package errors defines the business-rule failures exposed by the
// account and transfer services. Unexpected internal faults are ordinary
// wrapped errors and are never mapped into these kinds.
package errors

// DomainError is a stable business-rule failure with a machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is matches domain errors by code, so an instance carrying an account id
// still compares equal to its kind under errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && e.Code == t.Code
}
