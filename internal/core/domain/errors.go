package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidAmount = "INVALID_AMOUNT"
	ErrCodeProvider      = "PROVIDER_ERROR"
)

func NewInvalidAmountError(value any) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: "Invalid amount",
		Err:     fmt.Errorf("amount %v is not a positive integer", value),
	}
}

// NewProviderError keeps the provider's message as-is so callers see exactly
// what the gateway reported.
func NewProviderError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeProvider,
		Message: err.Error(),
		Err:     err,
	}
}

// ErrorCode returns the DomainError code carried by err, or "" when err is not
// a DomainError.
func ErrorCode(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
