package util

import (
	"errors"
	"fmt"
)

// DomainError standardizes seeder errors surfaced to the CLI.
type DomainError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, Details: details}
}

// NewConnectionFailed wraps a document store initialization failure.
func NewConnectionFailed(err error) error {
	return &DomainError{
		Code:    "CONNECTION_FAILED",
		Message: "unable to connect to document store",
		Err:     err,
	}
}

// NewSeedFailed wraps a failure during record generation or insertion.
// A single insert failure aborts the remaining batch; no retries.
func NewSeedFailed(collection string, err error) error {
	return &DomainError{
		Code:    "SEED_FAILED",
		Message: fmt.Sprintf("seeding %s failed", collection),
		Details: map[string]any{"collection": collection},
		Err:     err,
	}
}

// NewStoreUnavailable marks a query failure against an existing store.
func NewStoreUnavailable(err error) error {
	return &DomainError{
		Code:    "STORE_UNAVAILABLE",
		Message: "document store query failed",
		Err:     err,
	}
}

// MapError converts generic errors to DomainError.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
		Err:     err,
	}
}
