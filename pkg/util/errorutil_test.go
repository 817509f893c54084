package util

import (
	"errors"
	"testing"
)

func TestNewConnectionFailedWrapsCause(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	err := NewConnectionFailed(cause)

	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected *DomainError, got %T", err)
	}
	if domainErr.Code != "CONNECTION_FAILED" {
		t.Fatalf("expected code CONNECTION_FAILED, got %q", domainErr.Code)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped error to match the cause")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := NewStoreUnavailable(errors.New("pool closed"))
	want := "document store query failed: pool closed"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestMapErrorPassesDomainErrorsThrough(t *testing.T) {
	original := NewSeedFailed("tickets", errors.New("insert failed"))
	mapped := MapError(original)
	if mapped != original {
		t.Fatalf("expected the same *DomainError back, got %v", mapped)
	}
}

func TestMapErrorWrapsGenericErrors(t *testing.T) {
	mapped := MapError(errors.New("boom"))
	var domainErr *DomainError
	if !errors.As(mapped, &domainErr) {
		t.Fatalf("expected *DomainError, got %T", mapped)
	}
	if domainErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("expected code INTERNAL_ERROR, got %q", domainErr.Code)
	}
}

func TestMapErrorNil(t *testing.T) {
	if MapError(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}
