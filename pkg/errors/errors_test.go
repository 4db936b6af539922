package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfigurationError(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrap: %w", NewConfigurationError("schema version", `unknown version "1.2"`, cause))

	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration match")
	}
	if errors.Is(err, ErrValidation) {
		t.Fatalf("unexpected ErrValidation match")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	want := `wrap: configuration: schema version: unknown version "1.2": boom`
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestSerializationError(t *testing.T) {
	err := NewSerializationError("HEADER", "document has no header", nil)
	if !errors.Is(err, ErrSerialization) {
		t.Fatalf("expected ErrSerialization match")
	}
	var target *SerializationError
	if !errors.As(error(err), &target) || target.Node != "HEADER" {
		t.Fatalf("expected SerializationError with node HEADER")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Version: "2005.1",
		Violations: []Violation{
			{Code: "cvc-complex-type", Message: "missing SUPPLIER_ID", Path: "/BMECAT/HEADER/SUPPLIER", Line: 12, Column: 5},
			{Message: "second"},
		},
	}

	want := "validation (schema 2005.1): [cvc-complex-type] missing SUPPLIER_ID at /BMECAT/HEADER/SUPPLIER (line 12, column 5) (and 1 more)"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{
		"[cvc-complex-type] missing SUPPLIER_ID at /BMECAT/HEADER/SUPPLIER (line 12, column 5)",
		"second",
	}, err.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	wrapped := fmt.Errorf("check: %w", err)
	got, ok := AsValidation(wrapped)
	if !ok || got != err {
		t.Fatalf("expected AsValidation to find the error")
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Fatalf("expected ErrValidation match")
	}
}

func TestValidationError_Malformed(t *testing.T) {
	err := &ValidationError{Malformed: true}
	if got := err.Error(); got != "validation: malformed xml: document rejected" {
		t.Fatalf("unexpected message %q", got)
	}
	if _, ok := AsValidation(errors.New("other")); ok {
		t.Fatalf("expected plain error not to match")
	}
}
