package service

import (
	"context"
	"errors"
	"testing"
)

// Validation runs before any store access, so a nil pool is safe here: a test
// that reaches the database would panic and fail loudly.
func TestAdjust_RejectsInvalidKind(t *testing.T) {
	s := NewLedgerService(nil)

	for _, kind := range []string{"multiply", "", "ADD", "Add", "withdraw"} {
		_, err := s.Adjust(context.Background(), 1, 10, kind)
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("kind %q: expected ErrInvalidKind, got %v", kind, err)
		}
	}
}

func TestAdjust_RejectsNonPositiveAmount(t *testing.T) {
	s := NewLedgerService(nil)

	for _, amount := range []int64{0, -5, -1000000} {
		_, err := s.Adjust(context.Background(), 1, amount, "add")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %d: expected ErrInvalidAmount, got %v", amount, err)
		}

		_, err = s.Adjust(context.Background(), 1, amount, "subtract")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %d (subtract): expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestAdjust_KindCheckedBeforeAmount(t *testing.T) {
	s := NewLedgerService(nil)

	_, err := s.Adjust(context.Background(), 1, 0, "multiply")
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind for bad kind and bad amount, got %v", err)
	}
}
