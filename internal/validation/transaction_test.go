package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/ndewijer/ynab-compass/internal/api/request"
	"github.com/ndewijer/ynab-compass/internal/apperrors"
)

func TestParseAmount(t *testing.T) {
	t.Run("converts currency strings to milliunits", func(t *testing.T) {
		cases := []struct {
			input string
			want  int64
		}{
			{"4.99", 4990},
			{"-5.25", -5250},
			{"12", 12000},
			{"0", 0},
			{"-0.001", -1},
			{" 10.50 ", 10500},
			{"1234.5678", 1234568},
		}
		for _, tc := range cases {
			got, err := ParseAmount(tc.input)
			if err != nil {
				t.Errorf("ParseAmount(%q) failed: %v", tc.input, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tc.input, got, tc.want)
			}
		}
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		for _, input := range []string{"", "abc", "12.3.4", "$5"} {
			_, err := ParseAmount(input)
			if !errors.Is(err, apperrors.ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q): expected ErrInvalidAmount, got %v", input, err)
			}
		}
	})
}

func TestValidateCreateTransaction(t *testing.T) {
	valid := func() request.CreateTransactionRequest {
		return request.CreateTransactionRequest{
			AccountID: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			Date:      "2024-01-20",
			Amount:    "-5.25",
			PayeeName: "Blue Bottle Coffee",
		}
	}

	t.Run("accepts a minimal valid request", func(t *testing.T) {
		if err := ValidateCreateTransaction(valid()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts optional fields when well-formed", func(t *testing.T) {
		req := valid()
		req.CategoryID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
		req.Memo = "flat white"
		req.FlagColor = "blue"
		req.Cleared = true

		if err := ValidateCreateTransaction(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a missing account ID", func(t *testing.T) {
		req := valid()
		req.AccountID = ""

		err := ValidateCreateTransaction(req)
		assertFieldError(t, err, "accountId")
	})

	t.Run("rejects a malformed account ID", func(t *testing.T) {
		req := valid()
		req.AccountID = "not-a-uuid"

		err := ValidateCreateTransaction(req)
		assertFieldError(t, err, "accountId")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		req := valid()
		req.Date = "20/01/2024"

		err := ValidateCreateTransaction(req)
		assertFieldError(t, err, "date")
	})

	t.Run("rejects a non-numeric amount", func(t *testing.T) {
		req := valid()
		req.Amount = "lots"

		err := ValidateCreateTransaction(req)
		assertFieldError(t, err, "amount")
	})

	t.Run("rejects an empty payee name", func(t *testing.T) {
		req := valid()
		req.PayeeName = "   "

		err := ValidateCreateTransaction(req)
		assertFieldError(t, err, "payeeName")
	})

	t.Run("rejects a malformed optional category ID", func(t *testing.T) {
		req := valid()
		req.CategoryID = "groceries"

		err := ValidateCreateTransaction(req)
		assertFieldError(t, err, "categoryId")
	})

	t.Run("rejects an unknown flag color", func(t *testing.T) {
		req := valid()
		req.FlagColor = "magenta"

		err := ValidateCreateTransaction(req)
		assertFieldError(t, err, "flagColor")
	})

	t.Run("collects every failing field", func(t *testing.T) {
		err := ValidateCreateTransaction(request.CreateTransactionRequest{})
		if err == nil {
			t.Fatal("Expected an error")
		}

		var vErr *Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected a validation Error, got %T", err)
		}
		for _, field := range []string{"accountId", "date", "amount", "payeeName"} {
			if _, ok := vErr.Fields[field]; !ok {
				t.Errorf("Expected a failure for %s, got %v", field, vErr.Fields)
			}
		}
	})

	t.Run("error message lists fields in stable order", func(t *testing.T) {
		err := ValidateCreateTransaction(request.CreateTransactionRequest{})
		msg := err.Error()
		if !strings.HasPrefix(msg, "validation failed: ") {
			t.Errorf("Unexpected message prefix: %q", msg)
		}
		if strings.Index(msg, "accountId") > strings.Index(msg, "payeeName") {
			t.Errorf("Fields not sorted: %q", msg)
		}
	})
}

func TestValidateUpdateTransaction(t *testing.T) {
	t.Run("applies the same constraints as creation", func(t *testing.T) {
		err := ValidateUpdateTransaction(request.UpdateTransactionRequest{
			AccountID: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			Date:      "2024-01-21",
			Amount:    "banana",
			PayeeName: "Employer Inc",
		})
		assertFieldError(t, err, "amount")
	})
}

func TestValidateUUID(t *testing.T) {
	t.Run("accepts a valid UUID", func(t *testing.T) {
		if err := ValidateUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects an empty ID", func(t *testing.T) {
		if err := ValidateUUID("  "); !errors.Is(err, apperrors.ErrEmptyID) {
			t.Errorf("Expected ErrEmptyID, got %v", err)
		}
	})

	t.Run("rejects a malformed ID", func(t *testing.T) {
		if err := ValidateUUID("not-a-uuid"); !errors.Is(err, apperrors.ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected a validation error for %s", field)
	}
	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected a validation Error, got %T", err)
	}
	if _, ok := vErr.Fields[field]; !ok {
		t.Errorf("Expected a failure for %s, got %v", field, vErr.Fields)
	}
}
