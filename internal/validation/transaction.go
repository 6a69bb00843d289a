package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/ynab-compass/internal/api/request"
	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/ynab"
)

// ValidFlagColor contains the allowed transaction flag colors.
// The empty string means no flag.
var ValidFlagColor = map[string]bool{
	"red": true, "orange": true, "yellow": true,
	"green": true, "blue": true, "purple": true,
}

// ParseAmount converts a user-entered currency string into milliunits.
// Decimal arithmetic keeps "4.99" from drifting through a float.
func ParseAmount(amount string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, amount)
	}
	return d.Shift(3).Round(0).IntPart(), nil
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - accountId: must be a valid UUID
//   - date: must be in YYYY-MM-DD format
//   - amount: must parse as a decimal currency value
//   - payeeName: must be non-empty
//
// Optional fields are checked against their enumerations when present.
// Returns a validation Error with field-specific messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	return validateTransactionFields(req.AccountID, req.Date, req.Amount, req.PayeeName, req.CategoryID, req.FlagColor)
}

// ValidateUpdateTransaction validates a transaction update request. The
// remote service replaces the record, so the constraints match creation.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	return validateTransactionFields(req.AccountID, req.Date, req.Amount, req.PayeeName, req.CategoryID, req.FlagColor)
}

func validateTransactionFields(accountID, date, amount, payeeName, categoryID, flagColor string) error {
	errors := make(map[string]string)

	if err := ValidateUUID(accountID); err != nil {
		errors["accountId"] = err.Error()
	}

	if strings.TrimSpace(date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse(ynab.DateFormat, date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(amount) == "" {
		errors["amount"] = "amount is required"
	} else if _, err := ParseAmount(amount); err != nil {
		errors["amount"] = fmt.Sprintf("%s is not a valid number", amount)
	}

	if strings.TrimSpace(payeeName) == "" {
		errors["payeeName"] = "payee name is required"
	}

	if categoryID != "" {
		if err := ValidateUUID(categoryID); err != nil {
			errors["categoryId"] = err.Error()
		}
	}

	if flagColor != "" && !ValidFlagColor[flagColor] {
		errors["flagColor"] = fmt.Sprintf("invalid flag color: %s", flagColor)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
