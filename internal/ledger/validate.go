package ledger

import (
	"errors"
	"strings"

	"github.com/cleared-dev/ledgerbook/internal/accounts"
	"github.com/cleared-dev/ledgerbook/internal/model"
)

// ValidateTransaction returns every problem found in txn. An empty result
// means txn may enter the ledger.
func ValidateTransaction(txn model.Transaction) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(txn.Description) == "" {
		errs = append(errs, ValidationError{Posting: -1, Field: "description", Reason: "must not be empty"})
	}
	if len(txn.Postings) == 0 {
		errs = append(errs, ValidationError{Posting: -1, Field: "postings", Reason: "at least one posting is required"})
	}

	for i, p := range txn.Postings {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, ValidationError{Posting: i, Field: "name", Reason: "must not be empty"})
		}
		if p.Amount.IsZero() {
			errs = append(errs, ValidationError{Posting: i, Field: "amount", Reason: "must not be zero"})
		}
		if err := accounts.Check(p.Type, p.Sub, p.LineItem); err != nil {
			errs = append(errs, ValidationError{Posting: i, Field: classificationField(err), Reason: err.Error()})
		}
	}
	return errs
}

// Validate wraps ValidateTransaction into a single error.
func Validate(txn model.Transaction) error {
	if errs := ValidateTransaction(txn); len(errs) > 0 {
		return ValidationErrors(errs)
	}
	return nil
}

func classificationField(err error) string {
	switch {
	case errors.Is(err, accounts.ErrUnknownType):
		return "type"
	case errors.Is(err, accounts.ErrSubNotAllowed):
		return "sub"
	default:
		return "line_item"
	}
}
