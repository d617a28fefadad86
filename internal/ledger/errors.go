package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is.
var (
	ErrValidation      = errors.New("invalid transaction")
	ErrIndexOutOfRange = errors.New("transaction index out of range")
)

// ValidationError describes one problem with a submitted transaction.
type ValidationError struct {
	Posting int // zero-based posting position, -1 for the transaction itself
	Field   string
	Reason  string
}

func (e ValidationError) Error() string {
	if e.Posting < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("posting %d %s: %s", e.Posting+1, e.Field, e.Reason)
}

// ValidationErrors is returned when a transaction is rejected. The ledger is
// left unchanged.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is matches ErrValidation.
func (errs ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// IndexError reports an edit or delete outside the ledger bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("transaction index %d out of range (ledger has %d)", e.Index, e.Len)
}

// Is matches ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
