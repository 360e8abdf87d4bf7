package trip

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned for a turn with neither text nor a selection.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrInvalidContext is returned when the echoed context breaks a leg invariant.
	ErrInvalidContext = errors.New("invalid trip context")
	// ErrPlanIncomplete is returned by Finalize when a required selection is missing.
	ErrPlanIncomplete = errors.New("trip plan is incomplete")
)

// SelectionError rejects an offer selection that would break the context invariants.
type SelectionError struct {
	Code    string
	Message string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newSelectionError(code, msg string) error {
	return &SelectionError{
		Code:    code,
		Message: msg,
	}
}
