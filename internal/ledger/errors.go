package ledger

import "fmt"

// ValidationCode identifies why a spend event was rejected.
type ValidationCode string

// Validation failure codes. These are caused by bad caller input and are
// surfaced verbatim; they are never retried.
const (
	CodeUnknownPayer       ValidationCode = "unknown_payer"
	CodeUnknownParticipant ValidationCode = "unknown_participant"
	CodeEmptyParticipants  ValidationCode = "empty_participants"
	CodeNonPositiveAmount  ValidationCode = "non_positive_amount"
	CodeShareMismatch      ValidationCode = "share_mismatch"
)

// ValidationError reports a structurally invalid spend event.
type ValidationError struct {
	Code ValidationCode
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid spend (%s): %s", e.Code, e.Msg)
}

func validationErrorf(code ValidationCode, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// InvalidLedgerError indicates a corrupted or tampered event log: an event
// already stored for the group failed validation during a balance fold.
// This signals a conservation-invariant violation and is fatal for the
// group's read operations; it is never silently dropped or auto-repaired.
type InvalidLedgerError struct {
	GroupID string
	EventID string
	Cause   error
}

func (e *InvalidLedgerError) Error() string {
	return fmt.Sprintf("invalid ledger for group %s: event %s: %v", e.GroupID, e.EventID, e.Cause)
}

func (e *InvalidLedgerError) Unwrap() error { return e.Cause }

// UnbalancedLedgerError indicates the settlement planner was handed balances
// that do not sum to zero. This is a data-integrity bug upstream, not a user
// error.
type UnbalancedLedgerError struct {
	// Residual is the non-zero sum of the offending balances, in minor units.
	Residual int64
}

func (e *UnbalancedLedgerError) Error() string {
	return fmt.Sprintf("unbalanced ledger: balances sum to %d, want 0", e.Residual)
}
