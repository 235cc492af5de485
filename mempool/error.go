package mempool

import "fmt"

// ErrorCode identifies a kind of error returned by the pool's public API.
type ErrorCode int

const (
	// ErrFeeTooLow indicates the transaction's fee is below the
	// currency's configured minimum and the transaction did not arrive
	// with keptByBlock set.
	ErrFeeTooLow ErrorCode = iota

	// ErrInvalidInputs indicates the validator port rejected the
	// transaction's inputs.
	ErrInvalidInputs

	// ErrDoubleSpend indicates a key image conflict against another
	// non-kept-by-block pool entry, or a spent-output conflict against any
	// pool entry.
	ErrDoubleSpend

	// ErrAlreadyPresent indicates the transaction id is already in the
	// pool. Callers should treat this as idempotent success, not failure.
	ErrAlreadyPresent

	// ErrCorruptState indicates the on-disk snapshot failed to parse and
	// was discarded.
	ErrCorruptState

	// ErrIOError indicates a snapshot write failed.
	ErrIOError

	// ErrInternal indicates an invariant was violated. It completes the
	// taxonomy; no code path in this package currently returns it.
	ErrInternal
)

var errorCodeNames = map[ErrorCode]string{
	ErrFeeTooLow:      "ErrFeeTooLow",
	ErrInvalidInputs:  "ErrInvalidInputs",
	ErrDoubleSpend:    "ErrDoubleSpend",
	ErrAlreadyPresent: "ErrAlreadyPresent",
	ErrCorruptState:   "ErrCorruptState",
	ErrIOError:        "ErrIOError",
	ErrInternal:       "ErrInternal",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeNames[e]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(e))
}

// PoolRuleError identifies an error that is the result of a transaction
// failing one of the pool's admission rules. It carries both a
// machine-readable ErrorCode and a human-readable description.
type PoolRuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e PoolRuleError) Error() string {
	return e.Description
}

// poolRuleError creates a PoolRuleError given a set of arguments.
func poolRuleError(c ErrorCode, desc string) PoolRuleError {
	return PoolRuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a PoolRuleError with the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	ruleErr, ok := err.(PoolRuleError)
	return ok && ruleErr.ErrorCode == c
}
