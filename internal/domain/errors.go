package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig       = errors.New("rate config values out of range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrUnknownReference    = errors.New("referenced record does not exist")
	ErrOperatorImmutable   = errors.New("operator account cannot be modified")
	ErrNegativeViewDelta   = errors.New("view counters can only increase")
)

// MalformedRowError aborts a batch import; Line is the 1-based line number
// of the offending row in the payload.
type MalformedRowError struct {
	Line int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed import row at line %d", e.Line)
}
