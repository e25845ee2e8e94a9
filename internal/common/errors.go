// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Ingestion errors.
	ErrNoTransactions = errors.New("no transactions loaded")
	ErrNoRules        = errors.New("no association rules loaded")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DataFormatError reports malformed input data: a bad row, an undecodable
// set literal, or a rule that violates its structural invariants. It is
// fatal to the load call that produced it; the input is static, so there is
// nothing to retry.
type DataFormatError struct {
	Err error
	Msg string
	Row int // 1-based row number in the source table, 0 if not row-specific
}

func (e *DataFormatError) Error() string {
	switch {
	case e.Row > 0 && e.Err != nil:
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Msg, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	default:
		return e.Msg
	}
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// NewDataFormatError creates a DataFormatError for a specific input row.
func NewDataFormatError(row int, msg string, err error) error {
	return &DataFormatError{Row: row, Msg: msg, Err: err}
}

// IsDataFormat reports whether err is (or wraps) a DataFormatError.
func IsDataFormat(err error) bool {
	var dfe *DataFormatError
	return errors.As(err, &dfe)
}
