package picklist

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the record parsers and the line reader.
// Parse wraps them in a *ParseError carrying the line number.
var (
	// ErrLineTooLong is reported when a line exceeds the configured
	// maximum length.
	ErrLineTooLong = errors.New("line exceeds maximum length")

	// ErrInvalidName is reported for record names that start with a
	// reserved character.
	ErrInvalidName = errors.New("invalid name")

	// ErrMissingSeparator is reported for record lines without a colon.
	ErrMissingSeparator = errors.New("missing ':' separator")

	// ErrMissingValue is reported when nothing follows the separator.
	ErrMissingValue = errors.New("missing value")
)

// ParseError describes a failure on a specific input line.
type ParseError struct {
	Line int    // 1-based line number in the input
	Text string // offending line content, "" for read failures
	Err  error  // underlying cause
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
