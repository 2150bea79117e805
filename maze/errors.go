package maze

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid     = errors.New("empty grid")
	ErrRaggedRows    = errors.New("all rows must have the same length")
	ErrStartCount    = errors.New("there must be exactly one start (S)")
	ErrEndCount      = errors.New("there must be exactly one end (E)")
	ErrUnknownSymbol = errors.New("unrecognized symbol")
	ErrInvalidWeight = errors.New("invalid cost configuration")
)

// ValidationError reports why a grid could not be constructed.
// Err is one of the sentinel errors above; Row and Col are -1 when the
// failure is not tied to a single cell.
type ValidationError struct {
	Err    error
	Row    int
	Col    int
	Detail string
}

func (e *ValidationError) Error() string {
	msg := "maze: " + e.Err.Error()
	if e.Row >= 0 && e.Col >= 0 {
		msg += fmt.Sprintf(" at (%d, %d)", e.Row, e.Col)
	} else if e.Row >= 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(err error, row, col int, format string, args ...any) *ValidationError {
	return &ValidationError{Err: err, Row: row, Col: col, Detail: fmt.Sprintf(format, args...)}
}
