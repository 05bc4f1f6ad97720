// Package dsv provides error values for dialect configuration and parsing.
package dsv

import (
	"errors"

	"github.com/shapestone/shape-dsv/internal/parser"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// DialectError reports an invalid signal configuration. It names the
// offending signal, carries its configured token, and unwraps to
// ErrEmptySignal or ErrSignalCollision:
//
//	_, err := dsv.Parse(input, opts)
//	var dialectErr *dsv.DialectError
//	if errors.As(err, &dialectErr) {
//	    fmt.Println("bad signal:", dialectErr.Signal)
//	}
type DialectError = tokenizer.DialectError

// Configuration and usage errors. The first five are re-exported from the
// internal packages so callers can match with errors.Is without importing
// internals.
var (
	// ErrEmptySignal indicates a dialect token was configured empty.
	ErrEmptySignal = tokenizer.ErrEmptySignal

	// ErrSignalCollision indicates one dialect token is a prefix of another.
	ErrSignalCollision = tokenizer.ErrSignalCollision

	// ErrMultipleRows indicates ParseRow received input containing an
	// unquoted line terminator.
	ErrMultipleRows = parser.ErrMultipleRows

	// ErrMalformedLine indicates ParseLines found an unquoted line
	// terminator inside a supplied line.
	ErrMalformedLine = parser.ErrMalformedLine

	// ErrNilInput indicates a nil reader or nil line slice.
	ErrNilInput = parser.ErrNilInput

	// ErrAmbiguousHeader indicates a Registry registration whose header is a
	// prefix of, or has as a prefix, an already-registered header.
	ErrAmbiguousHeader = errors.New("ambiguous header prefix")

	// ErrEmptyHeader indicates a Registry registration with an empty header.
	ErrEmptyHeader = errors.New("empty header")

	// ErrNoFormat indicates no registered descriptor matches a row.
	ErrNoFormat = errors.New("no registered format matches row")
)
