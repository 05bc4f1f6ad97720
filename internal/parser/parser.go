// Package parser drives a character stream through the row tokenizer and
// exposes the row-level operations: lazy row-by-row pulling, single-row
// parsing, and the pre-split line-sequence variant.
package parser

import (
	"errors"
	"fmt"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Input and usage errors.
var (
	// ErrMultipleRows indicates single-row parsing encountered an unquoted
	// line terminator. No partial result is returned.
	ErrMultipleRows = errors.New("input contains more than one row")

	// ErrMalformedLine indicates a pre-split line contained an unquoted line
	// terminator. Line boundaries are the caller's responsibility in the
	// line-sequence variant.
	ErrMalformedLine = errors.New("line contains an unquoted line terminator")

	// ErrNilInput indicates a nil stream or line sequence where input was
	// required.
	ErrNilInput = errors.New("nil input")
)

// Parser pulls rows out of a character stream on demand. Only the characters
// of the row currently being accumulated are buffered, so arbitrarily long
// input can be processed without holding it all in memory.
//
// A Parser is a non-restartable single pass over its stream and must not be
// shared between goroutines.
type Parser struct {
	stream shapetokenizer.Stream
	tok    *tokenizer.Tokenizer
	done   bool
}

// NewParser creates a parser over an in-memory input string.
func NewParser(input string, signals tokenizer.Signals) (*Parser, error) {
	return NewParserFromStream(shapetokenizer.NewStream(input), signals)
}

// NewParserFromStream creates a parser over a pre-configured stream. This is
// how io.Reader input arrives, via tokenizer.NewStreamFromReader.
func NewParserFromStream(stream shapetokenizer.Stream, signals tokenizer.Signals) (*Parser, error) {
	if stream == nil {
		return nil, fmt.Errorf("stream: %w", ErrNilInput)
	}
	tok, err := tokenizer.NewTokenizer(signals)
	if err != nil {
		return nil, err
	}
	return &Parser{stream: stream, tok: tok}, nil
}

// NextRow returns the next completed row. It consumes the stream only as far
// as the terminator of that row (or end of input, which yields the trailing
// unterminated row exactly once). After the sequence is exhausted, ok is
// false on every call.
func (p *Parser) NextRow() (row []string, ok bool) {
	if p.done {
		return nil, false
	}
	for {
		r, haveChar := p.stream.NextChar()
		if !haveChar {
			p.done = true
			return p.tok.Flush()
		}
		if row, ok := p.tok.Feed(r); ok {
			return row, true
		}
	}
}

// ParseRow runs the parser to completion expecting a single row.
//
// Empty input yields an empty column list and no error. More than one
// completed row means the caller handed multi-line input to a single-line
// operation: ErrMultipleRows, with no partial result.
func (p *Parser) ParseRow() ([]string, error) {
	first, ok := p.NextRow()
	if !ok {
		return []string{}, nil
	}
	if _, more := p.NextRow(); more {
		return nil, ErrMultipleRows
	}
	return first, nil
}

// ParseAll drains NextRow and returns every row in order.
func (p *Parser) ParseAll() [][]string {
	rows := make([][]string, 0, 16)
	for {
		row, ok := p.NextRow()
		if !ok {
			return rows
		}
		rows = append(rows, row)
	}
}

// ParseLines tokenizes a sequence of pre-split lines, treating each line's
// end as an implicit row terminator for that line. Quoted delimiters and
// escaped quotes inside a line work as usual, but an unquoted line
// terminator inside a supplied line violates the input contract and aborts
// with ErrMalformedLine. A nil slice is ErrNilInput; an empty slice yields
// zero rows.
func ParseLines(lines []string, signals tokenizer.Signals) ([][]string, error) {
	if lines == nil {
		return nil, fmt.Errorf("lines: %w", ErrNilInput)
	}
	tok, err := tokenizer.NewTokenizer(signals)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		for _, r := range line {
			if _, ended := tok.Feed(r); ended {
				tok.Reset()
				return nil, fmt.Errorf("line %d: %w", i, ErrMalformedLine)
			}
		}
		// Implicit terminator: every supplied line closes exactly one row,
		// an empty line being a row of one empty column.
		row, ok := tok.Flush()
		if !ok {
			row = []string{""}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
