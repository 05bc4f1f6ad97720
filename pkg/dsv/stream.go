package dsv

import (
	"io"

	"github.com/shapestone/shape-dsv/internal/parser"
)

// Scanner provides a streaming interface for reading rows one at a time.
// Rows are produced lazily: each Scan consumes the underlying reader only as
// far as the next row boundary, so memory use is bounded by the largest row
// regardless of input size. Abandoning iteration at any row boundary is safe
// and is the only cancellation mechanism.
//
// Example usage:
//
//	file, _ := os.Open("data.dsv")
//	defer file.Close()
//
//	scanner := dsv.NewScanner(file, dsv.DefaultOptions())
//	for scanner.Scan() {
//	    row := scanner.Row()
//	    fmt.Println(row)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	parser *parser.Parser
	row    []string
	err    error
}

// NewScanner creates a Scanner reading rows from the given io.Reader with
// the given dialect. A nil reader or invalid dialect is reported through
// Err after the first Scan returns false.
func NewScanner(reader io.Reader, opts Options) *Scanner {
	p, err := newReaderParser(reader, opts)
	if err != nil {
		return &Scanner{err: err}
	}
	return &Scanner{parser: p}
}

// Scan advances to the next row. It returns false when the input is
// exhausted or construction failed; check Err afterwards.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.parser == nil {
		return false
	}
	row, ok := s.parser.NextRow()
	if !ok {
		s.row = nil
		return false
	}
	s.row = row
	return true
}

// Row returns the current row. Valid only after Scan returned true; the
// slice is owned by the caller and not reused.
func (s *Scanner) Row() []string {
	return s.row
}

// Err returns the error, if any, encountered during construction or
// scanning. It returns nil at normal end of input.
func (s *Scanner) Err() error {
	return s.err
}
