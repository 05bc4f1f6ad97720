// Package dsv parses delimiter-separated values with configurable,
// possibly multi-character, dialect tokens.
//
// Classic CSV is the default dialect (comma, double quote, LF), but the
// delimiter, quote, and line terminator are each arbitrary literal strings:
//
//	opts := dsv.Options{Delimiter: "::", Quote: "'", NewLine: "\r\n"}
//	rows, err := dsv.Parse("a::'b::c'\r\nd::e", opts)
//	// rows: [["a", "b::c"], ["d", "e"]]
//
// A column may contain the delimiter or the line terminator verbatim when
// wrapped in the quote token, and a literal quote inside a quoted column is
// written as two consecutive quote tokens.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call creates its own parser instance with no shared
// mutable state. A Scanner instance, however, carries the state of one
// input stream and must not be shared.
//
// # Parsing APIs
//
//   - Parse(string, Options) - all rows of an in-memory document
//   - ParseReader(io.Reader, Options) - streaming input, constant memory per row
//   - ParseRow(string, Options) - exactly one row
//   - ParseLines([]string, Options) - pre-split lines, one row per line
//   - ParseAST(string, Options) - rows as Shape AST nodes
//   - NewScanner(io.Reader, Options) - lazy row-at-a-time iteration
package dsv

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-dsv/internal/parser"
)

// Parse tokenizes the input into rows of columns.
//
// Every row is an ordered slice of column strings. Empty input yields zero
// rows. A trailing row without a line terminator is included.
//
// Example:
//
//	rows, err := dsv.Parse("a,\"b,c\",d\ne,f,g", dsv.DefaultOptions())
//	// rows: [["a", "b,c", "d"], ["e", "f", "g"]]
func Parse(input string, opts Options) ([][]string, error) {
	p, err := parser.NewParser(input, opts.signals())
	if err != nil {
		return nil, err
	}
	return p.ParseAll(), nil
}

// ParseReader tokenizes rows from an io.Reader.
//
// The reader is consumed incrementally; only the current row's characters
// are buffered, so this is suitable for large files and network streams.
// For row-at-a-time consumption without collecting all rows, use NewScanner.
func ParseReader(reader io.Reader, opts Options) ([][]string, error) {
	p, err := newReaderParser(reader, opts)
	if err != nil {
		return nil, err
	}
	return p.ParseAll(), nil
}

// ParseRow tokenizes input that the caller declares to be a single line.
//
// Empty input yields an empty column list, not an error. Input containing an
// unquoted line terminator returns ErrMultipleRows with no partial result.
// A quoted line terminator is ordinary column content:
//
//	cols, err := dsv.ParseRow("a,\"b\nc\"", dsv.DefaultOptions())
//	// cols: ["a", "b\nc"]
func ParseRow(input string, opts Options) ([]string, error) {
	p, err := parser.NewParser(input, opts.signals())
	if err != nil {
		return nil, err
	}
	return p.ParseRow()
}

// ParseLines tokenizes a sequence of pre-split lines, producing exactly one
// row per line. Line boundaries are the caller's responsibility: an unquoted
// line terminator inside a supplied line returns ErrMalformedLine. A nil
// slice returns ErrNilInput.
func ParseLines(lines []string, opts Options) ([][]string, error) {
	return parser.ParseLines(lines, opts.signals())
}

// ParseAST parses the input into Shape's unified AST representation.
//
// Returns an *ast.ArrayDataNode of rows, each row an *ast.ArrayDataNode of
// *ast.LiteralNode string fields, matching the shape produced by the other
// Shape format parsers.
func ParseAST(input string, opts Options) (ast.SchemaNode, error) {
	rows, err := Parse(input, opts)
	if err != nil {
		return nil, err
	}
	return rowsToAST(rows), nil
}

// Format returns the format identifier for this parser.
func Format() string {
	return "DSV"
}

// newReaderParser wraps an io.Reader in a shape-core stream and builds a
// parser over it.
func newReaderParser(reader io.Reader, opts Options) (*parser.Parser, error) {
	if reader == nil {
		return nil, parser.ErrNilInput
	}
	stream := shapetokenizer.NewStreamFromReader(reader)
	return parser.NewParserFromStream(stream, opts.signals())
}

// rowsToAST converts parsed rows into the Shape AST shape used by ParseAST.
func rowsToAST(rows [][]string) ast.SchemaNode {
	records := make([]ast.SchemaNode, 0, len(rows))
	for _, row := range rows {
		fields := make([]ast.SchemaNode, 0, len(row))
		for _, col := range row {
			fields = append(fields, ast.NewLiteralNode(col, ast.ZeroPosition()))
		}
		records = append(records, ast.NewArrayDataNode(fields, ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}
