// Package dsv provides rendering of rows back to delimited text.
package dsv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts rows to delimited bytes in the given dialect.
//
// A column is wrapped in the quote token when it contains any of the three
// signals, and embedded quote tokens are doubled. Every row ends with the
// line terminator. Parsing the output with the same dialect reproduces the
// rows exactly.
//
// Example:
//
//	out, _ := dsv.Render([][]string{{"a", "b,c"}}, dsv.DefaultOptions())
//	// out: a,"b,c"\n
func Render(rows [][]string, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, row := range rows {
		writeRow(&buf, row, opts)
		buf.WriteString(opts.NewLine)
	}
	return buf.Bytes(), nil
}

// EncodeRow renders a single row without a trailing line terminator.
func EncodeRow(columns []string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	writeRow(&buf, columns, opts)
	return buf.String(), nil
}

// RenderAST converts an AST produced by ParseAST (or any of the Shape format
// parsers, provided it is an array of arrays of string literals) to
// delimited bytes.
func RenderAST(node ast.SchemaNode, opts Options) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}
	file, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("unsupported node type for rendering: %T", node)
	}

	rows := make([][]string, 0, len(file.Elements()))
	for _, elem := range file.Elements() {
		record, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("unsupported record node type: %T", elem)
		}
		row := make([]string, 0, len(record.Elements()))
		for _, field := range record.Elements() {
			lit, ok := field.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("unsupported field node type: %T", field)
			}
			s, ok := lit.Value().(string)
			if !ok {
				return nil, fmt.Errorf("unsupported field value type: %T", lit.Value())
			}
			row = append(row, s)
		}
		rows = append(rows, row)
	}

	return Render(rows, opts)
}

func writeRow(buf *bytes.Buffer, columns []string, opts Options) {
	for i, col := range columns {
		if i > 0 {
			buf.WriteString(opts.Delimiter)
		}
		writeColumn(buf, col, opts)
	}
}

func writeColumn(buf *bytes.Buffer, col string, opts Options) {
	if !needsQuoting(col, opts) {
		buf.WriteString(col)
		return
	}
	buf.WriteString(opts.Quote)
	buf.WriteString(strings.ReplaceAll(col, opts.Quote, opts.Quote+opts.Quote))
	buf.WriteString(opts.Quote)
}

func needsQuoting(col string, opts Options) bool {
	if strings.Contains(col, opts.Delimiter) ||
		strings.Contains(col, opts.Quote) ||
		strings.Contains(col, opts.NewLine) {
		return true
	}
	// An unquoted column ending in a partial signal would fuse with the
	// delimiter or terminator written after it and complete a token early,
	// e.g. column "x:" before delimiter "::". Quoting keeps the boundary
	// intact. Single-character signals have no partial prefixes, so classic
	// CSV output is unaffected.
	return hasPartialSuffix(col, opts.Delimiter) ||
		hasPartialSuffix(col, opts.Quote) ||
		hasPartialSuffix(col, opts.NewLine)
}

// hasPartialSuffix reports whether some nonempty proper prefix of token is a
// suffix of col.
func hasPartialSuffix(col, token string) bool {
	for i := 1; i < len(token); i++ {
		if strings.HasSuffix(col, token[:i]) {
			return true
		}
	}
	return false
}
