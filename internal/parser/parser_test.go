package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

func csvParser(t *testing.T, input string) *Parser {
	t.Helper()
	p, err := NewParser(input, tokenizer.DefaultSignals())
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

// TestParser_NextRow tests pull-based row production and exhaustion.
func TestParser_NextRow(t *testing.T) {
	p := csvParser(t, "a,b\nc\n\"d\ne\",f")

	want := [][]string{
		{"a", "b"},
		{"c"},
		{"d\ne", "f"},
	}
	for i, wantRow := range want {
		row, ok := p.NextRow()
		if !ok {
			t.Fatalf("NextRow %d: exhausted early", i)
		}
		if !reflect.DeepEqual(row, wantRow) {
			t.Errorf("NextRow %d = %q, want %q", i, row, wantRow)
		}
	}

	// Exhausted sequence stays exhausted.
	for i := 0; i < 2; i++ {
		if row, ok := p.NextRow(); ok {
			t.Errorf("NextRow after end = %q, want none", row)
		}
	}
}

// TestParser_NextRow_Empty tests that empty input yields zero rows.
func TestParser_NextRow_Empty(t *testing.T) {
	p := csvParser(t, "")
	if row, ok := p.NextRow(); ok {
		t.Errorf("NextRow on empty input = %q, want none", row)
	}
}

// TestParser_ParseRow tests the single-row operation.
func TestParser_ParseRow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{"empty input yields empty column list", "", []string{}, nil},
		{"plain row", "a,b,c", []string{"a", "b", "c"}, nil},
		{"quoted delimiter", `a,"b,c",d`, []string{"a", "b,c", "d"}, nil},
		{"quoted newline is content", "a,\"b\nc\"", []string{"a", "b\nc"}, nil},
		{"terminated single row", "a,b\n", []string{"a", "b"}, nil},
		{"unquoted newline is a usage error", "a\nb", nil, ErrMultipleRows},
		{"terminated pair of rows", "a\nb\n", nil, ErrMultipleRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := csvParser(t, tt.input).ParseRow()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRow() error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("ParseRow() returned partial result %q with error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRow() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParser_ParseAll tests draining every row in order.
func TestParser_ParseAll(t *testing.T) {
	got := csvParser(t, "a,b\nc,d\ne").ParseAll()
	want := [][]string{{"a", "b"}, {"c", "d"}, {"e"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseAll() = %q, want %q", got, want)
	}

	if got := csvParser(t, "").ParseAll(); len(got) != 0 {
		t.Errorf("ParseAll() on empty input = %q, want none", got)
	}
}

// TestParseLines tests the pre-split line-sequence variant.
func TestParseLines(t *testing.T) {
	signals := tokenizer.DefaultSignals()

	tests := []struct {
		name    string
		lines   []string
		want    [][]string
		wantErr error
	}{
		{"nil sequence", nil, nil, ErrNilInput},
		{"no lines", []string{}, [][]string{}, nil},
		{"plain lines", []string{"a,b", "c"}, [][]string{{"a", "b"}, {"c"}}, nil},
		{"empty line is one empty column", []string{""}, [][]string{{""}}, nil},
		{"quoted delimiter", []string{`a,"b,c"`}, [][]string{{"a", "b,c"}}, nil},
		{"quoted newline inside a line", []string{"\"a\nb\",c"}, [][]string{{"a\nb", "c"}}, nil},
		{"unquoted newline violates the contract", []string{"a\nb"}, nil, ErrMalformedLine},
		{"later malformed line aborts", []string{"ok", "bad\nline"}, nil, ErrMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLines(tt.lines, signals)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseLines() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLines() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestNewParser_InvalidSignals tests that construction rejects bad dialects.
func TestNewParser_InvalidSignals(t *testing.T) {
	_, err := NewParser("a,b", tokenizer.Signals{Delimiter: "", Quote: `"`, NewLine: "\n"})
	if !errors.Is(err, tokenizer.ErrEmptySignal) {
		t.Errorf("NewParser() error = %v, want ErrEmptySignal", err)
	}
}

// TestNewParserFromStream_Nil tests the nil-stream rejection.
func TestNewParserFromStream_Nil(t *testing.T) {
	_, err := NewParserFromStream(nil, tokenizer.DefaultSignals())
	if !errors.Is(err, ErrNilInput) {
		t.Errorf("NewParserFromStream(nil) error = %v, want ErrNilInput", err)
	}
}
