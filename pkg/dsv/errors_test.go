package dsv

import (
	"errors"
	"testing"
)

// TestErrorMatching tests that every public entry point surfaces sentinel
// errors matchable with errors.Is.
func TestErrorMatching(t *testing.T) {
	tests := []struct {
		name string
		call func() error
		want error
	}{
		{
			"empty signal",
			func() error { _, err := Parse("a", Options{Delimiter: "", Quote: `"`, NewLine: "\n"}); return err },
			ErrEmptySignal,
		},
		{
			"signal collision",
			func() error { _, err := Parse("a", Options{Delimiter: "\n\n", Quote: `"`, NewLine: "\n"}); return err },
			ErrSignalCollision,
		},
		{
			"multiple rows",
			func() error { _, err := ParseRow("a\nb", DefaultOptions()); return err },
			ErrMultipleRows,
		},
		{
			"malformed line",
			func() error { _, err := ParseLines([]string{"a\nb"}, DefaultOptions()); return err },
			ErrMalformedLine,
		},
		{
			"nil reader",
			func() error { _, err := ParseReader(nil, DefaultOptions()); return err },
			ErrNilInput,
		},
		{
			"nil lines",
			func() error { _, err := ParseLines(nil, DefaultOptions()); return err },
			ErrNilInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestDialectError tests that configuration failures carry the offending
// signal name and unwrap to the matching sentinel.
func TestDialectError(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		wantSignal string
		wantToken  string
		wantIs     error
	}{
		{
			"empty quote",
			Options{Delimiter: ",", Quote: "", NewLine: "\n"},
			"quote", "", ErrEmptySignal,
		},
		{
			"delimiter prefix of quote",
			Options{Delimiter: ",", Quote: ",,", NewLine: "\n"},
			"delimiter", ",", ErrSignalCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("a", tt.opts)

			var dialectErr *DialectError
			if !errors.As(err, &dialectErr) {
				t.Fatalf("error = %v (%T), want *DialectError", err, err)
			}
			if dialectErr.Signal != tt.wantSignal {
				t.Errorf("Signal = %q, want %q", dialectErr.Signal, tt.wantSignal)
			}
			if dialectErr.Token != tt.wantToken {
				t.Errorf("Token = %q, want %q", dialectErr.Token, tt.wantToken)
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantIs)
			}
			if dialectErr.Unwrap() == nil {
				t.Error("Unwrap() = nil, want underlying error")
			}
		})
	}
}

// TestValidate tests standalone dialect validation.
func TestValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}
	if err := (Options{}).Validate(); !errors.Is(err, ErrEmptySignal) {
		t.Errorf("zero options Validate() = %v, want ErrEmptySignal", err)
	}
}
