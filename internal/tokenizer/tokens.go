// Package tokenizer splits a character stream into rows of columns using
// configurable signal tokens for the delimiter, the quote, and the line
// terminator. Each signal may be more than one character long; classic CSV
// is just the dialect where all three are a single character.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies one buffered character position.
// Multi-character signals collapse onto their first position; the remaining
// positions of the token are tagged CategoryNoop so the raw-character buffer
// and the category buffer stay the same length.
type Category int

const (
	// CategoryChar is ordinary column content.
	CategoryChar Category = iota
	// CategoryDelimiter marks the first position of a completed delimiter token.
	CategoryDelimiter
	// CategoryStartQuote marks the first position of an opening quote token.
	CategoryStartQuote
	// CategoryEndQuote marks the first position of a closing quote token.
	CategoryEndQuote
	// CategoryEscapedQuote marks the first position of a doubled quote token
	// that decodes to one literal quote occurrence.
	CategoryEscapedQuote
	// CategoryNewline marks the first position of a completed line terminator.
	CategoryNewline
	// CategoryNoop is a position inside a multi-character token that is not
	// the token's anchor. It contributes nothing during assembly.
	CategoryNoop
)

// String returns a readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryChar:
		return "Char"
	case CategoryDelimiter:
		return "Delimiter"
	case CategoryStartQuote:
		return "StartQuote"
	case CategoryEndQuote:
		return "EndQuote"
	case CategoryEscapedQuote:
		return "EscapedQuote"
	case CategoryNewline:
		return "Newline"
	case CategoryNoop:
		return "Noop"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Configuration errors.
var (
	// ErrEmptySignal indicates a signal token was configured as the empty string.
	ErrEmptySignal = errors.New("empty signal token")

	// ErrSignalCollision indicates one signal token is a prefix of another
	// (or equal to it), which would make tokenization ambiguous.
	ErrSignalCollision = errors.New("signal tokens collide")
)

// DialectError reports an invalid signal configuration. It names the
// offending signal and wraps the underlying cause, so callers can match
// with errors.Is(err, ErrEmptySignal) or errors.Is(err, ErrSignalCollision)
// and inspect the faulty token with errors.As.
type DialectError struct {
	// Signal is the name of the offending signal: "delimiter", "quote", or
	// "newline".
	Signal string
	// Token is the configured value of that signal.
	Token string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted message naming the offending signal.
func (e *DialectError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Signal, e.Token, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialectError) Unwrap() error {
	return e.Err
}

// Signals holds the three dialect tokens. All three must be non-empty and
// none may be a prefix of another.
type Signals struct {
	// Delimiter separates columns. Default: ","
	Delimiter string
	// Quote wraps columns that contain the delimiter or the line terminator.
	// A literal quote inside a quoted column is written as two consecutive
	// quote tokens. Default: `"`
	Quote string
	// NewLine terminates rows. Default: "\n"
	NewLine string
}

// DefaultSignals returns the classic CSV dialect.
func DefaultSignals() Signals {
	return Signals{
		Delimiter: ",",
		Quote:     `"`,
		NewLine:   "\n",
	}
}

// Validate checks the signal set. Empty tokens are rejected, and so are
// prefix-colliding sets: with one token a prefix of another, a single
// character run could complete two signals at once and no fixed tie-break
// would be right for every input.
func (s Signals) Validate() error {
	named := []struct {
		name  string
		token string
	}{
		{"delimiter", s.Delimiter},
		{"quote", s.Quote},
		{"newline", s.NewLine},
	}

	for _, n := range named {
		if n.token == "" {
			return &DialectError{Signal: n.name, Token: n.token, Err: ErrEmptySignal}
		}
	}

	for i, a := range named {
		for j, b := range named {
			if i == j {
				continue
			}
			if strings.HasPrefix(b.token, a.token) {
				return &DialectError{
					Signal: a.name,
					Token:  a.token,
					Err: fmt.Errorf("prefix of %s %q: %w",
						b.name, b.token, ErrSignalCollision),
				}
			}
		}
	}

	return nil
}
