// Package dsv provides configurable dialect options for parsing and rendering.
package dsv

import (
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Options configures the three dialect signals. Each signal is a literal,
// possibly multi-character token. All three must be non-empty and none may
// be a prefix of another; every parsing entry point validates the set and
// returns ErrEmptySignal or ErrSignalCollision on violation.
type Options struct {
	// Delimiter separates columns.
	// Default: ","
	Delimiter string

	// Quote wraps columns containing the delimiter or line terminator.
	// A literal quote inside a quoted column is written doubled.
	// Default: `"`
	Quote string

	// NewLine terminates rows. Use "\r\n" for CRLF input.
	// Default: "\n"
	NewLine string
}

// DefaultOptions returns the classic CSV dialect: comma, double quote, LF.
func DefaultOptions() Options {
	return Options{
		Delimiter: ",",
		Quote:     `"`,
		NewLine:   "\n",
	}
}

// signals converts the public options into the internal signal set.
func (o Options) signals() tokenizer.Signals {
	return tokenizer.Signals{
		Delimiter: o.Delimiter,
		Quote:     o.Quote,
		NewLine:   o.NewLine,
	}
}

// Validate checks the dialect without parsing anything.
func (o Options) Validate() error {
	return o.signals().Validate()
}
