// Package dsv provides header-based dispatch of rows to named row formats.
package dsv

import (
	"fmt"
	"strings"
)

// Descriptor names a row format and the literal header that identifies it.
// A row belongs to the format whose header it starts with.
type Descriptor struct {
	// Name identifies the format to the caller.
	Name string
	// Header is the literal leading substring that selects this format.
	Header string
	// Options is the dialect the format's rows are tokenized with.
	Options Options
}

// Registry maps a row's leading substring to a registered row format.
//
// Registered headers are kept mutually prefix-free, so at most one
// descriptor can ever match a given row and dispatch is unambiguous.
//
// A Registry is not safe for concurrent mutation; register all formats
// before dispatching.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a row format. Registration fails with ErrAmbiguousHeader if
// the new header is a prefix of, or has as a prefix, any already-registered
// header, and with ErrEmptyHeader if the header is empty (an empty header is
// a prefix of everything).
func (r *Registry) Register(d Descriptor) error {
	if d.Header == "" {
		return fmt.Errorf("format %q: %w", d.Name, ErrEmptyHeader)
	}
	for _, existing := range r.descriptors {
		if strings.HasPrefix(d.Header, existing.Header) || strings.HasPrefix(existing.Header, d.Header) {
			return fmt.Errorf("format %q header %q collides with format %q header %q: %w",
				d.Name, d.Header, existing.Name, existing.Header, ErrAmbiguousHeader)
		}
	}
	r.descriptors = append(r.descriptors, d)
	return nil
}

// Dispatch returns the unique registered descriptor whose header the row's
// raw text starts with, or ErrNoFormat if none qualifies.
func (r *Registry) Dispatch(row string) (*Descriptor, error) {
	for i := range r.descriptors {
		if strings.HasPrefix(row, r.descriptors[i].Header) {
			return &r.descriptors[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoFormat, head(row, 32))
}

// Len returns the number of registered formats.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// head truncates s for error messages, cutting on a rune boundary so
// multi-byte characters are never split.
func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
