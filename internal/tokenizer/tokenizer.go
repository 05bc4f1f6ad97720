package tokenizer

// Tokenizer drives the three signal trackers and the classification buffer
// over a character stream. It is a step machine: Feed consumes one character
// and occasionally hands back a completed row, Flush drains the trailing
// unterminated row at end of input.
//
// When two trackers could fire on the same character the delimiter wins over
// the quote, which wins over the newline, and only one classification is
// applied. Signals.Validate rejects prefix-colliding token sets, which keeps
// that tie-break order out of play for well-formed configurations.
//
// A Tokenizer carries the state of one logical input stream and must not be
// shared; independent instances are fully independent.
type Tokenizer struct {
	signals Signals

	delimiter *SignalTracker
	quote     *SignalTracker
	newline   *SignalTracker

	delimiterWidth int
	quoteWidth     int
	newlineWidth   int

	buf buffer
}

// NewTokenizer creates a tokenizer for the given signal set.
// Returns an error if the signals fail validation.
func NewTokenizer(signals Signals) (*Tokenizer, error) {
	if err := signals.Validate(); err != nil {
		return nil, err
	}
	return &Tokenizer{
		signals:        signals,
		delimiter:      NewSignalTracker(signals.Delimiter),
		quote:          NewSignalTracker(signals.Quote),
		newline:        NewSignalTracker(signals.NewLine),
		delimiterWidth: len([]rune(signals.Delimiter)),
		quoteWidth:     len([]rune(signals.Quote)),
		newlineWidth:   len([]rune(signals.NewLine)),
	}, nil
}

// Feed consumes one character. The returned row is valid only when ok is
// true, which happens when this character completed an unquoted line
// terminator. The terminator itself is not part of the row.
func (t *Tokenizer) Feed(r rune) (row []string, ok bool) {
	t.buf.append(r)

	delimiterDone := t.delimiter.Feed(r)
	quoteDone := t.quote.Feed(r)
	newlineDone := t.newline.Feed(r)

	switch {
	case delimiterDone:
		t.buf.reclassify(CategoryDelimiter, t.delimiterWidth)
		t.resetTrackers()
	case quoteDone:
		t.classifyQuote()
		t.resetTrackers()
	case newlineDone:
		t.buf.reclassify(CategoryNewline, t.newlineWidth)
		t.resetTrackers()
		if !t.buf.inQuotes() {
			return t.emit(), true
		}
		// Quoted newline: retained as literal content, no row boundary.
	}

	return nil, false
}

// Flush ends the input. If a partial row is buffered (the input did not end
// with an unquoted line terminator) it is assembled and returned, and the
// tokenizer is left ready for reuse. An unterminated quote is not an error:
// the remaining characters assemble under the quote state they were left in.
func (t *Tokenizer) Flush() (row []string, ok bool) {
	if t.buf.len() == 0 {
		t.resetTrackers()
		return nil, false
	}
	return t.emit(), true
}

// Reset discards any buffered partial row and all tracker progress.
func (t *Tokenizer) Reset() {
	t.buf.reset()
	t.resetTrackers()
}

// classifyQuote tags a just-completed quote token. Whether it opens or
// closes quoting is decided by the backward scan over the categories as they
// stood before this revision; the quote's own characters still carry
// provisional Char tags, which the scan ignores.
//
// Doubled-quote rule: when the new quote would open quoting and the token
// exactly one quote-width earlier closed it, the two adjacent quote tokens
// are one escaped quote. Both token runs are reclassified as a single
// EscapedQuote span, which neither opens nor closes quoting.
func (t *Tokenizer) classifyQuote() {
	if t.buf.inQuotes() {
		t.buf.reclassify(CategoryEndQuote, t.quoteWidth)
		return
	}

	t.buf.reclassify(CategoryStartQuote, t.quoteWidth)

	anchor := t.buf.len() - 2*t.quoteWidth
	if anchor >= 0 && t.buf.categories[anchor] == CategoryEndQuote {
		t.buf.reclassify(CategoryEscapedQuote, 2*t.quoteWidth)
	}
}

// emit assembles the buffered row and resets buffer and trackers for the
// next one.
func (t *Tokenizer) emit() []string {
	row := assemble(t.buf.runes, t.buf.categories, t.signals)
	t.buf.reset()
	t.resetTrackers()
	return row
}

func (t *Tokenizer) resetTrackers() {
	t.delimiter.Reset()
	t.quote.Reset()
	t.newline.Reset()
}
