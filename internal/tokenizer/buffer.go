package tokenizer

// buffer holds the raw characters of the row being accumulated alongside a
// category tag per character. The two slices grow in lock-step: every
// character is appended with a provisional CategoryChar tag, and a trailing
// window is overwritten once a tracker confirms a completed token.
type buffer struct {
	runes      []rune
	categories []Category
}

func (b *buffer) append(r rune) {
	b.runes = append(b.runes, r)
	b.categories = append(b.categories, CategoryChar)
}

func (b *buffer) len() int {
	return len(b.runes)
}

// reclassify overwrites the trailing width positions: the first carries the
// semantic tag, the rest become CategoryNoop. Trackers reset after every
// fire, so the window never reaches back across an earlier semantic tag
// (the one deliberate exception is the doubled-quote collapse, which spans
// the previous quote token by construction).
func (b *buffer) reclassify(cat Category, width int) {
	start := len(b.categories) - width
	b.categories[start] = cat
	for i := start + 1; i < len(b.categories); i++ {
		b.categories[i] = CategoryNoop
	}
}

// inQuotes reports whether the position just past the end of the buffer lies
// inside quotes. The nearest quote bound walking backward decides: a
// StartQuote means inside, an EndQuote means outside, and no bound at all
// means outside. Escaped quotes do not toggle the state and are skipped.
func (b *buffer) inQuotes() bool {
	for i := len(b.categories) - 1; i >= 0; i-- {
		switch b.categories[i] {
		case CategoryStartQuote:
			return true
		case CategoryEndQuote:
			return false
		}
	}
	return false
}

// reset discards the buffered row, keeping capacity for the next one.
func (b *buffer) reset() {
	b.runes = b.runes[:0]
	b.categories = b.categories[:0]
}
