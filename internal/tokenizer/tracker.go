package tokenizer

// SignalTracker is an incremental matcher for one signal token. Fed one
// character at a time, it reports whether the most recently fed characters
// exactly complete the token. Comparison is by code point, case-sensitive,
// with no normalization.
//
// A Tokenizer runs three independent trackers, one per signal, all fed the
// same characters in the same order.
type SignalTracker struct {
	target []rune
	recent []rune // sliding window of the last len(target) runes fed
}

// NewSignalTracker creates a tracker for the given token.
// The token must be non-empty; Signals.Validate enforces that upstream.
func NewSignalTracker(token string) *SignalTracker {
	target := []rune(token)
	return &SignalTracker{
		target: target,
		recent: make([]rune, 0, len(target)),
	}
}

// Feed consumes one character and reports whether the target token has just
// been completed ending at this character.
func (t *SignalTracker) Feed(r rune) bool {
	if len(t.recent) == len(t.target) {
		copy(t.recent, t.recent[1:])
		t.recent[len(t.recent)-1] = r
	} else {
		t.recent = append(t.recent, r)
	}

	if len(t.recent) < len(t.target) {
		return false
	}
	for i, want := range t.target {
		if t.recent[i] != want {
			return false
		}
	}
	return true
}

// Reset clears any partial-match progress. The Tokenizer calls it on every
// tracker whenever any tracker fires and at each row boundary, so one
// character run is never counted toward two overlapping token occurrences.
func (t *SignalTracker) Reset() {
	t.recent = t.recent[:0]
}
