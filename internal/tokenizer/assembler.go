package tokenizer

import "strings"

// assemble reconstructs the ordered column strings of one finished row from
// its raw characters and their categories. The two slices have equal length
// and correspond position by position.
//
// The walk keeps a single inQuotes flag: a delimiter or newline seen inside
// quotes is literal column content, outside quotes the delimiter closes the
// current column. The in-progress column is always closed at the end, so a
// row of k delimiters yields k+1 columns and an empty row yields exactly one
// empty column.
func assemble(runes []rune, categories []Category, signals Signals) []string {
	columns := make([]string, 0, 8)
	var column strings.Builder
	inQuotes := false

	for i, cat := range categories {
		switch cat {
		case CategoryChar:
			column.WriteRune(runes[i])
		case CategoryDelimiter:
			if inQuotes {
				column.WriteString(signals.Delimiter)
			} else {
				columns = append(columns, column.String())
				column.Reset()
			}
		case CategoryStartQuote:
			inQuotes = true
		case CategoryEndQuote:
			inQuotes = false
		case CategoryEscapedQuote:
			// Doubled quote unfolds to one literal quote token.
			column.WriteString(signals.Quote)
		case CategoryNewline:
			// Only reachable inside quotes: an unquoted newline already
			// ended the row before assembly.
			if inQuotes {
				column.WriteString(signals.NewLine)
			}
		case CategoryNoop:
			// Alignment filler for multi-character tokens.
		}
	}

	return append(columns, column.String())
}
