package gcode

import (
	"fmt"
	"strings"
)

// isLineStarter reports whether letters begins a new G-code line, the same
// "G" or "M" check the original pipeline's formatter used to decide when to
// break a line.
func isLineStarter(letters string) bool {
	return letters == "G" || letters == "M"
}

// Format renders a token sequence to deterministic G-code text: one G/M
// command per line with its trailing fields space-separated, inline
// comments folded onto the current line, line comments on their own
// ";"-prefixed line.
func Format(tokens []Token) []byte {
	var b strings.Builder
	precededByNewline := true

	for _, t := range tokens {
		switch t.Kind {
		case FieldTok:
			if !precededByNewline {
				if isLineStarter(t.Letters) {
					b.WriteByte('\n')
				} else {
					b.WriteByte(' ')
				}
			}
			if t.HasValue {
				fmt.Fprintf(&b, "%s%s", t.Letters, formatValue(t.Value))
			} else {
				b.WriteString(t.Letters)
			}
			precededByNewline = false
		case CommentTok:
			if t.Inline {
				fmt.Fprintf(&b, "(%s)", t.Text)
				precededByNewline = false
			} else {
				if !precededByNewline {
					b.WriteByte('\n')
				}
				fmt.Fprintf(&b, ";%s\n", t.Text)
				precededByNewline = true
			}
		}
	}
	if !precededByNewline {
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// formatValue renders a field value with a fixed, deterministic precision
// -- enough for machine positioning without the noise of float64's full
// decimal expansion.
func formatValue(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}
