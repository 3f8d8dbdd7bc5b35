package gcode

import (
	"strconv"
	"strings"

	"github.com/ztrue/tracerr"
)

// ParseSnippet lexes a short, user-authored G-code fragment (a machine
// config's tool-on/tool-off/begin/end sequence) into this package's Token
// vocabulary, so Machine can store and replay it. A line beginning with ";"
// is a full-line comment; a parenthesized run is an inline comment;
// everything else is split into letter+value words.
func ParseSnippet(text string) ([]Token, error) {
	var tokens []Token
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ";") {
			tokens = append(tokens, NewComment(strings.TrimSpace(line[1:])))
			continue
		}

		for len(line) > 0 {
			if line[0] == '(' {
				end := strings.IndexByte(line, ')')
				if end < 0 {
					return nil, tracerr.Errorf("gcode: unterminated inline comment on line %d: %q", lineNo+1, line)
				}
				tokens = append(tokens, NewInlineComment(line[1:end]))
				line = strings.TrimSpace(line[end+1:])
				continue
			}

			word, rest, found := strings.Cut(line, " ")
			if !found {
				word, rest = line, ""
			}
			tok, err := parseWord(word)
			if err != nil {
				return nil, tracerr.Errorf("gcode: line %d: %w", lineNo+1, err)
			}
			tokens = append(tokens, tok)
			line = strings.TrimSpace(rest)
		}
	}
	return tokens, nil
}

// parseWord parses a single G-code word like "G0", "X10.5", or "F300" into
// a Token.
func parseWord(word string) (Token, error) {
	if word == "" {
		return Token{}, tracerr.Errorf("gcode: empty word")
	}
	letter := word[:1]
	if !isLetter(letter[0]) {
		return Token{}, tracerr.Errorf("gcode: word %q does not start with a letter", word)
	}
	rest := word[1:]
	if rest == "" {
		return Word(letter), nil
	}
	value, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return Token{}, tracerr.Errorf("gcode: word %q has a non-numeric value: %w", word, err)
	}
	return Field(letter, value), nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
