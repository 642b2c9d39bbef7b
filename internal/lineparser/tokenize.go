// Package lineparser tokenizes and writes the whitespace-delimited line
// format used by simulation input and restart files.
package lineparser

import (
	"fmt"
	"strings"
)

// Tokenize splits a single line into argument tokens.
// Tokens are separated by spaces or tabs. Single or double quotes group a
// token containing whitespace (the quotes themselves are stripped). An
// unquoted '#' starts a comment running to the end of the line.
func Tokenize(line string) ([]string, error) {
	tokens := []string{}
	var current strings.Builder
	inToken := false
	quote := byte(0)

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteByte(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
			inToken = true
		case ch == '#':
			flush()
			return tokens, nil
		case ch == ' ' || ch == '\t':
			flush()
		case ch == '\n' || ch == '\r':
			flush()
			return tokens, nil
		default:
			current.WriteByte(ch)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %q quote in line %q", string(quote), strings.TrimRight(line, "\r\n"))
	}
	flush()
	return tokens, nil
}
