package lineparser

import (
	"fmt"
	"strconv"
	"strings"
)

// Args wraps the tokens of one parsed line with typed, bounds-checked
// accessors. An index past the end of the token list is reported as an
// error, never a panic, so malformed input surfaces as a parse failure.
type Args struct {
	tokens []string
}

// NewArgs wraps a token slice.
func NewArgs(tokens []string) Args {
	return Args{tokens: tokens}
}

// TokenizeArgs tokenizes a line and wraps the result.
func TokenizeArgs(line string) (Args, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Args{}, err
	}
	return NewArgs(tokens), nil
}

// N returns the number of tokens.
func (a Args) N() int {
	return len(a.tokens)
}

// Has reports whether token index i exists.
func (a Args) Has(i int) bool {
	return i >= 0 && i < len(a.tokens)
}

// S returns token i as a string.
func (a Args) S(i int) (string, error) {
	if !a.Has(i) {
		return "", fmt.Errorf("argument %d requested but only %d given", i, len(a.tokens))
	}
	return a.tokens[i], nil
}

// I returns token i as an integer.
func (a Args) I(i int) (int, error) {
	s, err := a.S(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("argument %d (%q) is not an integer", i, s)
	}
	return v, nil
}

// D returns token i as a double.
func (a Args) D(i int) (float64, error) {
	s, err := a.S(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d (%q) is not a number", i, s)
	}
	return v, nil
}

// B returns token i as a boolean. Accepted spellings (case-insensitive):
// true/false, on/off, yes/no, 1/0.
func (a Args) B(i int) (bool, error) {
	s, err := a.S(i)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("argument %d (%q) is not a boolean", i, s)
}

// Slice returns the tokens from index i onward.
func (a Args) Slice(i int) []string {
	if i >= len(a.tokens) {
		return nil
	}
	return a.tokens[i:]
}
