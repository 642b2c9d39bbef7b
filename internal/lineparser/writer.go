package lineparser

import (
	"fmt"
	"io"
	"strings"
)

// Writer is a line-oriented text sink. The first write error sticks: later
// writes become no-ops and the error is reported from Err and every
// subsequent WriteLineF, so serialization loops can bail out cleanly.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps an io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLineF writes one formatted line, appending a newline.
func (w *Writer) WriteLineF(format string, args ...any) error {
	if w.err != nil {
		return w.err
	}
	if _, err := fmt.Fprintf(w.w, format+"\n", args...); err != nil {
		w.err = fmt.Errorf("writing line: %w", err)
	}
	return w.err
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

// Quote wraps s in quotes if it contains whitespace, a comment marker, or
// is empty, so the token round-trips through Tokenize. A value holding
// both quote characters is written as adjacent quoted runs, which
// Tokenize concatenates back into a single token.
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t#'\"") {
		return s
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, "\"") {
		return "\"" + s + "\""
	}
	var sb strings.Builder
	for i, run := range strings.Split(s, "'") {
		if i > 0 {
			sb.WriteString(`"'"`)
		}
		if run != "" {
			sb.WriteString("'" + run + "'")
		}
	}
	return sb.String()
}
