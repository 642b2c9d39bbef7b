// Package inputfile processes whole keyword input files: each non-blank
// line is offered to a keyword store, and problems are reported with the
// line number and text so a user can locate and fix them.
package inputfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/keywords"
	"github.com/quenchsim/quench/internal/lineparser"
	"github.com/quenchsim/quench/internal/log"
)

// Issue is one problem found while processing an input file.
type Issue struct {
	Line   int
	Text   string
	Result keywords.ParseResult
	Err    error
}

func (i Issue) String() string {
	switch i.Result {
	case keywords.Unrecognised:
		return fmt.Sprintf("line %d: unrecognised keyword: %s", i.Line, i.Text)
	default:
		return fmt.Sprintf("line %d: %v", i.Line, i.Err)
	}
}

// Process reads r line by line, parsing every keyword line into the store.
// Blank and comment-only lines are skipped. The returned issues cover
// unrecognised keywords and parse failures; a non-nil error means reading
// itself failed.
func Process(r io.Reader, store *keywords.Store, data *coredata.CoreData) ([]Issue, error) {
	var issues []Issue
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		args, err := lineparser.TokenizeArgs(line)
		if err != nil {
			issues = append(issues, Issue{Line: lineNo, Text: strings.TrimSpace(line), Result: keywords.Failed, Err: err})
			continue
		}
		if args.N() == 0 {
			continue
		}

		result, err := store.Parse(args, data)
		switch result {
		case keywords.Success:
			continue
		case keywords.Unrecognised:
			issues = append(issues, Issue{Line: lineNo, Text: strings.TrimSpace(line), Result: result})
		case keywords.Failed:
			issues = append(issues, Issue{Line: lineNo, Text: strings.TrimSpace(line), Result: result, Err: err})
		}
	}
	if err := scanner.Err(); err != nil {
		return issues, fmt.Errorf("reading input: %w", err)
	}

	log.Debug(log.CatKeywords, "input processed", "lines", lineNo, "issues", len(issues))
	return issues, nil
}

// Format writes the canonical rendering of every set keyword in the store,
// one line each with the given prefix.
func Format(store *keywords.Store, w io.Writer, prefix string) error {
	lw := lineparser.NewWriter(w)
	return store.Write(lw, prefix)
}
