package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/quenchsim/quench/internal/inputfile"
	"github.com/quenchsim/quench/internal/keywords"
)

var (
	fmtWrite    bool
	fmtShowDiff bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a keyword input file in canonical form",
	Long: `Parse a keyword input file and rewrite it canonically: declared keyword
casing, two-space name/argument separation, quoting only where needed,
comments and unset keywords dropped.

The file must validate cleanly first; a file with problems is left alone.

Examples:
  quench fmt input.txt            # print canonical form to stdout
  quench fmt input.txt --diff     # show what would change
  quench fmt input.txt -w         # rewrite the file in place`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		s, err := schemaLoader.Load(cmd.Context(), cfg.SchemaPath)
		if err != nil {
			return err
		}
		registry := keywords.NewRegistry()
		store, data, err := s.Build(registry)
		if err != nil {
			return fmt.Errorf("building schema %s: %w", cfg.SchemaPath, err)
		}
		defer store.Close()

		original, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}

		issues, err := inputfile.Process(bytes.NewReader(original), store, data)
		if err != nil {
			return err
		}
		if len(issues) > 0 {
			for _, issue := range issues {
				fmt.Println(issue)
			}
			return fmt.Errorf("%s has %d problem(s); fix them before formatting", inputPath, len(issues))
		}

		var formatted bytes.Buffer
		if err := inputfile.Format(store, &formatted, ""); err != nil {
			return err
		}

		switch {
		case fmtShowDiff:
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(original), formatted.String(), false)
			if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
				fmt.Printf("%s: no changes\n", inputPath)
				return nil
			}
			fmt.Print(dmp.DiffPrettyText(diffs))
		case fmtWrite:
			if err := os.WriteFile(inputPath, formatted.Bytes(), 0644); err != nil {
				return fmt.Errorf("rewriting %s: %w", inputPath, err)
			}
		default:
			fmt.Print(formatted.String())
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"rewrite the file in place instead of printing")
	fmtCmd.Flags().BoolVar(&fmtShowDiff, "diff", false,
		"show the difference between the file and its canonical form")
	rootCmd.AddCommand(fmtCmd)
}
