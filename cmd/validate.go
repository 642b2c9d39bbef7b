package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quenchsim/quench/internal/inputfile"
	"github.com/quenchsim/quench/internal/keywords"
	"github.com/quenchsim/quench/internal/log"
	"github.com/quenchsim/quench/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a keyword input file against a schema",
	Long: `Validate every keyword line in an input file against the keyword schema.

Each problem is reported with its line number, the offending text, and the
reason, so the file can be fixed in an editor.

Examples:
  quench validate input.txt
  quench validate input.txt -s myschema.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		issues, err := validateFile(cmd.Context(), args[0], cfg.SchemaPath)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Println(issue)
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d problem(s) found in %s", len(issues), args[0])
		}
		fmt.Printf("%s: OK\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

var schemaLoader = schema.NewLoader()

// validateFile builds a fresh store from the schema and runs the input
// file through it.
func validateFile(ctx context.Context, inputPath, schemaPath string) ([]inputfile.Issue, error) {
	s, err := schemaLoader.Load(ctx, schemaPath)
	if err != nil {
		return nil, err
	}

	registry := keywords.NewRegistry()
	store, data, err := s.Build(registry)
	if err != nil {
		return nil, fmt.Errorf("building schema %s: %w", schemaPath, err)
	}
	defer store.Close()

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	issues, err := inputfile.Process(f, store, data)
	if err != nil {
		return nil, err
	}
	log.Info(log.CatCLI, "validated", "file", inputPath, "issues", len(issues))
	return issues, nil
}
