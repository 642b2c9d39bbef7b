package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quenchsim/quench/internal/log"
	"github.com/quenchsim/quench/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-validate a keyword input file whenever it changes",
	Long: `Watch an input file (and its schema) and re-run validation whenever
either changes. Useful alongside an editor session on a large input file.

Examples:
  quench watch input.txt
  quench watch input.txt -s myschema.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		report := func() {
			issues, err := validateFile(cmd.Context(), inputPath, cfg.SchemaPath)
			if err != nil {
				fmt.Println("Error:", err)
				return
			}
			if len(issues) == 0 {
				fmt.Printf("%s: OK\n", inputPath)
				return
			}
			for _, issue := range issues {
				fmt.Println(issue)
			}
		}

		wcfg := watcher.DefaultConfig(inputPath, cfg.SchemaPath)
		if cfg.WatchDebounce > 0 {
			wcfg.DebounceDur = cfg.WatchDebounce
		}
		w, err := watcher.New(wcfg)
		if err != nil {
			return err
		}
		changes, err := w.Start()
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		log.Info(log.CatWatcher, "watching", "input", inputPath, "schema", cfg.SchemaPath)
		report()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		for {
			select {
			case <-changes:
				report()
			case <-interrupt:
				return nil
			case <-cmd.Context().Done():
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
