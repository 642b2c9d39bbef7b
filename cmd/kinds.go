package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/quenchsim/quench/internal/keywords"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List all keyword value kinds",
	Long: `List every value kind in the keyword catalogue as JSON.

The display names are stable across versions; files written with one
release parse with the next.

Examples:
  quench kinds
  quench kinds | jq '.[].name'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		type kindInfo struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}
		all := keywords.Kinds()
		out := make([]kindInfo, len(all))
		for i, k := range all {
			out[i] = kindInfo{ID: int(k), Name: k.String()}
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
