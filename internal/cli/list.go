package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/GGPrompts/agentinit/internal/pattern"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available agent patterns",
	Long:  `List the built-in agent patterns with their model tier and tool grants.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one pattern for display.
type listEntry struct {
	Pattern string   `json:"pattern"`
	Model   string   `json:"model"`
	Tools   []string `json:"tools"`
	Summary string   `json:"summary"`
}

func runList(cmd *cobra.Command, args []string) error {
	var entries []listEntry
	for _, p := range pattern.All() {
		entries = append(entries, listEntry{
			Pattern: p.Name,
			Model:   p.Model,
			Tools:   p.Tools,
			Summary: p.Summary,
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tMODEL\tTOOLS\tSUMMARY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Pattern, e.Model, strings.Join(e.Tools, ","), e.Summary)
	}
	return w.Flush()
}
