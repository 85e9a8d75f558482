package cli

import (
	"fmt"
	"strings"

	"github.com/GGPrompts/agentinit/internal/agent"
	"github.com/GGPrompts/agentinit/internal/pattern"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <pattern>",
	Short: "Show a pattern's tools, model, and prompt",
	Long: `Print the full definition of a built-in pattern.

Example:
  agentinit show reviewer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := pattern.Lookup(args[0])
		if !ok {
			return fmt.Errorf("pattern %q: %w\nAvailable patterns: %s",
				args[0], agent.ErrUnknownPattern, strings.Join(pattern.Names(), ", "))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Pattern: %s\n", p.Name)
		fmt.Fprintf(out, "Summary: %s\n", p.Summary)
		fmt.Fprintf(out, "Model:   %s\n", p.Model)
		fmt.Fprintf(out, "Tools:   %s\n", strings.Join(p.Tools, ", "))
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Prompt)
		return nil
	},
}
