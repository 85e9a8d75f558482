package cli

import (
	"fmt"

	"github.com/GGPrompts/agentinit/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an agent file's frontmatter",
	Long: `Parse an agent definition file and check its frontmatter against the
agent schema (name pattern, description, tools list, model tier).

Example:
  agentinit validate ~/.claude/agents/code-reviewer.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", msg)
		}
		return fmt.Errorf("%s is invalid (%d issue(s))", path, len(result.Issues))
	},
}
