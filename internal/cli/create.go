package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GGPrompts/agentinit/internal/agent"
	"github.com/GGPrompts/agentinit/internal/config"
	"github.com/GGPrompts/agentinit/internal/manifest"
	"github.com/GGPrompts/agentinit/internal/pattern"
	"github.com/spf13/cobra"
)

var (
	createPath    string
	createPattern string
)

func init() {
	createCmd.Flags().StringVar(&createPath, "path", "", "Directory to create the agent in (default: ~/.claude/agents)")
	createCmd.Flags().StringVar(&createPattern, "pattern", "specialist", "Agent pattern: "+strings.Join(pattern.Names(), ", "))
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new agent from a pattern template",
	Long: `Create a new agent definition file from one of the built-in patterns.

The agent name must be lowercase with hyphens only. An existing agent file
is never overwritten.

Examples:
  agentinit create code-reviewer --pattern reviewer
  agentinit create frontend-dev --path .claude/agents
  agentinit create quick-search --pattern quick`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		dir := createPath
		if dir == "" {
			var err error
			dir, err = config.AgentsDir()
			if err != nil {
				return fmt.Errorf("resolving agents directory: %w", err)
			}
		}

		path, err := agent.Create(name, dir, createPattern)
		if err != nil {
			if errors.Is(err, agent.ErrUnknownPattern) {
				return fmt.Errorf("%w\nAvailable patterns: %s", err, strings.Join(pattern.Names(), ", "))
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created agent: %s\n", path)
		fmt.Fprintf(out, "Pattern: %s\n", createPattern)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintln(out, "  1. Edit the generated file")
		fmt.Fprintln(out, "  2. Update the description to specify when to use this agent")
		fmt.Fprintln(out, "  3. Customize the system prompt for your use case")
		fmt.Fprintln(out, "  4. Adjust tools and model as needed")

		// Self-check the written frontmatter; issues are warnings, not
		// failures, since the file is already on disk.
		if result, valErr := manifest.ValidateFile(path); valErr == nil && !result.Valid {
			fmt.Fprintln(out, "\nWarnings:")
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				fmt.Fprintf(out, "  - %s\n", msg)
			}
		}

		return nil
	},
}
