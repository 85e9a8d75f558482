package cli

import (
	"fmt"
	"os"

	"github.com/GGPrompts/agentinit/internal/branding"
	"github.com/GGPrompts/agentinit/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates agent definition files (YAML frontmatter plus a
system prompt) from seven built-in patterns: researcher, reviewer, specialist,
builder, quick, orchestrator, and planner.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed here because the root command silences Cobra's own
// error output.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
