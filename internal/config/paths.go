package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GGPrompts/agentinit/internal/branding"
)

// KeyAgentsDir is the config key overriding the default agents directory.
const KeyAgentsDir = "agents_dir"

// AgentsDir returns the directory agent files are written to by default.
// It checks the AGENTINIT_AGENTS_DIR environment variable first, then the
// agents_dir config key, then falls back to ~/.claude/agents.
func AgentsDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("AGENTS_DIR")); v != "" {
		return v, nil
	}
	if v := Get(KeyAgentsDir); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, filepath.FromSlash(branding.AgentsDir())), nil
}
