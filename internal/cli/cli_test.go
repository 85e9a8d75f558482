package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command with args and returns captured output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables persist across executions; reset to defaults.
	createPath = ""
	createPattern = "specialist"
	listJSON = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCreateCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	out, err := runCommand(t, "create", "code-reviewer", "--path", dir, "--pattern", "reviewer")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	path := filepath.Join(dir, "code-reviewer.md")
	if !strings.Contains(out, "Created agent: "+path) {
		t.Errorf("output missing created path:\n%s", out)
	}
	if !strings.Contains(out, "Pattern: reviewer") {
		t.Errorf("output missing pattern:\n%s", out)
	}
	if !strings.Contains(out, "Next steps:") {
		t.Errorf("output missing next steps:\n%s", out)
	}
	if strings.Contains(out, "Warnings:") {
		t.Errorf("self-check reported warnings:\n%s", out)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	for _, want := range []string{"name: code-reviewer", "model: sonnet", "  - Bash"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("generated file missing %q", want)
		}
	}
}

func TestCreateCommandDuplicate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	if _, err := runCommand(t, "create", "my-agent", "--path", dir); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := runCommand(t, "create", "my-agent", "--path", dir); err == nil {
		t.Fatal("second create should fail on the existing file")
	}
}

func TestCreateCommandUnknownPattern(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	_, err := runCommand(t, "create", "my-agent", "--path", dir, "--pattern", "bogus")
	if err == nil {
		t.Fatal("expected error for unknown pattern")
	}
	if !strings.Contains(err.Error(), "Available patterns: researcher, reviewer, specialist") {
		t.Errorf("error should list valid patterns, got: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "my-agent.md")); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an unknown pattern")
	}
}

func TestCreateCommandInvalidName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCommand(t, "create", "Invalid_Name", "--path", t.TempDir())
	if err == nil {
		t.Fatal("expected error for invalid name")
	}
	if !strings.Contains(err.Error(), "lowercase") {
		t.Errorf("error should explain the name rule, got: %v", err)
	}
}

func TestCreateCommandDefaultsToAgentsDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AGENTINIT_AGENTS_DIR", "")

	if _, err := runCommand(t, "create", "home-agent"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	path := filepath.Join(home, ".claude", "agents", "home-agent.md")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("agent not created at default location %s: %v", path, err)
	}
}

func TestListCommandJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "list", "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("list --json output is not valid JSON: %v\n%s", err, out)
	}
	if len(entries) != 7 {
		t.Errorf("got %d patterns, want 7", len(entries))
	}
	if entries[0].Pattern != "researcher" {
		t.Errorf("first pattern = %q, want researcher", entries[0].Pattern)
	}
}

func TestShowCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "show", "planner")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "Model:   opus") {
		t.Errorf("output missing model:\n%s", out)
	}
	if !strings.Contains(out, "You are a software architect focused on design and planning.") {
		t.Errorf("output missing prompt body:\n%s", out)
	}

	if _, err := runCommand(t, "show", "bogus"); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestValidateCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	out, err := runCommand(t, "create", "valid-agent", "--path", dir, "--pattern", "quick")
	if err != nil {
		t.Fatalf("create failed: %v\n%s", err, out)
	}

	path := filepath.Join(dir, "valid-agent.md")
	if _, err := runCommand(t, "validate", path); err != nil {
		t.Errorf("generated agent should validate cleanly: %v", err)
	}

	// A file with broken frontmatter fails validation.
	bad := filepath.Join(dir, "bad.md")
	badContent := "---\nname: Bad_Name\ndescription: \"x\"\ntools:\n  - Read\nmodel: mega\n---\n\nbody\n"
	if err := os.WriteFile(bad, []byte(badContent), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "validate", bad); err == nil {
		t.Error("invalid agent file should fail validation")
	}
}
