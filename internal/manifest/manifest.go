package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// AgentManifest holds the frontmatter fields of a generated agent file.
type AgentManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tools       []string `yaml:"tools" json:"tools"`
	Model       string   `yaml:"model" json:"model"`
}

// Parse reads an agent file and returns its frontmatter and prompt body.
func Parse(path string) (*AgentManifest, string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, "", err
	}
	m, body, err := ParseBytes(data)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, body, nil
}

// ParseBytes splits raw agent file content into frontmatter and body and
// decodes the frontmatter. The body is returned with the blank line after
// the closing delimiter removed.
func ParseBytes(data []byte) (*AgentManifest, string, error) {
	front, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, "", err
	}

	var m AgentManifest
	if err := yaml.Unmarshal(front, &m); err != nil {
		return nil, "", fmt.Errorf("decoding frontmatter: %w", err)
	}
	return &m, body, nil
}

// splitFrontmatter separates the block between the two "---" delimiters
// from the prose body that follows.
func splitFrontmatter(data []byte) ([]byte, string, error) {
	s := string(data)
	if !strings.HasPrefix(s, "---\n") {
		return nil, "", fmt.Errorf("missing frontmatter delimiter")
	}
	rest := s[len("---\n"):]

	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return nil, "", fmt.Errorf("unterminated frontmatter")
	}

	front := rest[:end+1]
	body := strings.TrimPrefix(rest[end+len("\n---\n"):], "\n")
	return []byte(front), body, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
