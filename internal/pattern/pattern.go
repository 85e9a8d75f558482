package pattern

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed templates
var templateFS embed.FS

// Pattern is one built-in agent template: a tool grant, a model tier,
// and a system prompt.
type Pattern struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	Tools   []string `yaml:"tools"`
	Model   string   `yaml:"model"`
	Prompt  string   `yaml:"-"`

	// PromptFile names the prompt body under templates/prompts/.
	PromptFile string `yaml:"prompt"`
}

type manifest struct {
	Patterns []Pattern `yaml:"patterns"`
}

var (
	loadOnce sync.Once
	registry []Pattern
	byName   map[string]int
)

// load parses the embedded manifest and prompt files once. The assets are
// compiled into the binary; failure to parse them is a build defect, so
// load panics rather than returning an error.
func load() {
	loadOnce.Do(func() {
		raw, err := templateFS.ReadFile("templates/patterns.yaml")
		if err != nil {
			panic(fmt.Sprintf("pattern: reading embedded manifest: %v", err))
		}

		var m manifest
		if err := yaml.Unmarshal(raw, &m); err != nil {
			panic(fmt.Sprintf("pattern: parsing embedded manifest: %v", err))
		}

		byName = make(map[string]int, len(m.Patterns))
		for i := range m.Patterns {
			p := &m.Patterns[i]
			body, err := templateFS.ReadFile("templates/prompts/" + p.PromptFile)
			if err != nil {
				panic(fmt.Sprintf("pattern: reading prompt for %q: %v", p.Name, err))
			}
			// Prompt bodies are stored verbatim; the writer owns the
			// trailing newline.
			p.Prompt = strings.TrimRight(string(body), "\n")
			byName[p.Name] = i
		}
		registry = m.Patterns
	})
}

// Lookup returns the pattern registered under name. The match is exact and
// case-sensitive; there is no fallback.
func Lookup(name string) (Pattern, bool) {
	load()
	i, ok := byName[name]
	if !ok {
		return Pattern{}, false
	}
	return registry[i], true
}

// Names returns all pattern names in registry order.
func Names() []string {
	load()
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}

// All returns every registered pattern in registry order.
func All() []Pattern {
	load()
	out := make([]Pattern, len(registry))
	copy(out, registry)
	return out
}
