package agent

import (
	"strings"

	"github.com/GGPrompts/agentinit/internal/pattern"
)

// Render formats a full agent definition: YAML frontmatter followed by the
// pattern's prompt body. The layout is fixed (field order, two-space list
// indent, one blank line before the body, trailing newline), so it is built
// by hand rather than through a YAML encoder.
func Render(name string, p pattern.Pattern) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("name: " + name + "\n")
	b.WriteString("description: \"TODO: Describe when to use this agent\"\n")
	b.WriteString("tools:\n")
	for _, tool := range p.Tools {
		b.WriteString("  - " + tool + "\n")
	}
	b.WriteString("model: " + p.Model + "\n")
	b.WriteString("---\n\n")
	b.WriteString(p.Prompt)
	b.WriteString("\n")
	return b.String()
}
