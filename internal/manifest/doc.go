// Package manifest parses generated agent files (YAML frontmatter plus
// prompt body) and validates the frontmatter against an embedded JSON
// Schema. It backs the post-create self-check and the "validate" command.
package manifest
