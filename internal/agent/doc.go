// Package agent generates agent definition files from the built-in pattern
// registry. It powers the "agentinit create" command: validate the name,
// render frontmatter plus prompt body, and write the file with an exclusive
// create so existing agents are never overwritten.
package agent
