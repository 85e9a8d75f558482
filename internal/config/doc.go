// Package config manages user-level settings stored at ~/.agentinit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the agents_dir override for the default output directory.
package config
