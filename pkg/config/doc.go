// Package config handles configuration management for regexkit.
// Settings are layered from the embedded defaults, an optional TOML file,
// REGEXKIT_* environment variables and command-line overrides.
package config
