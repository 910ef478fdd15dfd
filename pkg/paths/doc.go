// Package paths provides centralized path handling for regexkit.
//
// Directories follow the XDG Base Directory specification:
//
//   - config: $XDG_CONFIG_HOME/regexkit, holds config.toml
//   - data:   $XDG_DATA_HOME/regexkit, holds installed grammars
//   - state:  $XDG_STATE_HOME/regexkit, holds the log file
//
// # Environment Variables
//
//   - REGEXKIT_CONFIG_DIR: Override the config directory
//   - REGEXKIT_DATA_DIR: Override the data directory
//   - XDG_CONFIG_HOME, XDG_DATA_HOME, XDG_STATE_HOME: read at call time,
//     so tests can redirect them with t.Setenv
package paths
