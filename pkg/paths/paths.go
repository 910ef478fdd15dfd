package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// EnvConfigDir overrides the config directory
	EnvConfigDir = "REGEXKIT_CONFIG_DIR"

	// EnvDataDir overrides the data directory
	EnvDataDir = "REGEXKIT_DATA_DIR"
)

const (
	// AppDirName is the directory name under each XDG base
	AppDirName = "regexkit"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// GrammarsDir holds installed grammars under the data directory
	GrammarsDir = "grammars"

	// LogFileName is the log file under the state directory
	LogFileName = "regexkit.log"
)

// Paths resolves regexkit's XDG directories.
type Paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

// New resolves the directories from the current environment.
func New() Paths {
	return Paths{
		configDir: resolve(EnvConfigDir, "XDG_CONFIG_HOME", xdg.ConfigHome),
		dataDir:   resolve(EnvDataDir, "XDG_DATA_HOME", xdg.DataHome),
		stateDir:  resolve("", "XDG_STATE_HOME", xdg.StateHome),
	}
}

// resolve prefers the app override, then the XDG variable, then the
// platform default from xdg.
func resolve(override, xdgEnv, fallback string) string {
	if override != "" {
		if dir := os.Getenv(override); dir != "" {
			return ExpandHome(dir)
		}
	}
	if base := os.Getenv(xdgEnv); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(fallback, AppDirName)
}

// ConfigDir returns the config directory.
func (p Paths) ConfigDir() string { return p.configDir }

// ConfigFile returns the default user config file.
func (p Paths) ConfigFile() string { return filepath.Join(p.configDir, ConfigFileName) }

// DataDir returns the data directory.
func (p Paths) DataDir() string { return p.dataDir }

// GrammarsDir returns the directory of installed grammars.
func (p Paths) GrammarsDir() string { return filepath.Join(p.dataDir, GrammarsDir) }

// StateDir returns the state directory.
func (p Paths) StateDir() string { return p.stateDir }

// LogFilePath returns the path to the log file
func (p Paths) LogFilePath() string { return filepath.Join(p.stateDir, LogFileName) }

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
