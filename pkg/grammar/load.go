package grammar

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileFormat is the syntax of a grammar file.
type FileFormat string

const (
	// FormatYAML is used for .yaml and .yml files.
	FormatYAML FileFormat = "yaml"
	// FormatTOML is used for .toml files.
	FormatTOML FileFormat = "toml"
)

// Extensions tried by Find, in order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// FormatForPath picks the file format from the extension.
func FormatForPath(path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrGrammarLoad, "unknown grammar file type: %s", path)
	}
}

// Load reads and validates a grammar file.
func Load(path string) (*Grammar, error) {
	logger := logging.GetLogger("grammar")

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read grammar %s", path)
	}

	g, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGrammarLoad, "failed to load grammar %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Str("grammar", g.Name).Int("rules", len(g.Rules)).Msg("Grammar loaded")
	return g, nil
}

// Parse decodes and validates grammar data.
func Parse(data []byte, format FileFormat) (*Grammar, error) {
	var g Grammar
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrap(err, errors.ErrGrammarInvalid, "invalid YAML")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrap(err, errors.ErrGrammarInvalid, "invalid TOML")
		}
	default:
		return nil, errors.Newf(errors.ErrGrammarLoad, "unknown grammar format: %s", format)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Find resolves a grammar argument. An existing path is returned as is;
// otherwise name plus each of Extensions is looked up in dirs.
func Find(name string, dirs []string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	for _, dir := range dirs {
		for _, ext := range Extensions {
			candidate := filepath.Join(dir, name+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", errors.Newf(errors.ErrNotFound, "grammar %s not found", name).
		WithDetail("searched", dirs)
}
