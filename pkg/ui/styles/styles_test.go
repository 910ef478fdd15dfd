package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{
		"Header", "Rule", "Scope", "Pattern", "Engine",
		"Match", "NoMatch", "Muted", "Success", "Error", "ErrorDetail",
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := styles.StyleRegistry[name]
			assert.True(t, ok, "style %s should be registered", name)
		})
	}

	assert.True(t, styles.GetStyle("Rule").GetBold())
	assert.True(t, styles.GetStyle("Match").GetUnderline())
	assert.True(t, styles.GetStyle("Scope").GetItalic())
}

func TestGetStyleUnknown(t *testing.T) {
	style := styles.GetStyle("DoesNotExist")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStyles(t *testing.T) {
	original := styles.StyleRegistry
	defer func() { styles.StyleRegistry = original }()

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  pink: {light: "#ff00ff", dark: "#ff88ff"}
styles:
  Loud: {bold: true, foreground: pink}
`), 0644))

	require.NoError(t, styles.LoadStyles(path))
	assert.True(t, styles.GetStyle("Loud").GetBold())
	_, ok := styles.StyleRegistry["Header"]
	assert.False(t, ok)

	err := styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	err = styles.LoadStylesFromData([]byte("styles: ["))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
