// Test Type: Unit Test
// Description: Tests for literal escaping and the template composer

package pattern_test

import (
	"testing"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"dot_and_star", "a.b*c", `a\.b\*c`},
		{"all_metacharacters", `.*+?^${}()|[]\`, `\.\*\+\?\^\$\{\}\(\)\|\[\]\\`},
		{"unicode_untouched", "héllo-wörld", "héllo-wörld"},
		{"dash_and_slash_untouched", "a-b/c", "a-b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pattern.Escape(tt.input))
		})
	}
}

func TestEscapedLiteralMatchesOnlyItself(t *testing.T) {
	inputs := []string{
		"",
		"a.b*c",
		"{{#if}}",
		"(x|y)",
		"[a-z]+",
		"$100.00^2",
		`C:\path\to`,
		"...attributes",
		"ünïcödé?",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			re, err := pattern.CompileRegexp("^" + pattern.Compile(pattern.Lit(s)) + "$")
			require.NoError(t, err)
			assert.True(t, re.MatchString(s))
			assert.False(t, re.MatchString(s+"x"))
		})
	}

	re, err := pattern.Build("a.b*c")
	require.NoError(t, err)
	assert.True(t, re.MatchString("a.b*c"))
	assert.False(t, re.MatchString("axbxxxc"))
	assert.False(t, re.MatchString("abbbc"))
}

func TestCompose(t *testing.T) {
	t.Run("escapes_strings_and_keeps_fragments", func(t *testing.T) {
		f, err := pattern.Compose([]string{"@", `\s*`, ""}, "a.b", pattern.Frag(`[a-z]+`))
		require.NoError(t, err)
		assert.Equal(t, `@a\.b\s*[a-z]+`, f.Source)
		assert.Zero(t, f.Flags)
	})

	t.Run("compiles_parts", func(t *testing.T) {
		f, err := pattern.Compose([]string{"x", ""}, pattern.Modify(pattern.Star, pattern.Lit("ab")))
		require.NoError(t, err)
		assert.Equal(t, "x(?:ab)*", f.Source)
	})

	t.Run("leftover_segments_are_appended", func(t *testing.T) {
		f, err := pattern.Compose([]string{"a", "b", "c"}, "+")
		require.NoError(t, err)
		assert.Equal(t, `a\+bc`, f.Source)
	})

	t.Run("too_few_segments", func(t *testing.T) {
		_, err := pattern.Compose([]string{"a"}, "x", "y")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("no_segment_after_last_argument", func(t *testing.T) {
		_, err := pattern.Compose([]string{"a"}, "x")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		_, err = pattern.Compose(nil, "x")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("flagged_fragment_rejected", func(t *testing.T) {
		f, err := pattern.Compose([]string{"a", ""}, pattern.FragWithFlags("b", pattern.IgnoreCase))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedFlags))
		assert.Equal(t, pattern.Fragment{}, f)
		assert.Equal(t, "i", errors.GetErrorDetails(err)["flags"])
	})

	t.Run("flagged_regexp_rejected", func(t *testing.T) {
		re, err := pattern.NewBuilder(pattern.WithFlags(pattern.Multiline)).Add("b").Finalize()
		require.NoError(t, err)
		_, err = pattern.Compose([]string{"a", ""}, re)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedFlags))
	})

	t.Run("unflagged_regexp_inserted", func(t *testing.T) {
		re := pattern.MustBuild("b", []any{pattern.Plus, "c"})
		f, err := pattern.Compose([]string{"a", ""}, re)
		require.NoError(t, err)
		assert.Equal(t, "ab(?:c)+", f.Source)
	})

	t.Run("unsupported_argument", func(t *testing.T) {
		_, err := pattern.Compose([]string{"a", ""}, 42)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"single_placeholder", "@%s", []any{"this.name"}, `@this\.name`},
		{"percent_escape", `\d+%%`, nil, `\d+%`},
		{"fragment_and_string", `%s\s*%s`, []any{pattern.Frag(`[=]`), "{{"}, `[=]\s*\{\{`},
		{"other_verbs_kept", `%d%s`, []any{"x"}, `%dx`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := pattern.Format(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Source)
		})
	}

	t.Run("argument_count_mismatch", func(t *testing.T) {
		_, err := pattern.Format("%s%s", "a")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("must_format_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			pattern.MustFormat("%s", pattern.FragWithFlags("x", pattern.DotAll))
		})
	})
}

func TestParseFlags(t *testing.T) {
	f, err := pattern.ParseFlags("si")
	require.NoError(t, err)
	assert.Equal(t, pattern.IgnoreCase|pattern.DotAll, f)
	assert.Equal(t, "is", f.String())

	_, err = pattern.ParseFlags("ix")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
