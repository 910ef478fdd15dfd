// Test Type: Unit Test
// Description: Tests for turning untyped input into pattern parts

package pattern_test

import (
	"testing"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInto(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  pattern.Part
	}{
		{
			name:  "string_is_literal",
			input: "foo",
			want:  pattern.Literal{Text: "foo"},
		},
		{
			name:  "bracket_fragment_is_char_class",
			input: pattern.Frag("[a-z]"),
			want:  pattern.CharClass{Body: "a-z"},
		},
		{
			name:  "negated_bracket_fragment",
			input: pattern.Frag("[^a-z]"),
			want:  pattern.CharClass{Body: "a-z", Negative: true},
		},
		{
			name:  "other_fragment_is_raw",
			input: pattern.Frag(`\s+`),
			want:  pattern.Raw{Source: `\s+`},
		},
		{
			name:  "modifier_pair",
			input: []any{pattern.Next, "bar"},
			want:  pattern.Modified{Inner: pattern.Literal{Text: "bar"}, Modifier: pattern.Lookahead{}},
		},
		{
			name:  "range_pair",
			input: []any{pattern.Between(1, 3), pattern.Frag("[0-9]")},
			want:  pattern.Modified{Inner: pattern.CharClass{Body: "0-9"}, Modifier: pattern.Range{From: 1, To: 3}},
		},
		{
			name:  "alternation_pair",
			input: []any{pattern.OneOf, []any{"a", "b"}},
			want: pattern.Group{
				Parts: []pattern.Part{pattern.Literal{Text: "a"}, pattern.Literal{Text: "b"}},
				Mode:  pattern.Alternation,
			},
		},
		{
			name:  "alternation_of_strings",
			input: []any{pattern.OneOf, []string{"cat", "dog"}},
			want: pattern.Group{
				Parts: []pattern.Part{pattern.Literal{Text: "cat"}, pattern.Literal{Text: "dog"}},
				Mode:  pattern.Alternation,
			},
		},
		{
			name:  "plain_list_is_concatenation",
			input: []any{"a", pattern.Frag("[0-9]"), "b"},
			want: pattern.Group{
				Parts: []pattern.Part{
					pattern.Literal{Text: "a"},
					pattern.CharClass{Body: "0-9"},
					pattern.Literal{Text: "b"},
				},
				Mode: pattern.Concat,
			},
		},
		{
			name:  "two_strings_are_not_a_pair",
			input: []any{"a", "b"},
			want: pattern.Group{
				Parts: []pattern.Part{pattern.Literal{Text: "a"}, pattern.Literal{Text: "b"}},
				Mode:  pattern.Concat,
			},
		},
		{
			name:  "part_passes_through",
			input: pattern.Raw{Source: "x|y"},
			want:  pattern.Raw{Source: "x|y"},
		},
		{
			name:  "nested_modifier_inside_list",
			input: []any{[]any{pattern.Star, "c"}},
			want: pattern.Group{
				Parts: []pattern.Part{pattern.Modified{Inner: pattern.Literal{Text: "c"}, Modifier: pattern.ZeroOrMore{}}},
				Mode:  pattern.Concat,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pattern.Into(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntoErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
		code  errors.ErrorCode
	}{
		{"unknown_type", 42, errors.ErrInvalidInput},
		{"nil", nil, errors.ErrInvalidInput},
		{"flagged_fragment", pattern.FragWithFlags("[a-z]", pattern.IgnoreCase), errors.ErrUnsupportedFlags},
		{"inverted_range", []any{pattern.Between(3, 1), "a"}, errors.ErrInvalidInput},
		{"negative_range", []any{pattern.Between(-1, 1), "a"}, errors.ErrInvalidInput},
		{"empty_alternation", []any{pattern.OneOf, []any{}}, errors.ErrInvalidInput},
		{"alternation_without_list", []any{pattern.OneOf, "a"}, errors.ErrInvalidInput},
		{"bad_nested_member", []any{"a", []any{pattern.Star, 3.5}}, errors.ErrInvalidInput},
		{"stray_tag", []any{"a", pattern.Star, "b"}, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pattern.Into(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestPatternUnwrapsSingleArgument(t *testing.T) {
	p, err := pattern.Pattern("foo")
	require.NoError(t, err)
	assert.Equal(t, pattern.Literal{Text: "foo"}, p)
	assert.Equal(t, "foo", pattern.Compile(p))

	p, err = pattern.Pattern("foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "(?:foobar)", pattern.Compile(p))
}

func TestSniffCharClass(t *testing.T) {
	tests := []struct {
		source   string
		ok       bool
		body     string
		negative bool
	}{
		{"[a-z]", true, "a-z", false},
		{"[^a-z]", true, "a-z", true},
		{`[\]]`, true, `\]`, false},
		{`[^\s>]`, true, `\s>`, true},
		{"[[:alpha:]_]", true, "[:alpha:]_", false},
		{"[a-zA-Z0-9_.-]", true, "a-zA-Z0-9_.-", false},
		{"[a[b]", true, "a[b", false},
		{"[]", false, "", false},
		{"[^]", false, "", false},
		{"[a-z]|[0-9]", false, "", false},
		{"[a-z]+", false, "", false},
		{`[a\]`, false, "", false},
		{`[^\.]*[\s>]`, false, "", false},
		{"[[:alpha]", false, "", false},
		{"abc", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			class, ok := pattern.SniffCharClass(tt.source)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.body, class.Body)
				assert.Equal(t, tt.negative, class.Negative)
				assert.Equal(t, tt.source, pattern.Compile(class))
			}
		})
	}
}
