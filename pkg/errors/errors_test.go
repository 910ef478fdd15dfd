// Test Type: Unit Test
// Description: Tests for coded error creation, wrapping and lookup helpers

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unsupported_flags",
			code:    errors.ErrUnsupportedFlags,
			message: "fragment carries flags i",
			wantStr: "[UNSUPPORTED_FLAGS] fragment carries flags i",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "cannot normalize int",
			wantStr: "[INVALID_INPUT] cannot normalize int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "range {%d,%d} is inverted", 5, 2)
	assert.Equal(t, "range {5,2} is inverted", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPatternCompile, "engine rejected pattern")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrPatternCompile, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[PATTERN_COMPILE] engine rejected pattern: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnsupportedFlags, "flagged fragment").
		WithDetail("flags", "im").
		WithDetail("source", "abc")

	assert.Equal(t, "im", err.Details["flags"])
	assert.Equal(t, "abc", errors.GetErrorDetails(err)["source"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnsupportedFlags, "error 1")
	err2 := errors.New(errors.ErrUnsupportedFlags, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrRuleNotFound, "no rule"),
			code:     errors.ErrRuleNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrRuleNotFound, "no rule"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrGrammarInvalid, errors.GetErrorCode(errors.New(errors.ErrGrammarInvalid, "bad")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read grammar")
	loadErr := errors.Wrap(fileErr, errors.ErrGrammarLoad, "failed to load grammar")

	assert.True(t, errors.IsErrorCode(loadErr, errors.ErrGrammarLoad))

	var middle *errors.Error
	require.True(t, stderrors.As(loadErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileAccess, middle.Code)

	assert.True(t, stderrors.Is(loadErr, rootCause))
}
