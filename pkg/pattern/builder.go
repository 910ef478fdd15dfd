package pattern

import (
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/logging"
)

// Builder accumulates parts and finalizes them into one Regexp. A Builder
// is single use: once Finalize has been called, Add and Finalize report
// ErrBuilderFinalized. It is not safe for concurrent use.
type Builder struct {
	parts []Part
	opts  options
	err   error
	done  bool
}

// NewBuilder returns an empty builder.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: newOptions(opts)}
}

// Add normalizes vs with Pattern and appends the result. The first error
// is kept and returned by Finalize; later calls are ignored.
func (b *Builder) Add(vs ...any) *Builder {
	if b.done {
		b.err = finalizedError()
		return b
	}
	if b.err != nil || len(vs) == 0 {
		return b
	}
	p, err := Pattern(vs...)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = append(b.parts, p)
	return b
}

// Err returns the first error recorded by Add.
func (b *Builder) Err() error {
	return b.err
}

// Source compiles the accumulated parts without finalizing. Top-level
// parts are concatenated with no enclosing group.
func (b *Builder) Source() (string, error) {
	if b.done {
		return "", finalizedError()
	}
	if b.err != nil {
		return "", b.err
	}
	var sb strings.Builder
	for _, p := range b.parts {
		if err := Validate(p); err != nil {
			return "", err
		}
		p.render(&sb)
	}
	return sb.String(), nil
}

// Finalize compiles the pattern and spends the builder.
func (b *Builder) Finalize() (*Regexp, error) {
	logger := logging.GetLogger("pattern")
	done := logging.LogOperationStart(logger, "finalize")
	defer done()

	source, err := b.Source()
	b.done = true
	b.parts = nil
	if err != nil {
		return nil, err
	}
	return compileRegexp(source, b.opts)
}

func finalizedError() error {
	return errors.New(errors.ErrBuilderFinalized, "builder already finalized")
}

// Build adds each value as its own part and finalizes.
func Build(vs ...any) (*Regexp, error) {
	b := NewBuilder()
	for _, v := range vs {
		b.Add(v)
	}
	return b.Finalize()
}

// MustBuild is like Build but panics on error. It is meant for
// package-level pattern variables.
func MustBuild(vs ...any) *Regexp {
	re, err := Build(vs...)
	if err != nil {
		panic("pattern: Build: " + err.Error())
	}
	return re
}
