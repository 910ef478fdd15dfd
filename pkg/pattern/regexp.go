package pattern

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/logging"
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Engine names the matcher a Regexp is compiled with.
type Engine string

const (
	// EngineAuto compiles with regexp2 and falls back to coregex only for
	// RE2 syntax regexp2 rejects.
	EngineAuto Engine = "auto"
	// EngineCoregex is the RE2-compatible coregex engine. It has no
	// lookaround and is only used when asked for explicitly.
	EngineCoregex Engine = "coregex"
	// EngineRegexp2 is the backtracking regexp2 engine. It understands the
	// full emitted dialect, lookaheads included.
	EngineRegexp2 Engine = "regexp2"
)

// ParseEngine parses an engine name; "" means EngineAuto.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(s)); e {
	case "", EngineAuto:
		return EngineAuto, nil
	case EngineCoregex, EngineRegexp2:
		return e, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown engine: %s", s)
	}
}

// Regexp is a finalized pattern compiled by one engine. It is safe for
// concurrent use.
type Regexp struct {
	source string
	flags  Flags
	engine Engine
	core   *coregex.Regex
	pcre   *regexp2.Regexp
}

// Compile-time options for a Regexp.
type options struct {
	flags   Flags
	engine  Engine
	timeout time.Duration
}

// Option configures how a pattern is finalized.
type Option func(*options)

// WithFlags applies flags to the final pattern.
func WithFlags(f Flags) Option {
	return func(o *options) { o.flags = f }
}

// WithEngine selects the engine. The default is EngineAuto.
func WithEngine(e Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithMatchTimeout bounds a single regexp2 match. Zero means no limit.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func newOptions(opts []Option) options {
	o := options{engine: EngineAuto}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CompileRegexp compiles source text with the given options.
func CompileRegexp(source string, opts ...Option) (*Regexp, error) {
	return compileRegexp(source, newOptions(opts))
}

func compileRegexp(source string, o options) (*Regexp, error) {
	logger := logging.GetLogger("pattern")
	re := &Regexp{source: source, flags: o.flags}

	switch o.engine {
	case EngineCoregex:
		core, err := coregex.Compile(inlineFlags(o.flags) + source)
		if err != nil {
			return nil, compileError(err, source, EngineCoregex)
		}
		re.core, re.engine = core, EngineCoregex
	case EngineRegexp2:
		pcre, err := compileRegexp2(source, o)
		if err != nil {
			return nil, compileError(err, source, EngineRegexp2)
		}
		re.pcre, re.engine = pcre, EngineRegexp2
	case EngineAuto, "":
		pcre, err := compileRegexp2(source, o)
		if err == nil {
			re.pcre, re.engine = pcre, EngineRegexp2
			break
		}
		logger.Trace().Err(err).Str("source", source).Msg("regexp2 rejected pattern, trying coregex")
		core, coreErr := coregex.Compile(inlineFlags(o.flags) + source)
		if coreErr != nil {
			return nil, compileError(err, source, EngineRegexp2)
		}
		re.core, re.engine = core, EngineCoregex
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown engine: %s", o.engine)
	}

	logger.Debug().Str("source", source).Str("engine", string(re.engine)).Msg("Pattern compiled")
	return re, nil
}

func compileRegexp2(source string, o options) (*regexp2.Regexp, error) {
	opt := regexp2.None
	if o.flags&IgnoreCase != 0 {
		opt |= regexp2.IgnoreCase
	}
	if o.flags&Multiline != 0 {
		opt |= regexp2.Multiline
	}
	if o.flags&DotAll != 0 {
		opt |= regexp2.Singleline
	}
	re, err := regexp2.Compile(source, opt)
	if err != nil {
		return nil, err
	}
	if o.timeout > 0 {
		re.MatchTimeout = o.timeout
	}
	return re, nil
}

func inlineFlags(f Flags) string {
	if f == 0 {
		return ""
	}
	return "(?" + f.String() + ")"
}

func compileError(err error, source string, engine Engine) error {
	return errors.Wrapf(err, errors.ErrPatternCompile, "%s cannot compile pattern", engine).
		WithDetail("source", source)
}

// MustCompileRegexp is like CompileRegexp but panics on error.
func MustCompileRegexp(source string, opts ...Option) *Regexp {
	re, err := CompileRegexp(source, opts...)
	if err != nil {
		panic("pattern: CompileRegexp(`" + source + "`): " + err.Error())
	}
	return re
}

// String returns the pattern source without flags.
func (r *Regexp) String() string {
	return r.source
}

// Flags returns the flags the pattern was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// Engine returns the engine that compiled the pattern.
func (r *Regexp) Engine() Engine {
	return r.engine
}

// Fragment returns the source and flags as a Fragment.
func (r *Regexp) Fragment() Fragment {
	return Fragment{Source: r.source, Flags: r.flags}
}

// MatchString reports whether s contains a match. A regexp2 timeout counts
// as no match.
func (r *Regexp) MatchString(s string) bool {
	return r.FindStringIndex(s) != nil
}

// FindStringIndex returns the byte offsets of the leftmost match in s, or
// nil when there is none.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}
	m, err := r.pcre.FindStringMatch(s)
	if err != nil {
		logger := logging.GetLogger("pattern")
		logger.Debug().Err(err).Str("source", r.source).Msg("Match aborted")
		return nil
	}
	if m == nil {
		return nil
	}
	// regexp2 reports rune offsets
	start := byteOffset(s, m.Index)
	end := start + byteOffset(s[start:], m.Length)
	return []int{start, end}
}

// MatchLength returns the length in bytes of the leftmost match, or -1.
func (r *Regexp) MatchLength(s string) int {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[1] - loc[0]
}

func byteOffset(s string, runes int) int {
	offset := 0
	for i := 0; i < runes && offset < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}
