package pattern

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
)

// Part is a node of a pattern tree. The set of implementations is closed:
// Literal, CharClass, Raw, Modified, Group and Repeat.
type Part interface {
	render(b *strings.Builder)
	describe(b *strings.Builder, depth int)
}

// Literal matches Text verbatim.
type Literal struct {
	Text string
}

// CharClass matches one character from Body, or not from Body when
// Negative is set. Body is the inner text of a bracket expression and is
// emitted unchanged.
type CharClass struct {
	Body     string
	Negative bool
}

// Raw is a regex fragment inserted verbatim.
type Raw struct {
	Source string
}

// Modified wraps Inner with a lookahead, negative lookahead or repetition.
type Modified struct {
	Inner    Part
	Modifier Modifier
}

// GroupMode selects how the members of a Group combine.
type GroupMode int

const (
	// Concat matches members in sequence.
	Concat GroupMode = iota
	// Alternation matches one of the members.
	Alternation
)

// OneOf tags an alternation group in untyped input: []any{OneOf, []any{...}}.
const OneOf = Alternation

func (m GroupMode) String() string {
	if m == Alternation {
		return "oneof"
	}
	return "seq"
}

// Group is an ordered sequence of parts.
type Group struct {
	Parts []Part
	Mode  GroupMode
}

// Repeat repeats Inner Count times.
type Repeat struct {
	Inner Part
	Count Count
}

// Modifier is what Modified applies to its inner part: Lookahead,
// NegativeLookahead or a Count.
type Modifier interface {
	apply(b *strings.Builder, inner Part)
	name() string
}

// Count is a repetition quantity: ZeroOrMore, OneOrMore, Optional or Range.
type Count interface {
	Modifier
	suffix() string
}

// Lookahead asserts that the inner part matches next without consuming it.
type Lookahead struct{}

// NegativeLookahead asserts that the inner part does not match next.
type NegativeLookahead struct{}

// ZeroOrMore is the * quantifier.
type ZeroOrMore struct{}

// OneOrMore is the + quantifier.
type OneOrMore struct{}

// Optional is the ? quantifier.
type Optional struct{}

// Range is the closed {From,To} quantifier.
type Range struct {
	From int
	To   int
}

// Tags for untyped input, e.g. []any{Star, "ab"}.
var (
	Next    Modifier = Lookahead{}
	NotNext Modifier = NegativeLookahead{}
	Star    Count    = ZeroOrMore{}
	Plus    Count    = OneOrMore{}
	Opt     Count    = Optional{}
)

// Between returns the {from,to} count.
func Between(from, to int) Count {
	return Range{From: from, To: to}
}

func (Lookahead) apply(b *strings.Builder, inner Part) {
	b.WriteString("(?=")
	inner.render(b)
	b.WriteString(")")
}

func (NegativeLookahead) apply(b *strings.Builder, inner Part) {
	b.WriteString("(?!")
	inner.render(b)
	b.WriteString(")")
}

func (c ZeroOrMore) apply(b *strings.Builder, inner Part) { repeated(b, inner, c) }
func (c OneOrMore) apply(b *strings.Builder, inner Part)  { repeated(b, inner, c) }
func (c Optional) apply(b *strings.Builder, inner Part)   { repeated(b, inner, c) }
func (c Range) apply(b *strings.Builder, inner Part)      { repeated(b, inner, c) }

func (ZeroOrMore) suffix() string { return "*" }
func (OneOrMore) suffix() string  { return "+" }
func (Optional) suffix() string   { return "?" }
func (r Range) suffix() string {
	return "{" + strconv.Itoa(r.From) + "," + strconv.Itoa(r.To) + "}"
}

func (Lookahead) name() string         { return "next" }
func (NegativeLookahead) name() string { return "not next" }
func (ZeroOrMore) name() string        { return "zero or more" }
func (OneOrMore) name() string         { return "one or more" }
func (Optional) name() string          { return "optional" }
func (r Range) name() string {
	return "between " + strconv.Itoa(r.From) + " and " + strconv.Itoa(r.To)
}

// Lit returns a literal part.
func Lit(text string) Part { return Literal{Text: text} }

// Class returns a character class for body, e.g. Class("a-z").
func Class(body string) Part { return CharClass{Body: body} }

// NotClass returns a negated character class.
func NotClass(body string) Part { return CharClass{Body: body, Negative: true} }

// RawFragment returns a part emitting source verbatim.
func RawFragment(source string) Part { return Raw{Source: source} }

// Seq returns a concatenation group.
func Seq(parts ...Part) Part { return Group{Parts: parts, Mode: Concat} }

// Alt returns an alternation group.
func Alt(parts ...Part) Part { return Group{Parts: parts, Mode: Alternation} }

// Ahead wraps p in a lookahead.
func Ahead(p Part) Part { return Modified{Inner: p, Modifier: Lookahead{}} }

// NotAhead wraps p in a negative lookahead.
func NotAhead(p Part) Part { return Modified{Inner: p, Modifier: NegativeLookahead{}} }

// Modify wraps p with m.
func Modify(m Modifier, p Part) Part { return Modified{Inner: p, Modifier: m} }

// Times repeats p.
func Times(c Count, p Part) Part { return Repeat{Inner: p, Count: c} }

// Validate checks the invariants the types cannot express: no nil
// children or modifiers, non-empty alternations, and 0 <= From <= To for
// every Range.
func Validate(p Part) error {
	switch v := p.(type) {
	case nil:
		return errors.New(errors.ErrInvalidInput, "nil part")
	case Modified:
		if v.Modifier == nil {
			return errors.New(errors.ErrInvalidInput, "modified part without modifier")
		}
		if err := validateModifier(v.Modifier); err != nil {
			return err
		}
		return Validate(v.Inner)
	case Repeat:
		if v.Count == nil {
			return errors.New(errors.ErrInvalidInput, "repeat without count")
		}
		if err := validateModifier(v.Count); err != nil {
			return err
		}
		return Validate(v.Inner)
	case Group:
		if v.Mode == Alternation && len(v.Parts) == 0 {
			return errors.New(errors.ErrInvalidInput, "alternation requires at least one member")
		}
		for _, member := range v.Parts {
			if err := Validate(member); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateModifier(m Modifier) error {
	if r, ok := m.(Range); ok {
		if r.From < 0 || r.From > r.To {
			return errors.Newf(errors.ErrInvalidInput, "invalid range {%d,%d}", r.From, r.To).
				WithDetail("from", r.From).
				WithDetail("to", r.To)
		}
	}
	return nil
}
