package pattern

import (
	"fmt"
	"strings"
)

// Compile renders p as regex source. Groups are always wrapped in a
// non-capturing group; Builder output omits the wrapper at the top level.
//
// p must pass Validate. Compile panics on an invalid tree such as a nil
// child; Into, Builder and Compose validate before they get here.
func Compile(p Part) string {
	if err := Validate(p); err != nil {
		panic("pattern: Compile: " + err.Error())
	}
	var b strings.Builder
	p.render(&b)
	return b.String()
}

func (l Literal) render(b *strings.Builder) {
	b.WriteString(Escape(l.Text))
}

func (r Raw) render(b *strings.Builder) {
	b.WriteString(r.Source)
}

func (c CharClass) render(b *strings.Builder) {
	b.WriteByte('[')
	if c.Negative {
		b.WriteByte('^')
	}
	b.WriteString(c.Body)
	b.WriteByte(']')
}

func (m Modified) render(b *strings.Builder) {
	m.Modifier.apply(b, m.Inner)
}

func (g Group) render(b *strings.Builder) {
	b.WriteString("(?:")
	for i, p := range g.Parts {
		if i > 0 && g.Mode == Alternation {
			b.WriteByte('|')
		}
		p.render(b)
	}
	b.WriteByte(')')
}

func (r Repeat) render(b *strings.Builder) {
	repeated(b, r.Inner, r.Count)
}

// repeated applies a quantifier. A character class is already a single
// atom; anything else is grouped first so the quantifier covers all of it.
func repeated(b *strings.Builder, inner Part, c Count) {
	if _, ok := inner.(CharClass); ok {
		inner.render(b)
	} else {
		b.WriteString("(?:")
		inner.render(b)
		b.WriteByte(')')
	}
	b.WriteString(c.suffix())
}

// Describe returns a markdown outline of p, one list item per node.
func Describe(p Part) string {
	var b strings.Builder
	p.describe(&b, 0)
	return b.String()
}

func item(b *strings.Builder, depth int, format string, args ...any) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("- ")
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

func (l Literal) describe(b *strings.Builder, depth int) {
	item(b, depth, "literal `%s`", l.Text)
}

func (r Raw) describe(b *strings.Builder, depth int) {
	item(b, depth, "regex `%s`", r.Source)
}

func (c CharClass) describe(b *strings.Builder, depth int) {
	if c.Negative {
		item(b, depth, "any character except `%s`", c.Body)
		return
	}
	item(b, depth, "one of `%s`", c.Body)
}

func (m Modified) describe(b *strings.Builder, depth int) {
	item(b, depth, "%s", m.Modifier.name())
	m.Inner.describe(b, depth+1)
}

func (g Group) describe(b *strings.Builder, depth int) {
	if g.Mode == Alternation {
		item(b, depth, "one of")
	} else {
		item(b, depth, "sequence")
	}
	for _, p := range g.Parts {
		p.describe(b, depth+1)
	}
}

func (r Repeat) describe(b *strings.Builder, depth int) {
	item(b, depth, "repeat %s", r.Count.name())
	r.Inner.describe(b, depth+1)
}
