package grammar

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/regexkit/pkg/pattern"
)

// Explain returns a markdown document describing the named rules, or every
// rule when names is empty. Each rule lists its compiled source and the
// outline of its pattern tree.
func (c *Compiled) Explain(names ...string) (string, error) {
	if len(names) == 0 {
		for _, r := range c.Rules {
			names = append(names, r.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", c.Grammar.Name)
	if c.Grammar.ScopeName != "" {
		fmt.Fprintf(&b, "\nScope `%s`\n", c.Grammar.ScopeName)
	}

	for _, name := range names {
		r, err := c.Rule(name)
		if err != nil {
			return "", err
		}
		part, err := c.Grammar.RulePart(name)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "\n## %s\n\n", r.Name)
		if r.Scope != "" {
			fmt.Fprintf(&b, "Scope `%s`, ", r.Scope)
		}
		fmt.Fprintf(&b, "engine %s\n\n", r.Opening().Engine())
		if r.Match != nil {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", r.Match.String())
		} else {
			fmt.Fprintf(&b, "```\nbegin %s\nend   %s\n```\n\n", r.Begin.String(), r.End.String())
		}
		b.WriteString(pattern.Describe(part))
		if len(r.Contains) > 0 {
			fmt.Fprintf(&b, "\nContains: %s\n", strings.Join(r.Contains, ", "))
		}
	}
	return b.String(), nil
}
