// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.EscapeResult:
		for _, item := range v.Items {
			if _, err := fmt.Fprintln(r.output, item.Escaped); err != nil {
				return err
			}
		}
		return nil
	case *display.CompileResult:
		table, err := Table(v.TableData())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.output, pterm.RemoveColorFromString(table))
		return err
	case *display.MatchResult:
		return r.renderMatch(v)
	case *display.ExplainResult:
		_, err := io.WriteString(r.output, v.Markdown)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderMatch(m *display.MatchResult) error {
	if _, err := fmt.Fprintf(r.output, "rule %s (%s) engine %s\npattern %s\n",
		m.Rule, m.Scope, m.Engine, m.Pattern); err != nil {
		return err
	}
	if !m.Matched {
		_, err := fmt.Fprintln(r.output, "no match")
		return err
	}
	_, err := fmt.Fprintf(r.output, "match [%d,%d] %q\n", m.Start, m.End, m.Text)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "Error: %v\n", err); werr != nil {
		return werr
	}
	for _, line := range DetailLines(errors.GetErrorDetails(err)) {
		if _, werr := fmt.Fprintf(r.output, "  %s\n", line); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Table renders data with a header row using pterm.
func Table(data [][]string) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// DetailLines formats error details as sorted "key: value" lines.
func DetailLines(details map[string]interface{}) []string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s: %v", k, details[k])
	}
	return lines
}
