// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/ui/display"
	"github.com/arthur-debert/regexkit/pkg/ui/styles"
	"github.com/arthur-debert/regexkit/pkg/ui/text"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles, pterm
// tables and glamour for markdown.
type Renderer struct {
	output io.Writer
	width  int
}

// New creates a new terminal renderer. width wraps markdown; 0 keeps
// glamour's default.
func New(w io.Writer, width int) (*Renderer, error) {
	return &Renderer{output: w, width: width}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.EscapeResult:
		for _, item := range v.Items {
			if _, err := fmt.Fprintf(r.output, "%s %s\n",
				styles.Render("Muted", item.Input+" =>"), styles.Render("Pattern", item.Escaped)); err != nil {
				return err
			}
		}
		return nil
	case *display.CompileResult:
		return r.renderCompile(v)
	case *display.MatchResult:
		return r.renderMatch(v)
	case *display.ExplainResult:
		_, err := io.WriteString(r.output, r.Markdown(v.Markdown))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderCompile(c *display.CompileResult) error {
	title := c.Grammar.Name
	if c.Grammar.ScopeName != "" {
		title += " " + styles.Render("Scope", c.Grammar.ScopeName)
	}
	if _, err := fmt.Fprintln(r.output, styles.Render("Header", title)); err != nil {
		return err
	}

	data := c.TableData()
	for i := 1; i < len(data); i++ {
		data[i][0] = styles.Render("Rule", data[i][0])
		data[i][3] = styles.Render("Pattern", data[i][3])
		data[i][4] = styles.Render("Engine", data[i][4])
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

func (r *Renderer) renderMatch(m *display.MatchResult) error {
	header := styles.Render("Rule", m.Rule)
	if m.Scope != "" {
		header += " " + styles.Render("Scope", m.Scope)
	}
	header += " " + styles.Render("Engine", m.Engine)
	if _, err := fmt.Fprintf(r.output, "%s\n%s\n", header, styles.Render("Pattern", m.Pattern)); err != nil {
		return err
	}

	if !m.Matched {
		_, err := fmt.Fprintf(r.output, "%s\n", styles.Render("NoMatch", "no match"))
		return err
	}
	before, matched, after := m.Segments()
	_, err := fmt.Fprintf(r.output, "%s%s%s  %s\n",
		before, styles.Render("Match", matched), after,
		styles.Render("Muted", fmt.Sprintf("[%d,%d]", m.Start, m.End)))
	return err
}

// Markdown renders markdown with glamour, falling back to the source text.
func (r *Renderer) Markdown(content string) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.width > 0 {
		options = append(options, glamour.WithWordWrap(r.width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	lines := []string{styles.Render("Error", "Error:") + " " + err.Error()}
	for _, line := range text.DetailLines(errors.GetErrorDetails(err)) {
		lines = append(lines, styles.Render("ErrorDetail", line))
	}
	_, werr := fmt.Fprintln(r.output, strings.Join(lines, "\n"))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Success", msg))
	return err
}
