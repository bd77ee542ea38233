// Package terminal renders highlighted documents as ANSI-styled text.
//
// Each highlight code becomes a lipgloss style built from the palette: a
// background fill, a colored underline, or both. Color support is detected
// by the lipgloss renderer, so the same call degrades to plain text on
// terminals without color.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/arthur-debert/hilite/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
)

// highlightForeground keeps text readable on the light palette backgrounds
var highlightForeground = lipgloss.Color("#1F1F1F")

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer
	styles *lipgloss.Renderer
}

// New creates a terminal renderer that detects the color profile of w
func New(w io.Writer) (*Renderer, error) {
	return NewWithRenderer(w, lipgloss.NewRenderer(w)), nil
}

// NewWithRenderer creates a terminal renderer using an explicit lipgloss
// renderer, which fixes the color profile.
func NewWithRenderer(w io.Writer, styles *lipgloss.Renderer) *Renderer {
	return &Renderer{output: w, styles: styles}
}

// Highlight returns the document with codes rendered as terminal styles.
func (r *Renderer) Highlight(req display.Request) string {
	opts := req.Options()
	if opts.Mode == types.ModeNone {
		return highlight.RenderWith(req.Source, opts)
	}

	registry := req.Registry
	if registry == nil {
		registry = palette.Default()
	}
	p := registry.Get(req.Palette)
	mode := req.EffectiveMode()

	opts.Emitter = highlight.EmitterFunc(func(content string, code types.Code) string {
		return renderLines(r.CodeStyle(p, code, mode), content)
	})
	md := r.markdown()
	opts.Markdown = &md

	return highlight.RenderWith(req.Source, opts)
}

// CodeStyle returns the lipgloss style for one code.
func (r *Renderer) CodeStyle(p palette.Palette, code types.Code, mode types.Mode) lipgloss.Style {
	colors := p.Lookup(code)
	style := r.styles.NewStyle().TabWidth(lipgloss.NoTabConversion)

	switch mode {
	case types.ModeUnderline:
		return style.Underline(true).Foreground(lipgloss.Color(colors.Underline))
	case types.ModeBoth:
		return style.
			Background(lipgloss.Color(colors.Background)).
			Foreground(lipgloss.Color(colors.Underline)).
			Underline(true)
	case types.ModeNone:
		return style
	default:
		return style.
			Background(lipgloss.Color(colors.Background)).
			Foreground(highlightForeground)
	}
}

func (r *Renderer) markdown() highlight.MarkdownStyle {
	base := r.styles.NewStyle().TabWidth(lipgloss.NoTabConversion)
	bold := base.Bold(true)
	italic := base.Italic(true)
	code := base.Foreground(lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#ACA8A4"})

	return highlight.MarkdownStyle{
		Bold:   func(s string) string { return renderLines(bold, s) },
		Italic: func(s string) string { return renderLines(italic, s) },
		Code:   func(s string) string { return renderLines(code, s) },
	}
}

// renderLines styles each line of s on its own. Rendering a multi-line
// block at once would pad every line to the widest one.
func renderLines(style lipgloss.Style, s string) string {
	if !strings.Contains(s, "\n") {
		return style.Render(s)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderHighlights writes the styled document
func (r *Renderer) RenderHighlights(req display.Request) error {
	_, err := fmt.Fprintln(r.output, r.Highlight(req))
	return err
}

// RenderError renders an error in red
func (r *Renderer) RenderError(err error) error {
	style := r.styles.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	_, werr := fmt.Fprintln(r.output, style.Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
