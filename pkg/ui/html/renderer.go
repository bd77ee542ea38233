// Package html writes highlighted documents as HTML fragments
package html

import (
	"fmt"
	"html"
	"io"

	"github.com/arthur-debert/hilite/pkg/ui/container"
	"github.com/arthur-debert/hilite/pkg/ui/display"
)

// Renderer writes each document wrapped in its container element
type Renderer struct {
	output io.Writer
}

// New creates a new HTML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderHighlights writes the container markup for req
func (r *Renderer) RenderHighlights(req display.Request) error {
	props := container.Props{
		Content:      req.Source,
		Mode:         req.Mode,
		Palette:      req.Palette,
		Registry:     req.Registry,
		ClassName:    req.ClassName,
		SkipMarkdown: req.SkipMarkdown,
	}

	markup := container.Block(props)
	if req.Inline {
		markup = container.Inline(props)
	}
	_, err := fmt.Fprintln(r.output, markup)
	return err
}

// RenderError renders an error as an HTML comment
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "<!-- error: %s -->\n", html.EscapeString(err.Error()))
	return werr
}

// RenderMessage renders a simple message as a paragraph
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "<p>%s</p>\n", html.EscapeString(msg))
	return err
}
