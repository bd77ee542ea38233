// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/arthur-debert/hilite/pkg/ui/display"
)

// Renderer provides plain text output with every highlight code stripped
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderHighlights writes the document with codes removed. The requested
// mode is ignored: plain text has no styling to apply.
func (r *Renderer) RenderHighlights(req display.Request) error {
	_, err := fmt.Fprintln(r.output, highlight.Render(req.Source, types.ModeNone, req.Palette))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
