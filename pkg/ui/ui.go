// Package ui provides a unified interface for rendering highlighted
// documents in different formats: HTML, terminal (ANSI), plain text and
// JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/hilite/pkg/ui/display"
	"github.com/arthur-debert/hilite/pkg/ui/html"
	"github.com/arthur-debert/hilite/pkg/ui/json"
	"github.com/arthur-debert/hilite/pkg/ui/terminal"
	"github.com/arthur-debert/hilite/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderHighlights renders one annotated document
	RenderHighlights(req display.Request) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes get markup
		return NewRenderer(FormatHTML, output)
	case FormatHTML:
		return html.New(output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
