// Package display holds the data passed from commands to the output
// renderers.
package display

import (
	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
)

// Request describes one document to highlight and how to present it.
type Request struct {
	// Source is the raw annotated text
	Source string `json:"-"`

	// Mode is the styling strategy
	Mode types.Mode `json:"mode"`

	// Palette names the palette in Registry
	Palette string `json:"palette"`

	// Registry supplies palettes; nil means the built-ins
	Registry *palette.Registry `json:"-"`

	// ClassName is set on the HTML container element
	ClassName string `json:"className,omitempty"`

	// Inline wraps HTML output in a span instead of a div
	Inline bool `json:"inline,omitempty"`

	// SkipMarkdown disables the markdown emphasis pass
	SkipMarkdown bool `json:"-"`
}

// Options returns the highlight options for the request.
func (r Request) Options() highlight.Options {
	return highlight.Options{
		Mode:         r.Mode,
		Palette:      r.Palette,
		Registry:     r.Registry,
		SkipMarkdown: r.SkipMarkdown,
	}
}

// PaletteName resolves the palette actually used, after fallback.
func (r Request) PaletteName() string {
	reg := r.Registry
	if reg == nil {
		reg = palette.Default()
	}
	return reg.Get(r.Palette).Name
}

// EffectiveMode resolves an empty mode to the default.
func (r Request) EffectiveMode() types.Mode {
	if r.Mode == "" {
		return types.DefaultMode
	}
	return r.Mode
}

// Result is the machine-readable outcome of highlighting a request.
type Result struct {
	HTML    string       `json:"html"`
	Text    string       `json:"text"`
	Codes   []types.Code `json:"codes"`
	Mode    types.Mode   `json:"mode"`
	Palette string       `json:"palette"`
}

// Resolve highlights the request and collects the result.
func (r Request) Resolve() Result {
	codes := highlight.ExtractCodes(highlight.Sanitize(r.Source))
	if codes == nil {
		codes = []types.Code{}
	}
	return Result{
		HTML:    highlight.RenderWith(r.Source, r.Options()),
		Text:    highlight.Render(r.Source, types.ModeNone, ""),
		Codes:   codes,
		Mode:    r.EffectiveMode(),
		Palette: r.PaletteName(),
	}
}
