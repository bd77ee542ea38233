package highlight

import (
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
)

// Options controls a RenderWith call. The zero value renders in highlights
// mode with the vibrant palette and HTML markdown.
type Options struct {
	// Mode selects the styling strategy. Empty means types.DefaultMode.
	Mode types.Mode

	// Palette names the palette to color codes with. Unknown names fall
	// back to the default palette.
	Palette string

	// Registry supplies palettes. Nil means the built-in palettes.
	Registry *palette.Registry

	// SkipMarkdown disables the markdown emphasis pass.
	SkipMarkdown bool

	// Markdown overrides the markdown rendering. Nil means HTMLMarkdown.
	Markdown *MarkdownStyle

	// Emitter overrides the span emitter, e.g. to render for a terminal.
	// Nil means a StyleEmitter for Mode and Palette.
	Emitter Emitter
}

// Render converts highlight codes in text to styled HTML using a built-in
// palette. It is the entry point most callers need.
func Render(text string, mode types.Mode, paletteName string) string {
	return RenderWith(text, Options{Mode: mode, Palette: paletteName})
}

// RenderWith converts highlight codes in text according to opts.
//
// In ModeNone the codes are stripped instead: the result equals
// StripCodes(Sanitize(text)) and no markdown is applied.
func RenderWith(text string, opts Options) string {
	mode := opts.Mode
	if mode == "" {
		mode = types.DefaultMode
	}
	if mode == types.ModeNone {
		return StripCodes(Sanitize(text))
	}
	if text == "" {
		return text
	}

	processed, saved := protectFences(text)
	processed = clean(processed)

	if !opts.SkipMarkdown {
		md := HTMLMarkdown
		if opts.Markdown != nil {
			md = *opts.Markdown
		}
		processed = md.apply(processed)
	}

	if !openTagPattern.MatchString(processed) {
		return saved.restore(processed)
	}

	emit := opts.Emitter
	if emit == nil {
		registry := opts.Registry
		if registry == nil {
			registry = palette.Default()
		}
		emit = StyleEmitter{Mode: mode, Palette: registry.Get(opts.Palette)}
	}

	return saved.restore(Resolve(Tokenize(processed), emit))
}
