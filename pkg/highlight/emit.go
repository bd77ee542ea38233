package highlight

import (
	"fmt"

	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
)

const (
	underlineStyle = "text-decoration:underline %s;text-decoration-thickness:2px;text-underline-offset:2px;text-decoration-skip-ink:none"
	boxStyle       = "padding:1px 3px 0 3px;border-radius:3px"
)

// StyleEmitter wraps content in an inline-styled span for one mode and
// palette.
type StyleEmitter struct {
	Mode    types.Mode
	Palette palette.Palette
}

// Emit implements Emitter.
func (e StyleEmitter) Emit(content string, code types.Code) string {
	return wrap(content, code, e.Mode, e.Palette)
}

// wrap returns content inside a span styled for mode. ModeNone and unknown
// modes return content unchanged.
func wrap(content string, code types.Code, mode types.Mode, p palette.Palette) string {
	colors := p.Lookup(code)

	var style string
	switch mode {
	case types.ModeUnderline:
		style = fmt.Sprintf(underlineStyle, colors.Underline)
	case types.ModeHighlights:
		style = "background-color:" + colors.Background + ";" + boxStyle + ";display:inline"
	case types.ModeBoth:
		style = "background-color:" + colors.Background + ";" + fmt.Sprintf(underlineStyle, colors.Underline) + ";" + boxStyle
	default:
		return content
	}
	return `<span style="` + style + `">` + content + "</span>"
}
