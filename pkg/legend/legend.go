// Package legend describes the highlight codes: what each one means and
// how the active palette colors it. The legend is produced as markdown for
// terminals (rendered with glamour) or as highlighted HTML samples.
package legend

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
)

// Entry is one row of the legend.
type Entry struct {
	Code       types.Code `json:"code"`
	Meaning    string     `json:"meaning"`
	Background string     `json:"background"`
	Underline  string     `json:"underline"`
}

// Entries lists every code in canonical order with its colors in p.
func Entries(p palette.Palette) []Entry {
	entries := make([]Entry, 0, len(types.AllCodes))
	for _, code := range types.AllCodes {
		colors := p.Lookup(code)
		entries = append(entries, Entry{
			Code:       code,
			Meaning:    code.Meaning(),
			Background: colors.Background,
			Underline:  colors.Underline,
		})
	}
	return entries
}

// Markdown returns the legend for p as a markdown document.
func Markdown(p palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Highlight codes (%s)\n\n", p.Name)
	b.WriteString("Wrap text in a code's tags to mark it, e.g. `[Y]key point[/Y]`.\n\n")
	b.WriteString("| Code | Meaning | Background | Underline |\n")
	b.WriteString("|------|---------|------------|-----------|\n")
	for _, e := range Entries(p) {
		fmt.Fprintf(&b, "| `%s` | %s | `%s` | `%s` |\n", e.Code, e.Meaning, e.Background, e.Underline)
	}
	return b.String()
}

// Samples returns each code's meaning highlighted with its own code, one
// rendered fragment per line.
func Samples(p palette.Palette, mode types.Mode) string {
	registry := palette.Default().With(p)
	lines := make([]string, 0, len(types.AllCodes))
	for _, code := range types.AllCodes {
		sample := code.OpenTag() + code.Meaning() + code.CloseTag()
		rendered := highlight.RenderWith(sample, highlight.Options{
			Mode:         mode,
			Palette:      p.Name,
			Registry:     registry,
			SkipMarkdown: true,
		})
		lines = append(lines, fmt.Sprintf("<div>%s %s</div>", code, rendered))
	}
	return strings.Join(lines, "\n")
}
