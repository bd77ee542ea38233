package legend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
)

func TestEntries(t *testing.T) {
	entries := Entries(palette.Get(palette.Vibrant))
	require.Len(t, entries, len(types.AllCodes))

	first := entries[0]
	assert.Equal(t, types.CodeYellow, first.Code)
	assert.Equal(t, types.CodeYellow.Meaning(), first.Meaning)
	assert.Equal(t, palette.Background(palette.Vibrant, types.CodeYellow), first.Background)
	assert.Equal(t, palette.Underline(palette.Vibrant, types.CodeYellow), first.Underline)
}

func TestEntriesUseFallbackColors(t *testing.T) {
	p := palette.Palette{
		Name:       "sparse",
		Background: map[types.Code]string{types.CodeYellow: "#ffff00"},
		Underline:  map[types.Code]string{types.CodeOrange: "#ff8800"},
	}
	for _, e := range Entries(p) {
		assert.Equal(t, "#ffff00", e.Background, e.Code)
		assert.Equal(t, "#ff8800", e.Underline, e.Code)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(palette.Get(palette.Natural))

	assert.True(t, strings.HasPrefix(md, "# Highlight codes (natural)"))
	for _, code := range types.AllCodes {
		assert.Contains(t, md, "| `"+string(code)+"` | "+code.Meaning()+" |")
	}
}

func TestSamples(t *testing.T) {
	out := Samples(palette.Get(palette.Vibrant), types.ModeHighlights)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(types.AllCodes))

	assert.Contains(t, lines[0], "background-color:"+palette.Background(palette.Vibrant, types.CodeYellow))
	assert.Contains(t, lines[0], types.CodeYellow.Meaning())
	assert.NotContains(t, out, "[Y]")

	plain := Samples(palette.Get(palette.Vibrant), types.ModeNone)
	assert.NotContains(t, plain, "<span")
}

func TestRenderers(t *testing.T) {
	md := Markdown(palette.Get(palette.Vibrant))

	assert.Equal(t, md, (&PlainRenderer{}).Render(md))

	rendered := (&GlamourRenderer{Style: "notty", Width: 200}).Render(md)
	assert.Contains(t, rendered, "Highlight codes")
	assert.Contains(t, rendered, types.CodeBlue.Meaning())

	// unknown style files fall back to the raw markdown
	assert.Equal(t, md, (&GlamourRenderer{Style: "/no/such/style.json"}).Render(md))
}
