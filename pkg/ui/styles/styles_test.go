package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{"Header", "Error", "Muted", "Code", "Meaning"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, defaultRegistry.Has(name))
		})
	}

	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("Meaning").GetItalic())
	assert.Equal(t, 1, GetStyle("Header").GetMarginBottom())
}

func TestRenderFor(t *testing.T) {
	var buf bytes.Buffer
	plain := lipgloss.NewRenderer(&buf)
	assert.Equal(t, "Y", RenderFor(plain, "Code", "Y"), "non-terminal output is unstyled")

	colored := lipgloss.NewRenderer(&buf)
	colored.SetColorProfile(termenv.TrueColor)
	out := RenderFor(colored, "Code", "Y")
	assert.NotEqual(t, "Y", out)
	assert.Contains(t, out, "Y")
}

func TestUnknownStyleIsPlain(t *testing.T) {
	style := GetStyle("Nope")
	assert.False(t, style.GetBold())
	assert.Equal(t, "text", style.Render("text"))
}

func TestLoad(t *testing.T) {
	r, err := Load([]byte(`
colors:
  red:
    light: "#ff0000"
    dark: "#ee0000"
styles:
  Alert:
    bold: true
    underline: true
    foreground: red
    background: missing
`))
	require.NoError(t, err)

	style := r.Get("Alert")
	assert.True(t, style.GetBold())
	assert.True(t, style.GetUnderline())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ee0000"}, style.GetForeground())
	assert.Equal(t, lipgloss.NoColor{}, style.GetBackground(), "unknown colors are ignored")

	_, err = Load([]byte("styles: [nope"))
	assert.Error(t, err)
}
