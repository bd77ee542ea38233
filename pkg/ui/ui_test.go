package ui_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	hlerrors "github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/arthur-debert/hilite/pkg/ui"
	"github.com/arthur-debert/hilite/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{"create html renderer", ui.FormatHTML, false},
		{"create terminal renderer", ui.FormatTerminal, false},
		{"create text renderer", ui.FormatText, false},
		{"create json renderer", ui.FormatJSON, false},
		{"create auto renderer with buffer", ui.FormatAuto, false},
		{"invalid format", ui.Format(999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestAutoRendererWithBufferWritesHTML(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatAuto, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderHighlights(display.Request{Source: "[Y]x[/Y]", ClassName: "out"}))
	assert.Contains(t, buf.String(), `<div class="out"><span style="background-color:#FFF4C3;`)
}

func TestHTMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatHTML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderHighlights(display.Request{Source: "[B]a[/B]", Inline: true, Mode: types.ModeUnderline}))
	require.NoError(t, renderer.RenderMessage("a < b"))
	require.NoError(t, renderer.RenderError(errors.New("bad -> worse")))

	want := `<span><span style="text-decoration:underline #5DCFFF;text-decoration-thickness:2px;text-underline-offset:2px;text-decoration-skip-ink:none">a</span></span>` + "\n" +
		"<p>a &lt; b</p>\n" +
		"<!-- error: bad -&gt; worse -->\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderHighlights(display.Request{Source: "[Y]key[/Y] point [R]orphan", Mode: types.ModeBoth}))
	assert.Equal(t, "key point orphan\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	req := display.Request{Source: "[Y]a[/Y] [L]42[/L] [P]orphan", Palette: "Natural"}
	require.NoError(t, renderer.RenderHighlights(req))

	var result display.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, []types.Code{types.CodeYellow, types.CodeLightBlue}, result.Codes)
	assert.Equal(t, types.ModeHighlights, result.Mode)
	assert.Equal(t, palette.Natural, result.Palette)
	assert.Equal(t, "a 42 orphan", result.Text)
	assert.Contains(t, result.HTML, "#F5F0E8")
	assert.NotContains(t, buf.String(), `\u003c`, "markup is not HTML-escaped")
}

func TestJSONRendererError(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderError(hlerrors.New(hlerrors.ErrPaletteNotFound, "no palette")))

	var obj map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
	assert.Equal(t, "PALETTE_NOT_FOUND", obj["code"])
	assert.Equal(t, "[PALETTE_NOT_FOUND] no palette", obj["error"])
}

func TestRendererInterface(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatHTML, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			var _ ui.Renderer = renderer
			assert.NoError(t, renderer.RenderHighlights(display.Request{Source: "[O]step[/O]"}))
			assert.NotEmpty(t, buf.String())
		})
	}
}
