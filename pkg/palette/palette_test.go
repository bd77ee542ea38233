package palette_test

import (
	"testing"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPalettes(t *testing.T) {
	assert.Equal(t, []string{"natural", "vibrant"}, palette.Names())

	for _, name := range palette.Names() {
		p := palette.Get(name)
		assert.Equal(t, name, p.Name)
		assert.True(t, p.Complete(), "built-in palette %s must cover every code", name)
		require.NoError(t, palette.Validate(p))
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"vibrant", "vibrant"},
		{"natural", "natural"},
		{"Natural ", "natural"},
		{"", "vibrant"},
		{"neon", "vibrant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, palette.Get(tt.name).Name)
		})
	}
}

func TestColors(t *testing.T) {
	assert.Equal(t, "#FFF4C3", palette.Background("vibrant", types.CodeYellow))
	assert.Equal(t, "#FFC41A", palette.Underline("vibrant", types.CodeYellow))
	assert.Equal(t, "#2C5F6F", palette.Underline("natural", types.CodeBlue))
	assert.Equal(t, "#f5e8dd", palette.Color("vibrant", types.CodeBrown, types.KindBackground))
	assert.Equal(t, "#E8E6E5", palette.Background("unknown", types.CodeGray))
}

func TestColorFallback(t *testing.T) {
	sparse := palette.Palette{
		Name:       "sparse",
		Background: map[types.Code]string{types.CodeYellow: "#111111", types.CodeBlue: "#222222"},
		Underline:  map[types.Code]string{types.CodeOrange: "#333333"},
	}
	reg := palette.Default().With(sparse)

	t.Run("present entries are used", func(t *testing.T) {
		assert.Equal(t, "#222222", reg.Color("sparse", types.CodeBlue, types.KindBackground))
		assert.Equal(t, "#333333", reg.Color("sparse", types.CodeOrange, types.KindUnderline))
	})

	t.Run("background falls back to Y", func(t *testing.T) {
		assert.Equal(t, "#111111", reg.Color("sparse", types.CodeRed, types.KindBackground))
	})

	t.Run("underline falls back to O", func(t *testing.T) {
		assert.Equal(t, "#333333", reg.Color("sparse", types.CodeRed, types.KindUnderline))
	})

	t.Run("missing fallback entry uses the default palette", func(t *testing.T) {
		bare := palette.Palette{Name: "bare", Underline: map[types.Code]string{types.CodeGreen: "#444444"}}
		colors := palette.NewRegistry(bare).Get("bare").Lookup(types.CodeRed)
		assert.Equal(t, "#FFF4C3", colors.Background)
		assert.Equal(t, "#FF7744", colors.Underline)
	})
}

func TestColorFallbackReplacedBuiltin(t *testing.T) {
	// A custom palette reusing a built-in name replaces it wholesale.
	partial := palette.Palette{Name: "vibrant", Background: map[types.Code]string{types.CodeBlue: "#000000"}}
	reg := palette.Default().With(partial)

	assert.Equal(t, "#000000", reg.Color("vibrant", types.CodeBlue, types.KindBackground))
	assert.Equal(t, "#FFF4C3", reg.Color("vibrant", types.CodeRed, types.KindBackground))
	assert.Equal(t, "#FF7744", reg.Color("vibrant", types.CodeRed, types.KindUnderline))
}

func TestOverlay(t *testing.T) {
	base := palette.Default().Get("natural")
	merged := base.Overlay(palette.Palette{
		Name:       "natural",
		Background: map[types.Code]string{types.CodeBlue: "#000000"},
	})

	assert.Equal(t, "natural", merged.Name)
	assert.Equal(t, "#000000", merged.Background[types.CodeBlue])
	assert.Equal(t, base.Background[types.CodeGreen], merged.Background[types.CodeGreen])
	assert.Equal(t, base.Underline[types.CodeRed], merged.Underline[types.CodeRed])
	assert.NotEqual(t, "#000000", base.Background[types.CodeBlue], "base palette is not modified")
	assert.True(t, merged.Complete())
}

func TestRegistryWith(t *testing.T) {
	base := palette.Default()
	ocean := palette.Palette{Name: "Ocean", Background: map[types.Code]string{types.CodeYellow: "#E0F7FA"}}

	extended := base.With(ocean)

	assert.Equal(t, 2, base.Len(), "base registry is unchanged")
	assert.Equal(t, 3, extended.Len())
	assert.True(t, extended.Has("ocean"))
	assert.False(t, base.Has("ocean"))
	assert.Equal(t, []string{"natural", "ocean", "vibrant"}, extended.Names())
}

func TestRegistryWithoutDefault(t *testing.T) {
	reg := palette.NewRegistry(palette.Palette{Name: "solo", Background: map[types.Code]string{types.CodeYellow: "#000000"}})
	assert.Equal(t, "vibrant", reg.Get("missing").Name, "falls back to the built-in default")

	var nilReg *palette.Registry
	assert.Equal(t, 0, nilReg.Len())
	assert.False(t, nilReg.Has("vibrant"))
}

func TestLoadData(t *testing.T) {
	data := []byte(`
palettes:
  Ocean:
    background:
      Y: "#E0F7FA"
      B: "#B2EBF2"
    underline:
      O: "#00838F"
`)
	ps, err := palette.LoadData(data)
	require.NoError(t, err)
	require.Len(t, ps, 1)

	assert.Equal(t, "ocean", ps[0].Name)
	assert.Equal(t, "#B2EBF2", ps[0].Background[types.CodeBlue])
	assert.False(t, ps[0].Complete())
}

func TestLoadDataLowercaseCodes(t *testing.T) {
	data := []byte(`
palettes:
  mono:
    background:
      y: "#EEEEEE"
      " b ": "#DDDDDD"
    underline:
      o: "#222222"
`)
	ps, err := palette.LoadData(data)
	require.NoError(t, err)
	require.Len(t, ps, 1)

	assert.Equal(t, "#EEEEEE", ps[0].Background[types.CodeYellow])
	assert.Equal(t, "#DDDDDD", ps[0].Background[types.CodeBlue])
	assert.Equal(t, "#222222", ps[0].Underline[types.CodeOrange])
}

func TestLoadDataErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.ErrorCode
	}{
		{"malformed yaml", "palettes: [", errors.ErrPaletteInvalid},
		{"unknown code", "palettes:\n  x:\n    background:\n      Z: \"#000000\"\n", errors.ErrPaletteInvalid},
		{"bad color", "palettes:\n  x:\n    underline:\n      Y: \"yellowish\"\n", errors.ErrColorInvalid},
		{"no colors", "palettes:\n  x: {}\n", errors.ErrPaletteInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := palette.LoadData([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/palettes.yaml", []byte("palettes:\n  mono:\n    background:\n      Y: \"#EEEEEE\"\n"), 0644))

	ps, err := palette.LoadFile(fs, "/cfg/palettes.yaml")
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "mono", ps[0].Name)

	_, err = palette.LoadFile(fs, "/cfg/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.Equal(t, "/cfg/missing.yaml", errors.GetErrorDetails(err)["path"])
}
