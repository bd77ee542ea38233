package config

import (
	"sort"
	"strings"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/arthur-debert/hilite/pkg/ui"
)

// Config is the effective hilite configuration
type Config struct {
	Render       RenderConfig             `koanf:"render" toml:"render"`
	Output       OutputConfig             `koanf:"output" toml:"output"`
	PalettesFile string                   `koanf:"palettes_file" toml:"palettes_file"`
	Palettes     map[string]PaletteConfig `koanf:"palettes" toml:"palettes,omitempty"`

	registry *palette.Registry
	sources  []string
}

// RenderConfig controls how codes are turned into styled markup
type RenderConfig struct {
	Mode     types.Mode `koanf:"mode" toml:"mode"`
	Palette  string     `koanf:"palette" toml:"palette"`
	Markdown bool       `koanf:"markdown" toml:"markdown"`
}

// OutputConfig controls how rendered output is written
type OutputConfig struct {
	Format ui.Format `koanf:"format" toml:"format"`
	Class  string    `koanf:"class" toml:"class"`
	Inline bool      `koanf:"inline" toml:"inline"`
}

// PaletteConfig is an inline palette declared in a config file. Keys are
// highlight codes, values hex colors.
type PaletteConfig struct {
	Background map[string]string `koanf:"background" toml:"background,omitempty"`
	Underline  map[string]string `koanf:"underline" toml:"underline,omitempty"`
}

// Registry returns the palettes available under this configuration: the
// built-ins, then palettes_file, then inline palettes.
func (c *Config) Registry() *palette.Registry {
	if c == nil || c.registry == nil {
		return palette.Default()
	}
	return c.registry
}

// Sources lists the config files that contributed to this configuration,
// in load order.
func (c *Config) Sources() []string {
	return c.sources
}

// Validate checks that the mode is known and that the selected palette
// exists in the registry.
func (c *Config) Validate() error {
	if !c.Render.Mode.Valid() {
		return errors.Newf(errors.ErrModeInvalid, "invalid render mode %q", c.Render.Mode).
			WithDetail("valid", types.AllModes)
	}

	name := c.Render.Palette
	if name != "" && !c.Registry().Has(name) {
		return errors.Newf(errors.ErrPaletteNotFound, "unknown palette %q", name).
			WithDetail("palette", name).
			WithDetail("available", c.Registry().Names())
	}
	return nil
}

// inlinePalettes converts the [palettes.*] tables into validated palettes,
// sorted by name.
func (c *Config) inlinePalettes() ([]palette.Palette, error) {
	names := make([]string, 0, len(c.Palettes))
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]palette.Palette, 0, len(names))
	for _, name := range names {
		p, err := c.Palettes[name].toPalette(name)
		if err != nil {
			return nil, err
		}
		if err := palette.Validate(p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func (pc PaletteConfig) toPalette(name string) (palette.Palette, error) {
	p := palette.Palette{
		Name:       strings.ToLower(strings.TrimSpace(name)),
		Background: make(map[types.Code]string, len(pc.Background)),
		Underline:  make(map[types.Code]string, len(pc.Underline)),
	}

	for _, table := range []struct {
		src map[string]string
		dst map[types.Code]string
	}{
		{pc.Background, p.Background},
		{pc.Underline, p.Underline},
	} {
		for key, value := range table.src {
			code, err := types.ParseCode(strings.ToUpper(key))
			if err != nil {
				return palette.Palette{}, errors.Wrapf(err, errors.ErrPaletteInvalid, "palette %s", name).
					WithDetail("palette", name).
					WithDetail("code", key)
			}
			table.dst[code] = strings.TrimSpace(value)
		}
	}
	return p, nil
}
