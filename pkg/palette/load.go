package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a palette file:
//
//	palettes:
//	  ocean:
//	    background: {Y: "#E0F7FA", B: "#B2EBF2"}
//	    underline:  {Y: "#00838F"}
type File struct {
	Palettes map[string]Palette `yaml:"palettes"`
}

// LoadData parses palettes from YAML data. Every palette is validated; the
// result is sorted by name.
func LoadData(data []byte) ([]Palette, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrPaletteInvalid, "failed to parse palettes data")
	}

	names := make([]string, 0, len(f.Palettes))
	for name := range f.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	palettes := make([]Palette, 0, len(names))
	for _, name := range names {
		p := f.Palettes[name]
		p.Name = normalizeName(name)
		p.Background = normalizeCodes(p.Background)
		p.Underline = normalizeCodes(p.Underline)
		if err := Validate(p); err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}

// normalizeCodes upper-cases code keys so "y" and "Y" name the same code,
// matching inline palettes from the config file.
func normalizeCodes(colors map[types.Code]string) map[types.Code]string {
	if colors == nil {
		return nil
	}
	out := make(map[types.Code]string, len(colors))
	for code, value := range colors {
		out[types.Code(strings.ToUpper(strings.TrimSpace(string(code))))] = strings.TrimSpace(value)
	}
	return out
}

// LoadFile reads a palette file from fs.
func LoadFile(fs afero.Fs, path string) ([]Palette, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read palettes file %s", path).
			WithDetail("path", path)
	}
	palettes, err := LoadData(data)
	if err != nil {
		if hErr, ok := err.(*errors.HiliteError); ok {
			return nil, hErr.WithDetail("path", path)
		}
		return nil, err
	}
	return palettes, nil
}

// Validate checks that a palette has a name, only uses valid codes, and
// that every color it defines is a hex color. Palettes may be incomplete;
// missing codes resolve through the fallback colors.
func Validate(p Palette) error {
	if normalizeName(p.Name) == "" {
		return errors.New(errors.ErrPaletteInvalid, "palette has no name")
	}
	if len(p.Background) == 0 && len(p.Underline) == 0 {
		return errors.Newf(errors.ErrPaletteInvalid, "palette %s defines no colors", p.Name).
			WithDetail("palette", p.Name)
	}

	for _, table := range []struct {
		kind   types.ColorKind
		colors map[types.Code]string
	}{
		{types.KindBackground, p.Background},
		{types.KindUnderline, p.Underline},
	} {
		for code, value := range table.colors {
			if !code.Valid() {
				return errors.Newf(errors.ErrPaletteInvalid, "palette %s: unknown highlight code %q", p.Name, code).
					WithDetail("palette", p.Name).
					WithDetail("kind", string(table.kind))
			}
			if _, err := colorful.Hex(value); err != nil {
				return errors.Wrapf(err, errors.ErrColorInvalid, "palette %s: %s color for %s", p.Name, table.kind, code).
					WithDetails(map[string]interface{}{
						"palette": p.Name,
						"code":    string(code),
						"kind":    string(table.kind),
						"value":   value,
					})
			}
		}
	}
	return nil
}

// String renders a short description, used in logs.
func (p Palette) String() string {
	return fmt.Sprintf("%s (%d background, %d underline)", p.Name, len(p.Background), len(p.Underline))
}
