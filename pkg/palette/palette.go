// Package palette holds the named color tables used to style highlight codes.
//
// A palette maps every highlight code to a background color and an underline
// color. Two palettes are built in, "vibrant" (the default) and "natural".
// Callers can layer extra palettes on top of the built-ins with
// Registry.With, or load them from a YAML file with LoadFile.
//
// Lookups never fail: an unknown palette name resolves to the default
// palette, and a code missing from a palette resolves to the palette's "Y"
// background or "O" underline color.
package palette

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/arthur-debert/hilite/pkg/types"
)

const (
	// Vibrant is the name of the bright, saturated built-in palette
	Vibrant = "vibrant"
	// Natural is the name of the muted, earth-tone built-in palette
	Natural = "natural"

	// DefaultName is used when a palette name is empty or unknown
	DefaultName = Vibrant
)

// Palette is a named pair of code to color mappings.
type Palette struct {
	Name       string                `yaml:"-" json:"name"`
	Background map[types.Code]string `yaml:"background" json:"background"`
	Underline  map[types.Code]string `yaml:"underline" json:"underline"`
}

// Colors is the resolved pair of colors for one code.
type Colors struct {
	Background string
	Underline  string
}

// Lookup resolves both colors for code, applying the fallback rules.
func (p Palette) Lookup(code types.Code) Colors {
	return Colors{
		Background: p.color(types.KindBackground, code),
		Underline:  p.color(types.KindUnderline, code),
	}
}

// Color returns the color of the given kind for code. A code missing from
// the background table falls back to the "Y" entry, and a code missing from
// the underline table falls back to the "O" entry.
func (p Palette) Color(code types.Code, kind types.ColorKind) string {
	return p.color(kind, code)
}

func (p Palette) color(kind types.ColorKind, code types.Code) string {
	table, fallback := p.Background, types.CodeYellow
	if kind == types.KindUnderline {
		table, fallback = p.Underline, types.CodeOrange
	}
	if c := table[code]; c != "" {
		return c
	}
	if c := table[fallback]; c != "" {
		return c
	}
	// An incomplete custom palette may lack the fallback entry too,
	// including one that replaces a built-in name.
	base := builtins.palettes[DefaultName]
	if kind == types.KindUnderline {
		return base.Underline[fallback]
	}
	return base.Background[fallback]
}

// Overlay returns a copy of p with o's colors layered on top. The result
// takes o's name.
func (p Palette) Overlay(o Palette) Palette {
	merged := Palette{
		Name:       o.Name,
		Background: make(map[types.Code]string, len(p.Background)+len(o.Background)),
		Underline:  make(map[types.Code]string, len(p.Underline)+len(o.Underline)),
	}
	for _, layer := range []Palette{p, o} {
		for code, c := range layer.Background {
			merged.Background[code] = c
		}
		for code, c := range layer.Underline {
			merged.Underline[code] = c
		}
	}
	return merged
}

// Complete reports whether the palette defines both colors for every code.
func (p Palette) Complete() bool {
	for _, code := range types.AllCodes {
		if p.Background[code] == "" || p.Underline[code] == "" {
			return false
		}
	}
	return true
}

// Registry is an immutable set of named palettes. The zero value is empty;
// use Default for the built-ins.
type Registry struct {
	palettes map[string]Palette
}

//go:embed palettes.yaml
var embeddedPalettes []byte

var builtins = mustLoadBuiltins()

func mustLoadBuiltins() *Registry {
	ps, err := LoadData(embeddedPalettes)
	if err != nil {
		panic("palette: embedded palettes.yaml is invalid: " + err.Error())
	}
	return NewRegistry(ps...)
}

// Default returns the registry holding the built-in palettes.
func Default() *Registry {
	return builtins
}

// NewRegistry creates a registry from the given palettes. Later palettes
// replace earlier ones with the same name.
func NewRegistry(palettes ...Palette) *Registry {
	r := &Registry{palettes: make(map[string]Palette, len(palettes))}
	for _, p := range palettes {
		p.Name = normalizeName(p.Name)
		r.palettes[p.Name] = p
	}
	return r
}

// With returns a new registry holding r's palettes plus the given ones.
// r itself is left unchanged.
func (r *Registry) With(palettes ...Palette) *Registry {
	all := make([]Palette, 0, r.Len()+len(palettes))
	if r != nil {
		for _, name := range r.Names() {
			all = append(all, r.palettes[name])
		}
	}
	return NewRegistry(append(all, palettes...)...)
}

// Len returns the number of palettes in the registry.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.palettes)
}

// Lookup returns the palette with the given name, if present.
func (r *Registry) Lookup(name string) (Palette, bool) {
	if r == nil {
		return Palette{}, false
	}
	p, ok := r.palettes[normalizeName(name)]
	return p, ok
}

// Has reports whether a palette with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Get returns the named palette, falling back to the default palette when
// the name is unknown.
func (r *Registry) Get(name string) Palette {
	if p, ok := r.Lookup(name); ok {
		return p
	}
	if p, ok := r.Lookup(DefaultName); ok {
		return p
	}
	if r != builtins {
		return builtins.Get(DefaultName)
	}
	return Palette{Name: DefaultName}
}

// Color returns one color of the named palette for code.
func (r *Registry) Color(name string, code types.Code, kind types.ColorKind) string {
	return r.Get(name).Color(code, kind)
}

// Names returns the palette names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a built-in palette by name, defaulting to vibrant.
func Get(name string) Palette {
	return builtins.Get(name)
}

// Color returns a built-in palette color for code.
func Color(name string, code types.Code, kind types.ColorKind) string {
	return builtins.Color(name, code, kind)
}

// Background returns the background color for code in the named built-in palette.
func Background(name string, code types.Code) string {
	return builtins.Color(name, code, types.KindBackground)
}

// Underline returns the underline color for code in the named built-in palette.
func Underline(name string, code types.Code) string {
	return builtins.Color(name, code, types.KindUnderline)
}

// Names returns the built-in palette names.
func Names() []string {
	return builtins.Names()
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
