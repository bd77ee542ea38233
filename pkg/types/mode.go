package types

import (
	"fmt"
	"strings"
)

// Mode selects how highlighted content is styled.
type Mode string

const (
	// ModeHighlights fills the background only
	ModeHighlights Mode = "highlights"

	// ModeUnderline draws a colored underline only
	ModeUnderline Mode = "underline"

	// ModeBoth combines background fill and underline
	ModeBoth Mode = "both"

	// ModeNone strips the codes and renders plain content
	ModeNone Mode = "none"
)

// DefaultMode is used when no mode is given.
const DefaultMode = ModeHighlights

// AllModes lists the rendering modes.
var AllModes = []Mode{ModeHighlights, ModeUnderline, ModeBoth, ModeNone}

// String returns the mode name
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeHighlights, ModeUnderline, ModeBoth, ModeNone:
		return true
	}
	return false
}

// ParseMode parses a mode name, case-insensitively. The empty string
// yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return DefaultMode, nil
	case "highlight", "background", "bg":
		return ModeHighlights, nil
	default:
		if m.Valid() {
			return m, nil
		}
		return DefaultMode, fmt.Errorf("unknown mode: %s", s)
	}
}

// UnmarshalText lets config decoders and flags accept mode names.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// ColorKind picks one of the two color mappings of a palette.
type ColorKind string

const (
	KindBackground ColorKind = "background"
	KindUnderline  ColorKind = "underline"
)
