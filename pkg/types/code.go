package types

import (
	"fmt"
	"strings"
)

// Code is a short bracket identifier marking a semantic category of text,
// as in [Y]key point[/Y]. The set is closed; see AllCodes.
type Code string

const (
	CodeYellow    Code = "Y"
	CodeBlue      Code = "B"
	CodeOrange    Code = "O"
	CodeGreen     Code = "G"
	CodeRed       Code = "R"
	CodePink      Code = "P"
	CodeLightBlue Code = "L"
	CodeGray      Code = "GR"
	CodePurple    Code = "H"
	CodeBrown     Code = "BR"
)

// AllCodes lists every valid code in canonical order. Sanitizer passes run
// in this order.
var AllCodes = []Code{
	CodeYellow,
	CodeBlue,
	CodeOrange,
	CodeGreen,
	CodeRed,
	CodePink,
	CodeLightBlue,
	CodeGray,
	CodePurple,
	CodeBrown,
}

var meanings = map[Code]string{
	CodeYellow:    "Important/Key points",
	CodeBlue:      "Concepts/Definitions",
	CodeOrange:    "Steps/Sequences",
	CodeGreen:     "Success/Positive",
	CodeRed:       "Warnings/Errors",
	CodePink:      "Examples",
	CodeLightBlue: "Data/Numbers",
	CodeGray:      "Code/Technical",
	CodePurple:    "Emphasis/Highlights",
	CodeBrown:     "Context/Background",
}

// Valid reports whether c belongs to the closed code set.
func (c Code) Valid() bool {
	_, ok := meanings[c]
	return ok
}

// Meaning returns the semantic category a code marks, or "" for an invalid code.
func (c Code) Meaning() string {
	return meanings[c]
}

// OpenTag returns the opening bracket form, e.g. "[Y]".
func (c Code) OpenTag() string {
	return "[" + string(c) + "]"
}

// CloseTag returns the closing bracket form, e.g. "[/Y]".
func (c Code) CloseTag() string {
	return "[/" + string(c) + "]"
}

// ParseCode parses a code name. Matching is exact: codes are upper case.
func ParseCode(s string) (Code, error) {
	c := Code(strings.TrimSpace(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown highlight code: %q", s)
	}
	return c, nil
}

// CodeNames returns the code identifiers in canonical order.
func CodeNames() []string {
	names := make([]string, len(AllCodes))
	for i, c := range AllCodes {
		names[i] = string(c)
	}
	return names
}
