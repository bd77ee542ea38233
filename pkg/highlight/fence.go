package highlight

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholders are built from private-use runes. Any fenceOpen rune already
// in the input is lifted out like a fence, so every placeholder seen by
// restore was made by protectFences.
const (
	fenceOpen  = "\uE000"
	fenceClose = "\uE001"
)

var (
	fencePattern       = regexp.MustCompile("(?s)```.*?```|" + fenceOpen)
	fencePlaceholderRe = regexp.MustCompile(fenceOpen + `(\d+)` + fenceClose)
)

// fences holds the fenced code regions lifted out of a text.
type fences []string

// protectFences replaces every fenced code region, and every literal
// fenceOpen rune, with a numbered placeholder.
func protectFences(text string) (string, fences) {
	var saved fences
	protected := fencePattern.ReplaceAllStringFunc(text, func(block string) string {
		saved = append(saved, block)
		return fenceOpen + strconv.Itoa(len(saved)-1) + fenceClose
	})
	return protected, saved
}

// restore puts the saved regions back in place of their placeholders.
func (f fences) restore(text string) string {
	if len(f) == 0 || !strings.Contains(text, fenceOpen) {
		return text
	}
	return fencePlaceholderRe.ReplaceAllStringFunc(text, func(ph string) string {
		idx, err := strconv.Atoi(ph[len(fenceOpen) : len(ph)-len(fenceClose)])
		if err != nil || idx >= len(f) {
			return ph
		}
		return f[idx]
	})
}
