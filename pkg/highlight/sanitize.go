package highlight

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/hilite/pkg/types"
)

// inventedCodes are full-word tags models sometimes produce instead of the
// short codes. Their markup is dropped and the content kept.
var inventedCodes = []string{"GREEN", "RED", "BLUE", "YELLOW", "ORANGE", "PURPLE"}

var (
	inventedPatterns []*regexp.Regexp

	// pairPatterns match a well-formed pair of one code whose content holds
	// no further bracket.
	pairPatterns = make(map[types.Code]*regexp.Regexp, len(types.AllCodes))

	codeAlternation = strings.Join(types.CodeNames(), "|")
	openTagPattern  = regexp.MustCompile(`\[(` + codeAlternation + `)\]`)
	anyTagPattern   = regexp.MustCompile(`\[(/?)(` + codeAlternation + `)\]`)
)

func init() {
	for _, word := range inventedCodes {
		inventedPatterns = append(inventedPatterns,
			regexp.MustCompile(`(?i)\[`+word+`\]([^\[]*)\[/`+word+`\]`))
	}
	for _, code := range types.AllCodes {
		c := regexp.QuoteMeta(string(code))
		pairPatterns[code] = regexp.MustCompile(`\[` + c + `\]([^\[]*)\[/` + c + `\]`)
	}
}

// Sanitize cleans raw text without styling it: invented full-word tags are
// unwrapped and orphaned tags of every valid code are removed, while
// well-formed pairs and fenced code regions are left exactly as they were.
func Sanitize(text string) string {
	if text == "" {
		return text
	}
	protected, saved := protectFences(text)
	return saved.restore(clean(protected))
}

// clean runs the sanitizer passes over fence-protected text.
func clean(text string) string {
	for _, re := range inventedPatterns {
		text = re.ReplaceAllString(text, "${1}")
	}
	for _, code := range types.AllCodes {
		text = removeOrphans(text, code)
	}
	return text
}

// removeOrphans deletes every [code] and [/code] that is not part of a
// well-formed pair of that code. Pairs are kept byte for byte; only the text
// between them is edited.
func removeOrphans(text string, code types.Code) string {
	openTag, closeTag := code.OpenTag(), code.CloseTag()
	if !strings.Contains(text, openTag) && !strings.Contains(text, closeTag) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range pairPatterns[code].FindAllStringIndex(text, -1) {
		b.WriteString(dropTags(text[last:loc[0]], openTag, closeTag))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(dropTags(text[last:], openTag, closeTag))
	return b.String()
}

func dropTags(s, openTag, closeTag string) string {
	s = strings.ReplaceAll(s, openTag, "")
	return strings.ReplaceAll(s, closeTag, "")
}

// StripCodes removes every well-formed pair of valid codes, keeping the
// enclosed content. Pairs are unwrapped innermost first until none remain,
// so StripCodes(StripCodes(s)) == StripCodes(s). Fenced code regions are
// left untouched.
func StripCodes(text string) string {
	if text == "" {
		return text
	}
	protected, saved := protectFences(text)
	for {
		before := protected
		for _, code := range types.AllCodes {
			protected = pairPatterns[code].ReplaceAllString(protected, "${1}")
		}
		if protected == before {
			break
		}
	}
	return saved.restore(protected)
}

// HasCodes reports whether text contains an opening tag of any valid code.
func HasCodes(text string) bool {
	return openTagPattern.MatchString(text)
}

// ExtractCodes returns the distinct codes whose opening tag appears in text,
// in canonical code order.
func ExtractCodes(text string) []types.Code {
	var codes []types.Code
	for _, code := range types.AllCodes {
		if strings.Contains(text, code.OpenTag()) {
			codes = append(codes, code)
		}
	}
	return codes
}
