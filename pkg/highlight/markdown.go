package highlight

import "regexp"

var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*([^*]+?)\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

const inlineCodeStyle = "background:#f1f1f1;padding:2px 4px;border-radius:3px;font-family:monospace;font-size:0.9em"

// MarkdownStyle wraps the content of the three markdown emphasis forms.
// A nil function leaves that form untouched.
type MarkdownStyle struct {
	Bold   func(string) string
	Italic func(string) string
	Code   func(string) string
}

// HTMLMarkdown renders emphasis as <strong>, <em> and a styled <code>.
var HTMLMarkdown = MarkdownStyle{
	Bold:   func(s string) string { return "<strong>" + s + "</strong>" },
	Italic: func(s string) string { return "<em>" + s + "</em>" },
	Code: func(s string) string {
		return `<code style="` + inlineCodeStyle + `">` + s + "</code>"
	},
}

// apply runs bold, then italic, then inline code. Bold must come first so
// the single-asterisk pattern never sees a double-asterisk run.
func (m MarkdownStyle) apply(text string) string {
	text = replaceGroup(boldPattern, text, m.Bold)
	text = replaceGroup(italicPattern, text, m.Italic)
	return replaceGroup(inlineCodePattern, text, m.Code)
}

// applyMarkdown converts markdown emphasis to HTML.
func applyMarkdown(text string) string {
	return HTMLMarkdown.apply(text)
}

func replaceGroup(re *regexp.Regexp, text string, wrap func(string) string) string {
	if wrap == nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return wrap(re.FindStringSubmatch(match)[1])
	})
}
