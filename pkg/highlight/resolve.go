package highlight

import (
	"strings"

	"github.com/arthur-debert/hilite/pkg/types"
)

// Emitter styles the content enclosed by one resolved tag pair.
type Emitter interface {
	Emit(content string, code types.Code) string
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(content string, code types.Code) string

// Emit calls f(content, code).
func (f EmitterFunc) Emit(content string, code types.Code) string {
	return f(content, code)
}

// frame is an open tag waiting for its close: the code and the length of
// the output buffer when the tag was seen.
type frame struct {
	code  types.Code
	start int
}

// Resolve walks tokens with a stack of open tags and returns the joined
// output. A closing tag matches the most recently opened tag of the same
// code, searching the whole stack rather than only its top. Everything
// written to the output since that tag opened becomes the content handed to
// emit, and the styled result replaces it as a single fragment.
//
// Closing tags with no open counterpart are dropped. Opening tags that are
// never closed produce no output; their content stays as plain text.
func Resolve(tokens []Token, emit Emitter) string {
	output := make([]string, 0, len(tokens))
	var stack []frame

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpen:
			stack = append(stack, frame{code: tok.Code, start: len(output)})

		case TokenClose:
			j := len(stack) - 1
			for ; j >= 0; j-- {
				if stack[j].code == tok.Code {
					break
				}
			}
			if j < 0 {
				continue
			}

			// An earlier close may have collapsed the output below this
			// frame's bookmark.
			start := min(stack[j].start, len(output))
			content := strings.Join(output[start:], "")
			output = append(output[:start], emit.Emit(content, tok.Code))
			stack = append(stack[:j], stack[j+1:]...)

		default:
			output = append(output, tok.Text)
		}
	}

	return strings.Join(output, "")
}
