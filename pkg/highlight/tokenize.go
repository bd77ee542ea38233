package highlight

import "github.com/arthur-debert/hilite/pkg/types"

// TokenKind classifies a token.
type TokenKind int

const (
	// TokenText is a run of plain text
	TokenText TokenKind = iota
	// TokenOpen is an opening tag such as [Y]
	TokenOpen
	// TokenClose is a closing tag such as [/Y]
	TokenClose
)

// String returns the kind name
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	default:
		return "unknown"
	}
}

// Token is one unit of tokenized text. Tags carry their code; Text always
// holds the raw source of the token.
type Token struct {
	Kind TokenKind
	Code types.Code
	Text string
}

// Tokenize splits text into tag tokens for valid codes and the plain-text
// runs between them. Empty runs are dropped. Brackets of unknown codes stay
// inside text tokens.
func Tokenize(text string) []Token {
	matches := anyTagPattern.FindAllStringSubmatchIndex(text, -1)
	tokens := make([]Token, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		if m[0] > last {
			tokens = append(tokens, Token{Kind: TokenText, Text: text[last:m[0]]})
		}
		kind := TokenOpen
		if m[3] > m[2] {
			kind = TokenClose
		}
		tokens = append(tokens, Token{
			Kind: kind,
			Code: types.Code(text[m[4]:m[5]]),
			Text: text[m[0]:m[1]],
		})
		last = m[1]
	}
	if last < len(text) {
		tokens = append(tokens, Token{Kind: TokenText, Text: text[last:]})
	}
	return tokens
}
