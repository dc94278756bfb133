package parser

import (
	"strings"

	"minipy/pkg/ast"
	"minipy/pkg/lexer"
)

// parseFStringBody splits an f-string's raw body into literal-text and
// embedded-expression parts. "{{" and "}}" are left untouched here -- the
// interpreter performs that unescaping at evaluation time -- and anything
// else between a single '{' and the next '}' is parsed as its own testlist.
func parseFStringBody(raw string) ([]ast.FStringPart, error) {
	var parts []ast.FStringPart
	var text strings.Builder
	runes := []rune(raw)
	i := 0
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, ast.FStringText{Text: text.String()})
			text.Reset()
		}
	}
	for i < len(runes) {
		switch {
		case i+1 < len(runes) && runes[i] == '{' && runes[i+1] == '{':
			text.WriteString("{{")
			i += 2
		case i+1 < len(runes) && runes[i] == '}' && runes[i+1] == '}':
			text.WriteString("}}")
			i += 2
		case runes[i] == '{':
			flush()
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			exprSrc := string(runes[i+1 : j])
			items, err := parseTestlistSnippet(exprSrc)
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.FStringExpr{Items: items})
			if j < len(runes) {
				j++ // consume closing '}'
			}
			i = j
		default:
			text.WriteRune(runes[i])
			i++
		}
	}
	flush()
	return parts, nil
}

func parseTestlistSnippet(src string) ([]ast.Expression, error) {
	lx := lexer.New(src)
	tokens, err := lx.Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	return p.parseTestlist()
}
