package interpreter

import (
	"strings"

	"minipy/pkg/ast"
	"minipy/pkg/runtime"
)

// evalFormatString walks an f-string's literal and embedded-expression
// chunks in source order. Literal chunks get "{{"/"}}" unescaped; embedded
// testlists are evaluated to a list of Values and joined with ", ".
func (i *Interpreter) evalFormatString(fs *ast.FormatString) (runtime.Value, error) {
	var sb strings.Builder
	for _, part := range fs.Parts {
		switch p := part.(type) {
		case ast.FStringText:
			sb.WriteString(unescapeBraces(p.Text))
		case ast.FStringExpr:
			rendered := make([]string, len(p.Items))
			for idx, item := range p.Items {
				v, err := i.evalExpr(item)
				if err != nil {
					return nil, err
				}
				rendered[idx] = display(v)
			}
			sb.WriteString(strings.Join(rendered, ", "))
		}
	}
	return runtime.StringValue{Val: sb.String()}, nil
}

func unescapeBraces(s string) string {
	s = strings.ReplaceAll(s, "{{", "{")
	s = strings.ReplaceAll(s, "}}", "}")
	return s
}
