package parser

import (
	"minipy/pkg/ast"
	"minipy/pkg/lexer"
)

// parseTestlist parses a comma-separated list of test expressions. A
// trailing comma before a newline, "=" or ")" is accepted and ignored; it
// does not turn the list into a tuple.
func (p *Parser) parseTestlist() ([]ast.Expression, error) {
	first, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	items := []ast.Expression{first}
	for p.isOp(",") {
		p.advance()
		if p.cur().Kind == lexer.TokNEWLINE || p.isOp("=") || p.isOp(")") {
			break
		}
		next, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return items, nil
}

func (p *Parser) parseTest() (ast.Expression, error) { return p.parseOrTest() }

func (p *Parser) parseOrTest() (ast.Expression, error) {
	first, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	for p.isKeyword("or") {
		p.advance()
		next, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return ast.NewBoolOp("or", operands), nil
}

func (p *Parser) parseAndTest() (ast.Expression, error) {
	first, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	for p.isKeyword("and") {
		p.advance()
		next, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return ast.NewBoolOp("and", operands), nil
}

func (p *Parser) parseNotTest() (ast.Expression, error) {
	if p.isKeyword("not") {
		p.advance()
		operand, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		return ast.NewNotExpression(operand), nil
	}
	return p.parseComparison()
}

var compOps = map[string]bool{"<": true, ">": true, "==": true, ">=": true, "<=": true, "!=": true}

func (p *Parser) parseComparison() (ast.Expression, error) {
	first, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	var ops []string
	for p.cur().Kind == lexer.TokOP && compOps[p.cur().Lit] {
		op := p.advance().Lit
		next, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		operands = append(operands, next)
	}
	if len(ops) == 0 {
		return operands[0], nil
	}
	return ast.NewComparison(operands, ops), nil
}

func (p *Parser) parseArith() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.TokOP && (p.cur().Lit == "+" || p.cur().Lit == "-") {
		op := p.advance().Lit
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.TokOP && isTermOp(p.cur().Lit) {
		op := p.advance().Lit
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func isTermOp(lit string) bool {
	return lit == "*" || lit == "/" || lit == "//" || lit == "%"
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	if p.cur().Kind == lexer.TokOP && (p.cur().Lit == "+" || p.cur().Lit == "-") {
		op := p.advance().Lit
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(op, operand), nil
	}
	return p.parseAtomExpr()
}

func (p *Parser) parseAtomExpr() (ast.Expression, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.isOp("(") {
		id, ok := atom.(*ast.Identifier)
		if !ok {
			return nil, p.errorf("only a bare name may be called")
		}
		args, kwargs, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return ast.NewCall(id.Name, args, kwargs), nil
	}
	return atom, nil
}

func (p *Parser) parseAtom() (ast.Expression, error) {
	tok := p.cur()
	switch {
	case p.isKeyword("True"):
		p.advance()
		return ast.NewBoolLiteral(true), nil
	case p.isKeyword("False"):
		p.advance()
		return ast.NewBoolLiteral(false), nil
	case p.isKeyword("None"):
		p.advance()
		return ast.NewNilLiteral(), nil
	case tok.Kind == lexer.TokINT:
		p.advance()
		return ast.NewIntLiteral(tok.IntVal), nil
	case tok.Kind == lexer.TokFLOAT:
		p.advance()
		return ast.NewFloatLiteral(tok.FloatVal), nil
	case tok.Kind == lexer.TokSTRING:
		p.advance()
		return ast.NewStrLiteral(tok.Lit), nil
	case tok.Kind == lexer.TokFSTRING:
		p.advance()
		parts, err := parseFStringBody(tok.Lit)
		if err != nil {
			return nil, err
		}
		return ast.NewFormatString(parts), nil
	case p.isOp("("):
		p.advance()
		items, err := p.parseTestlist()
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		return items[0], nil
	case tok.Kind == lexer.TokNAME && !lexer.IsKeyword(tok.Lit):
		p.advance()
		return ast.NewIdentifier(tok.Lit), nil
	default:
		return nil, p.errorf("unexpected token %q", tok.Lit)
	}
}

// parseArgList parses a call's "(" arglist ")". A keyword argument is
// recognized as NAME "=" test; everything else is positional.
func (p *Parser) parseArgList() ([]ast.Expression, []ast.KeywordArg, error) {
	if err := p.expectOp("("); err != nil {
		return nil, nil, err
	}
	var args []ast.Expression
	var kwargs []ast.KeywordArg
	for !p.isOp(")") {
		if p.cur().Kind == lexer.TokNAME && !lexer.IsKeyword(p.cur().Lit) && p.peek(1).Kind == lexer.TokOP && p.peek(1).Lit == "=" {
			name := p.advance().Lit
			p.advance() // '='
			val, err := p.parseTest()
			if err != nil {
				return nil, nil, err
			}
			kwargs = append(kwargs, ast.KeywordArg{Name: name, Value: val})
		} else {
			val, err := p.parseTest()
			if err != nil {
				return nil, nil, err
			}
			args = append(args, val)
		}
		if p.isOp(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectOp(")"); err != nil {
		return nil, nil, err
	}
	return args, kwargs, nil
}
