package parser

import (
	"minipy/pkg/ast"
	"minipy/pkg/lexer"
)

// parseStatement parses one stmt: either a compound statement (returned as
// a single-element slice) or a simple_stmt line, which may hold several
// ';'-separated small_stmt entries.
func (p *Parser) parseStatement() ([]ast.Statement, error) {
	switch {
	case p.isKeyword("if"):
		s, err := p.parseIf()
		return []ast.Statement{s}, err
	case p.isKeyword("while"):
		s, err := p.parseWhile()
		return []ast.Statement{s}, err
	case p.isKeyword("def"):
		s, err := p.parseFunctionDef()
		return []ast.Statement{s}, err
	default:
		return p.parseSimpleStmtLine()
	}
}

func (p *Parser) parseSimpleStmtLine() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		s, err := p.parseSmallStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if p.isOp(";") {
			p.advance()
			if p.cur().Kind == lexer.TokNEWLINE {
				break
			}
			continue
		}
		break
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseSmallStmt() (ast.Statement, error) {
	switch {
	case p.isKeyword("break"):
		p.advance()
		return ast.NewBreakStatement(), nil
	case p.isKeyword("continue"):
		p.advance()
		return ast.NewContinueStatement(), nil
	case p.isKeyword("return"):
		p.advance()
		values, err := p.parseOptionalTestlist()
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStatement(values), nil
	default:
		return p.parseExprStatement()
	}
}

var augOps = map[string]string{
	"+=": "+", "-=": "-", "*=": "*", "/=": "/", "//=": "//", "%=": "%",
}

// parseExprStatement implements expr_stmt: a bare expression, an augmented
// assignment to a single name, or a plain/chained assignment where every
// target but the last testlist must reduce to a comma-separated name list.
func (p *Parser) parseExprStatement() (ast.Statement, error) {
	first, err := p.parseTestlist()
	if err != nil {
		return nil, err
	}

	if p.cur().Kind == lexer.TokOP {
		if newOp, ok := augOps[p.cur().Lit]; ok {
			if len(first) != 1 {
				return nil, p.errorf("augmented assignment requires a single target")
			}
			name, ok := asIdentifierName(first[0])
			if !ok {
				return nil, p.errorf("augmented assignment target must be a name")
			}
			p.advance()
			rhs, err := p.parseTestlist()
			if err != nil {
				return nil, err
			}
			if len(rhs) != 1 {
				return nil, p.errorf("augmented assignment value must be a single expression")
			}
			return ast.NewAugAssignStatement(name, newOp, rhs[0]), nil
		}
	}

	if !p.isOp("=") {
		if len(first) == 1 {
			return ast.NewExprStatement(first[0]), nil
		}
		return nil, p.errorf("unexpected comma-separated expression outside assignment")
	}

	groups := []ast.TargetList{mustTargetList(first)}
	var lastExprList []ast.Expression
	for p.isOp("=") {
		p.advance()
		next, err := p.parseTestlist()
		if err != nil {
			return nil, err
		}
		lastExprList = next
		if p.isOp("=") {
			groups = append(groups, mustTargetList(next))
		}
	}
	targets := make([]ast.TargetList, len(groups))
	for idx, g := range groups {
		if g.Names == nil {
			return nil, p.errorf("assignment target must be a comma-separated list of names")
		}
		targets[idx] = g
	}
	return ast.NewAssignStatement(targets, lastExprList), nil
}

func mustTargetList(exprs []ast.Expression) ast.TargetList {
	names := make([]string, len(exprs))
	for idx, e := range exprs {
		name, ok := asIdentifierName(e)
		if !ok {
			return ast.TargetList{Names: nil}
		}
		names[idx] = name
	}
	return ast.TargetList{Names: names}
}

func asIdentifierName(e ast.Expression) (string, bool) {
	id, ok := e.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

func (p *Parser) parseIf() (ast.Statement, error) {
	if err := p.expectKeyword("if"); err != nil {
		return nil, err
	}
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	clauses := []ast.IfClause{{Cond: cond, Body: body}}
	for p.isKeyword("elif") {
		p.advance()
		c, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		b, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.IfClause{Cond: c, Body: b})
	}
	var elseBody *ast.Block
	if p.isKeyword("else") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(clauses, elseBody), nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	if err := p.expectKeyword("while"); err != nil {
		return nil, err
	}
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(cond, body), nil
}

func (p *Parser) parseFunctionDef() (ast.Statement, error) {
	if err := p.expectKeyword("def"); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.isOp(")") {
		pname, err := p.expectName()
		if err != nil {
			return nil, err
		}
		param := ast.Param{Name: pname}
		if p.isOp("=") {
			p.advance()
			def, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			param.Default = def
		}
		params = append(params, param)
		if p.isOp(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDef(name, params, body), nil
}

// parseOptionalTestlist parses a bare "return" with no following
// expression as an empty list.
func (p *Parser) parseOptionalTestlist() ([]ast.Expression, error) {
	if p.cur().Kind == lexer.TokNEWLINE || p.isOp(";") {
		return nil, nil
	}
	return p.parseTestlist()
}
