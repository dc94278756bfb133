// Package parser implements a hand-written recursive-descent parser over
// pkg/lexer's token stream, producing the pkg/ast tree the interpreter
// walks. No library in the retrieved example pack parses a bespoke
// indentation-sensitive grammar, so -- as the teacher does for its own
// custom language -- parsing is hand-rolled, split across files the same
// way the teacher splits declarations/expressions/statements.
package parser

import (
	"fmt"

	"minipy/pkg/ast"
	"minipy/pkg/lexer"
)

type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes and parses src as a complete module.
func Parse(src string) (*ast.Module, error) {
	lx := lexer.New(src)
	tokens, err := lx.Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	return p.parseModule()
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek(off int) lexer.Token {
	idx := p.pos + off
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) atEOF() bool { return p.cur().Kind == lexer.TokEOF }

func (p *Parser) isOp(lit string) bool {
	return p.cur().Kind == lexer.TokOP && p.cur().Lit == lit
}

func (p *Parser) isKeyword(kw string) bool {
	return p.cur().Kind == lexer.TokNAME && p.cur().Lit == kw
}

func (p *Parser) expectOp(lit string) error {
	if !p.isOp(lit) {
		return p.errorf("expected %q, got %q", lit, p.cur().Lit)
	}
	p.advance()
	return nil
}

func (p *Parser) expectKeyword(kw string) error {
	if !p.isKeyword(kw) {
		return p.errorf("expected keyword %q, got %q", kw, p.cur().Lit)
	}
	p.advance()
	return nil
}

func (p *Parser) expectName() (string, error) {
	if p.cur().Kind != lexer.TokNAME || lexer.IsKeyword(p.cur().Lit) {
		return "", p.errorf("expected identifier, got %q", p.cur().Lit)
	}
	tok := p.advance()
	return tok.Lit, nil
}

func (p *Parser) expectNewline() error {
	if p.cur().Kind != lexer.TokNEWLINE {
		return p.errorf("expected end of line, got %q", p.cur().Lit)
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("parser: line %d: %s", p.cur().Line, fmt.Sprintf(format, args...))
}

func (p *Parser) skipNewlines() {
	for p.cur().Kind == lexer.TokNEWLINE {
		p.advance()
	}
}

func (p *Parser) parseModule() (*ast.Module, error) {
	var body []ast.Statement
	p.skipNewlines()
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt...)
		p.skipNewlines()
	}
	return ast.NewModule(body), nil
}

// parseSuite parses a colon-terminated, indented block: NEWLINE INDENT
// stmt+ DEDENT.
func (p *Parser) parseSuite() (*ast.Block, error) {
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	if p.cur().Kind != lexer.TokINDENT {
		return nil, p.errorf("expected an indented block")
	}
	p.advance()
	var stmts []ast.Statement
	for p.cur().Kind != lexer.TokDEDENT {
		if p.cur().Kind == lexer.TokNEWLINE {
			p.advance()
			continue
		}
		more, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, more...)
	}
	p.advance() // DEDENT
	return ast.NewBlock(stmts), nil
}
