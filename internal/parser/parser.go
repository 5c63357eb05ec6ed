package parser

import (
	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/resource"
	"fire/internal/token"
)

// Parser — рекурсивный спуск поверх Cursor. Первая ошибка прерывает разбор.
type Parser struct {
	cur  *Cursor
	file resource.Location
}

func newParser(file resource.Location, toks []token.Token) *Parser {
	return &Parser{cur: NewCursor(toks), file: file}
}

// ParseFile parses a whole compilation unit whose definitions live under loc.
func ParseFile(loc resource.Location, toks []token.Token) (*ast.File, error) {
	p := newParser(loc, toks)
	file := &ast.File{Location: loc}
	for p.cur.HasNext() {
		pre, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		if p.cur.At(token.KwImport) {
			if !pre.empty() {
				return nil, danglingPrefix(pre)
			}
			imp, err := p.parseImport()
			if err != nil {
				return nil, err
			}
			file.Imports = append(file.Imports, imp)
			continue
		}
		if !canDefinition(p.cur) && !pre.empty() {
			return nil, danglingPrefix(pre)
		}
		def, err := p.parseDefinition(pre)
		if err != nil {
			return nil, err
		}
		file.Definitions = append(file.Definitions, def)
	}
	return file, nil
}

// ParseExpression parses toks as exactly one expression.
func ParseExpression(toks []token.Token) (ast.Expr, error) {
	p := newParser(resource.Location{}, toks)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseStatement parses toks as exactly one statement.
func ParseStatement(toks []token.Token) (ast.Stmt, error) {
	p := newParser(resource.Location{}, toks)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) expectEnd() error {
	if p.cur.HasNext() {
		return p.unexpected(diag.SynUnexpectedToken, "expected end of input")
	}
	return nil
}
