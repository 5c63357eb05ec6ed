package parser

import (
	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/token"
)

const kindlingIdent = "__kindling"

var stmtAlts []production[ast.Stmt]

func init() {
	stmtAlts = []production[ast.Stmt]{
		{"block", kindIs(token.LBrace), (*Parser).parseBlockStmt},
		{"variable definition", kindIs(token.KwLet), (*Parser).parseVarDef},
		{"constant definition", kindIs(token.KwLetBang), (*Parser).parseConstDef},
		{"return", kindIs(token.KwReturn), (*Parser).parseReturn},
		{"break", kindIs(token.KwBreak), (*Parser).parseBreak},
		{"continue", kindIs(token.KwContinue), (*Parser).parseContinue},
		{"kindling insert", canKindlingInsert, (*Parser).parseKindlingInsert},
		{"if", kindIs(token.KwIf), (*Parser).parseIf},
		{"for", kindIs(token.KwFor), (*Parser).parseFor},
		{"while", kindIs(token.KwWhile), (*Parser).parseWhile},
		{"expression statement", canExpression, (*Parser).parseExprStmt},
	}
}

func canKindlingInsert(cur *Cursor) bool {
	tok, ok := cur.Peek(0)
	return ok && tok.IsIdentText(kindlingIdent) && cur.PeekKind(1) == token.StringLit
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	return choose(p, "a statement", diag.SynExpectStatement, stmtAlts)
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(token.LBrace, "`{`")
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Pos: open.Pos()}
	for !p.cur.At(token.RBrace) {
		if !p.cur.HasNext() {
			return nil, p.unexpected(diag.SynUnexpectedEnd, "expected `}`")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	_, _ = p.cur.Next()
	return block, nil
}

func (p *Parser) parseBlockStmt() (ast.Stmt, error) {
	return p.parseBlock()
}

// parseBinding reads `name [: Type] = value ;` after let/let!.
func (p *Parser) parseBinding() (name token.Token, typ *ast.TypeRef, value ast.Expr, err error) {
	if name, err = p.expectIdent("variable name"); err != nil {
		return
	}
	if p.eat(token.Colon) {
		var t ast.TypeRef
		if t, err = p.parseType(); err != nil {
			return
		}
		typ = &t
	}
	if _, err = p.expect(token.Assign, "`=`"); err != nil {
		return
	}
	if value, err = p.parseExpression(); err != nil {
		return
	}
	_, err = p.expect(token.Semicolon, "`;`")
	return
}

func (p *Parser) parseVarDef() (ast.Stmt, error) {
	kw, err := p.expect(token.KwLet, "`let`")
	if err != nil {
		return nil, err
	}
	name, typ, value, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	return &ast.VarDef{Pos: kw.Pos(), Name: name.Text, Type: typ, Value: value, Mutable: true}, nil
}

func (p *Parser) parseConstDef() (ast.Stmt, error) {
	kw, err := p.expect(token.KwLetBang, "`let!`")
	if err != nil {
		return nil, err
	}
	name, typ, value, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	return &ast.ConstDef{Pos: kw.Pos(), Name: name.Text, Type: typ, Value: value}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	kw, err := p.expect(token.KwReturn, "`return`")
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Pos: kw.Pos()}
	if !p.cur.At(token.Semicolon) {
		if ret.Value, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(token.Semicolon, "`;`"); err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Parser) parseBreak() (ast.Stmt, error) {
	kw, err := p.expect(token.KwBreak, "`break`")
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Semicolon, "`;`"); err != nil {
		return nil, err
	}
	return &ast.Break{Pos: kw.Pos()}, nil
}

func (p *Parser) parseContinue() (ast.Stmt, error) {
	kw, err := p.expect(token.KwContinue, "`continue`")
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Semicolon, "`;`"); err != nil {
		return nil, err
	}
	return &ast.Continue{Pos: kw.Pos()}, nil
}

func (p *Parser) parseKindlingInsert() (ast.Stmt, error) {
	kw, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	text, err := p.expect(token.StringLit, "kindling text")
	if err != nil {
		return nil, err
	}
	// `;` после вставки необязательна
	p.eat(token.Semicolon)
	return &ast.KindlingInsert{Pos: kw.Pos(), Text: text.Text}, nil
}

// parseCondition reads `( expr )`.
func (p *Parser) parseCondition() (ast.Expr, error) {
	if _, err := p.expect(token.LParen, "`(`"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.RParen, "`)`"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	kw, err := p.expect(token.KwIf, "`if`")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.cur.Peek(0); ok && tok.Kind == token.KwElse {
		return nil, &ParseTokenError{
			Code:    diag.SynUnexpectedToken,
			Message: "`else` branches are not supported",
			Token:   tok,
		}
	}
	return &ast.If{Pos: kw.Pos(), Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	kw, err := p.expect(token.KwFor, "`for`")
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.LParen, "`(`"); err != nil {
		return nil, err
	}
	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.cur.Peek(0); !ok || !tok.IsIdentText("in") {
		return nil, p.unexpected(diag.SynUnexpectedToken, "expected `in`")
	}
	_, _ = p.cur.Next()
	iter, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.RParen, "`)`"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.For{Pos: kw.Pos(), Var: v, Iter: iter, Body: body}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	kw, err := p.expect(token.KwWhile, "`while`")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Pos: kw.Pos(), Cond: cond, Body: body}, nil
}

// parseExprStmt — вызов становится CallStmt, остальное ExprStmt.
func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Semicolon, "`;`"); err != nil {
		return nil, err
	}
	if ast.IsCall(expr) {
		return &ast.CallStmt{Pos: expr.Position(), Call: expr}, nil
	}
	return &ast.ExprStmt{Pos: expr.Position(), Expr: expr}, nil
}
