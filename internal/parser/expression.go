package parser

import (
	"unicode"
	"unicode/utf8"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/token"
)

// valueAlts — порядок важен: литералы, затем this, затем переменная.
var valueAlts = []production[ast.Expr]{
	{"boolean", canBool, (*Parser).parseBool},
	{"integer", kindIs(token.IntLit), (*Parser).parseInt},
	{"float", kindIs(token.FloatLit), (*Parser).parseFloat},
	{"string", kindIs(token.StringLit), (*Parser).parseString},
	{"this", kindIs(token.KwThis), (*Parser).parseThis},
	{"variable", kindIs(token.Ident), (*Parser).parseVariableExpr},
}

var primaryAlts []production[ast.Expr]

func init() {
	primaryAlts = append([]production[ast.Expr]{
		{"group", kindIs(token.LParen), (*Parser).parseGroup},
		{"function call", canStaticFunctionCall, (*Parser).parseStaticFunctionCall},
		{"static method call", canStaticMethodCall, (*Parser).parseStaticMethodCall},
	}, valueAlts...)
}

func canBool(cur *Cursor) bool {
	return cur.At(token.KwTrue) || cur.At(token.KwFalse)
}

func canStaticFunctionCall(cur *Cursor) bool {
	return cur.At(token.Ident) && cur.PeekKind(1) == token.LParen
}

// `This.m(` или `Type.m(` где Type начинается с заглавной.
func canStaticMethodCall(cur *Cursor) bool {
	head, ok := cur.Peek(0)
	if !ok {
		return false
	}
	switch head.Kind {
	case token.KwThisType:
	case token.Ident:
		if !isUpperHead(head.Text) {
			return false
		}
	default:
		return false
	}
	return cur.PeekKind(1) == token.Dot &&
		cur.PeekKind(2) == token.Ident &&
		cur.PeekKind(3) == token.LParen
}

func isUpperHead(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func canAssign(cur *Cursor) bool {
	return cur.At(token.Ident) && cur.PeekKind(1) == token.Assign
}

func canExpression(cur *Cursor) bool {
	if _, ok := getUnaryMethod(cur.PeekKind(0)); ok {
		return true
	}
	return canAny(cur, primaryAlts)
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	if canAssign(p.cur) {
		return p.parseAssign()
	}
	if p.cur.At(token.Ident) {
		if next, ok := p.cur.Peek(1); ok && next.Kind.IsCompoundAssign() {
			return nil, compoundAssignError(next)
		}
	}
	expr, err := p.parseBinary(precLogicalOr)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.cur.Peek(0); ok {
		switch {
		case tok.Kind == token.Assign:
			return nil, &ParseTokenError{
				Code:    diag.SynUnexpectedToken,
				Message: "only a variable can be assigned to",
				Token:   tok,
			}
		case tok.Kind.IsCompoundAssign():
			return nil, compoundAssignError(tok)
		}
	}
	return expr, nil
}

func compoundAssignError(tok token.Token) error {
	return &ParseTokenError{
		Code:    diag.SynCompoundAssign,
		Message: "compound assignment is not supported",
		Token:   tok,
	}
}

func (p *Parser) parseAssign() (ast.Expr, error) {
	target, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Assign, "`=`"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Pos: target.Pos, Target: target, Value: value}, nil
}

// parseBinary — precedence climbing, все операторы левоассоциативны.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := getBinaryOp(p.cur.PeekKind(0))
		if op.prec == precNone || op.prec < minPrec {
			return left, nil
		}
		if _, err = p.cur.Next(); err != nil {
			return nil, err
		}
		right, err := p.parseBinary(op.prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.DynamicMethodCall{
			Pos:      left.Position(),
			Receiver: left,
			Method:   op.method,
			Args:     []ast.Expr{right},
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	method, ok := getUnaryMethod(p.cur.PeekKind(0))
	if !ok {
		return p.parsePostfix()
	}
	opTok, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	// -1 и -1.5 остаются литералами
	if method == "neg" {
		switch lit := operand.(type) {
		case *ast.IntLit:
			return &ast.IntLit{Pos: opTok.Pos(), Value: -lit.Value}, nil
		case *ast.FloatLit:
			return &ast.FloatLit{Pos: opTok.Pos(), Value: -lit.Value}, nil
		}
	}
	return &ast.DynamicMethodCall{Pos: opTok.Pos(), Receiver: operand, Method: method}, nil
}

// parsePostfix handles `expr.m(args)` chains.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := choose(p, "an expression", diag.SynExpectExpression, primaryAlts)
	if err != nil {
		return nil, err
	}
	for p.cur.At(token.Dot) {
		if _, err = p.cur.Next(); err != nil {
			return nil, err
		}
		method, err := p.expectIdent("method name after `.`")
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		expr = &ast.DynamicMethodCall{
			Pos:      expr.Position(),
			Receiver: expr,
			Method:   method.Text,
			Args:     args,
		}
	}
	return expr, nil
}

func (p *Parser) parseArgs() ([]ast.Expr, error) {
	if _, err := p.expect(token.LParen, "`(`"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.cur.At(token.RParen) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen, "`)`"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseGroup() (ast.Expr, error) {
	if _, err := p.expect(token.LParen, "`(`"); err != nil {
		return nil, err
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "`)`"); err != nil {
		return nil, err
	}
	return inner, nil
}

func (p *Parser) parseStaticFunctionCall() (ast.Expr, error) {
	name, err := p.expectIdent("function name")
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &ast.StaticFunctionCall{Pos: name.Pos(), Name: name.Text, Args: args}, nil
}

func (p *Parser) parseStaticMethodCall() (ast.Expr, error) {
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Dot, "`.`"); err != nil {
		return nil, err
	}
	method, err := p.expectIdent("method name")
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &ast.StaticMethodCall{Pos: typ.Pos, Type: typ, Method: method.Text, Args: args}, nil
}

func (p *Parser) parseBool() (ast.Expr, error) {
	tok, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	return &ast.BoolLit{Pos: tok.Pos(), Value: tok.Kind == token.KwTrue}, nil
}

func (p *Parser) parseInt() (ast.Expr, error) {
	tok, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	return &ast.IntLit{Pos: tok.Pos(), Value: tok.Int}, nil
}

func (p *Parser) parseFloat() (ast.Expr, error) {
	tok, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	return &ast.FloatLit{Pos: tok.Pos(), Value: tok.Float}, nil
}

func (p *Parser) parseString() (ast.Expr, error) {
	tok, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	return &ast.StringLit{Pos: tok.Pos(), Value: tok.Text}, nil
}

func (p *Parser) parseThis() (ast.Expr, error) {
	tok, err := p.cur.Next()
	if err != nil {
		return nil, err
	}
	return &ast.This{Pos: tok.Pos()}, nil
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	tok, err := p.expectIdent("variable name")
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Pos: tok.Pos(), Name: tok.Text}, nil
}

func (p *Parser) parseVariableExpr() (ast.Expr, error) {
	return p.parseVariable()
}

// parseType reads `Name` or `This`.
func (p *Parser) parseType() (ast.TypeRef, error) {
	if tok, ok := p.cur.Peek(0); ok && tok.Kind == token.KwThisType {
		_, _ = p.cur.Next()
		return ast.TypeRef{Pos: tok.Pos(), This: true}, nil
	}
	if !p.cur.At(token.Ident) {
		return ast.TypeRef{}, p.unexpected(diag.SynExpectType, "expected a type")
	}
	tok, err := p.cur.Next()
	if err != nil {
		return ast.TypeRef{}, err
	}
	return ast.TypeRef{Pos: tok.Pos(), Name: tok.Text}, nil
}
