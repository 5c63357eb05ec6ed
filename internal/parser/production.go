package parser

import (
	"fmt"

	"fire/internal/diag"
	"fire/internal/resource"
	"fire/internal/token"
)

// production — пара can/parse. can никогда не двигает курсор.
type production[T any] struct {
	name  string
	can   func(*Cursor) bool
	parse func(*Parser) (T, error)
}

// choose runs the first alternative whose can matches.
func choose[T any](p *Parser, what string, code diag.Code, alts []production[T]) (T, error) {
	for _, alt := range alts {
		if alt.can(p.cur) {
			return alt.parse(p)
		}
	}
	var zero T
	return zero, p.unexpected(code, "not "+what)
}

func canAny[T any](cur *Cursor, alts []production[T]) bool {
	for _, alt := range alts {
		if alt.can(cur) {
			return true
		}
	}
	return false
}

func kindIs(k token.Kind) func(*Cursor) bool {
	return func(cur *Cursor) bool { return cur.At(k) }
}

// unexpected builds the error for the next token, or a MissingTokenError at EOF.
func (p *Parser) unexpected(code diag.Code, msg string) error {
	tok, ok := p.cur.Peek(0)
	if !ok {
		return &MissingTokenError{
			Code:     diag.SynUnexpectedEnd,
			Message:  msg + ", found end of input",
			Position: p.cur.Position(),
		}
	}
	return &ParseTokenError{
		Code:    code,
		Message: fmt.Sprintf("%s, found %s", msg, describe(tok)),
		Token:   tok,
	}
}

// expect съедает токен нужного вида или возвращает ошибку.
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if !p.cur.At(k) {
		return token.Token{}, p.unexpected(diag.SynUnexpectedToken, "expected "+what)
	}
	return p.cur.Next()
}

func (p *Parser) expectIdent(what string) (token.Token, error) {
	if !p.cur.At(token.Ident) {
		return token.Token{}, p.unexpected(diag.SynExpectIdentifier, "expected "+what)
	}
	return p.cur.Next()
}

// eat consumes the next token if it has kind k.
func (p *Parser) eat(k token.Kind) bool {
	if !p.cur.At(k) {
		return false
	}
	_, _ = p.cur.Next()
	return true
}

// resourceName validates an identifier token as a resource name.
func resourceName(tok token.Token) (resource.Name, error) {
	name, err := resource.NewName(tok.Text)
	if err != nil {
		return resource.Name{}, &ParseTokenError{
			Code:    diag.SynInvalidResourceName,
			Message: fmt.Sprintf("`%s` is not a valid name", tok.Text),
			Token:   tok,
		}
	}
	return name, nil
}
