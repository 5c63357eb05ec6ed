package parser

import (
	"fire/internal/diag"
	"fire/internal/token"
)

// Cursor — read-only представление потока токенов с позицией чтения.
type Cursor struct {
	toks []token.Token
	pos  int
	last token.Position // конец последнего съеденного токена
}

func NewCursor(toks []token.Token) *Cursor {
	return &Cursor{
		toks: toks,
		last: token.Position{Line: 1, Column: 0},
	}
}

// HasNext reports whether at least one token is left.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.toks)
}

// Next съедает токен и запоминает его конец как текущую позицию.
func (c *Cursor) Next() (token.Token, error) {
	if !c.HasNext() {
		return token.Token{}, &MissingTokenError{
			Code:     diag.SynUnexpectedEnd,
			Message:  "unexpected end of input",
			Position: c.last,
		}
	}
	tok := c.toks[c.pos]
	c.pos++
	c.last = tok.End()
	return tok, nil
}

// Peek смотрит вперёд на offset токенов, не съедая их.
func (c *Cursor) Peek(offset int) (token.Token, bool) {
	i := c.pos + offset
	if offset < 0 || i >= len(c.toks) {
		return token.Token{}, false
	}
	return c.toks[i], true
}

// PeekKind is Peek that yields token.Invalid when out of range.
func (c *Cursor) PeekKind(offset int) token.Kind {
	tok, ok := c.Peek(offset)
	if !ok {
		return token.Invalid
	}
	return tok.Kind
}

// At reports whether the next token has kind k.
func (c *Cursor) At(k token.Kind) bool {
	return c.PeekKind(0) == k
}

// Position returns the point just after the last consumed token
// (line 1, column 0 before anything is consumed).
func (c *Cursor) Position() token.Position {
	return c.last
}
