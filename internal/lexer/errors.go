package lexer

import (
	"fmt"

	"fire/internal/diag"
)

// Error is a lexical error. Lexing stops at the first one.
type Error struct {
	Code   diag.Code
	Msg    string
	Line   uint32
	Column uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func (lx *Lexer) errAt(code diag.Code, m Mark, format string, args ...any) *Error {
	return &Error{
		Code:   code,
		Msg:    fmt.Sprintf(format, args...),
		Line:   m.Line,
		Column: m.Col,
	}
}
