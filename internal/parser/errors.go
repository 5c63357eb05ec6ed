package parser

import (
	"fmt"

	"fire/internal/diag"
	"fire/internal/token"
)

// Error is implemented by both parse error kinds.
type Error interface {
	error
	Pos() token.Position
	// Width of the offending token; zero for a missing token.
	Width() uint32
	DiagCode() diag.Code
	// Msg is the message without the position prefix that Error adds.
	Msg() string
}

// ParseTokenError: a token was present but is not what the production needs.
type ParseTokenError struct {
	Code    diag.Code
	Message string
	Token   token.Token
}

func (e *ParseTokenError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Column, e.Message)
}

func (e *ParseTokenError) Pos() token.Position { return e.Token.Pos() }
func (e *ParseTokenError) Width() uint32       { return e.Token.Width }
func (e *ParseTokenError) DiagCode() diag.Code { return e.Code }
func (e *ParseTokenError) Msg() string         { return e.Message }

// MissingTokenError: the stream ended in the middle of a production.
type MissingTokenError struct {
	Code     diag.Code
	Message  string
	Position token.Position
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

func (e *MissingTokenError) Pos() token.Position { return e.Position }
func (e *MissingTokenError) Width() uint32       { return 0 }
func (e *MissingTokenError) DiagCode() diag.Code { return e.Code }
func (e *MissingTokenError) Msg() string         { return e.Message }

var (
	_ Error = (*ParseTokenError)(nil)
	_ Error = (*MissingTokenError)(nil)
)

// describe renders a token for messages: keywords and punctuation quoted, values with payload.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.Ident:
		return fmt.Sprintf("identifier `%s`", tok.Text)
	case token.IntLit, token.FloatLit:
		return fmt.Sprintf("number `%s`", tok.Text)
	case token.StringLit:
		return fmt.Sprintf("string %q", tok.Text)
	case token.Annotation:
		return fmt.Sprintf("annotation `@%s`", tok.Text)
	default:
		return fmt.Sprintf("`%s`", tok.Kind)
	}
}
