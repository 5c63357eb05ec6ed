package token

import "fmt"

// Position is a line/column pair. Line is 1-based, Column is a 0-based byte column.
type Position struct {
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a single source token with its location and decoded payload.
type Token struct {
	Kind   Kind
	Line   uint32
	Column uint32
	Width  uint32
	// EndLine/EndColumn point just past the last byte. A string literal
	// may contain raw newlines, so the end can sit on a later line.
	EndLine   uint32
	EndColumn uint32
	// Text holds the identifier, string or annotation payload, or the lexeme otherwise.
	Text  string
	Int   int64
	Float float64
}

// Pos returns the position of the first character.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column}
}

// End returns the position just after the last character. Tokens built
// by hand without an end fall back to Column+Width on the start line.
func (t Token) End() Position {
	if t.EndLine == 0 {
		return Position{Line: t.Line, Column: t.Column + t.Width}
	}
	return Position{Line: t.EndLine, Column: t.EndColumn}
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIdentText reports whether the token is an identifier spelled exactly text.
func (t Token) IsIdentText(text string) bool {
	return t.Kind == Ident && t.Text == text
}

// String renders the token for debug output, e.g. `Ident("a")@1:4`.
func (t Token) String() string {
	switch t.Kind {
	case Ident, StringLit, Annotation:
		return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Column)
	case IntLit:
		return fmt.Sprintf("IntLit(%d)@%d:%d", t.Int, t.Line, t.Column)
	case FloatLit:
		return fmt.Sprintf("FloatLit(%g)@%d:%d", t.Float, t.Line, t.Column)
	default:
		return fmt.Sprintf("%q@%d:%d", t.Kind.String(), t.Line, t.Column)
	}
}
