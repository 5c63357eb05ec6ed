package lexer

import (
	"io"
	"unicode/utf8"

	"fire/internal/token"
)

type Lexer struct {
	cursor Cursor
	done   bool
}

func New(src []byte) *Lexer {
	return &Lexer{cursor: NewCursor(src)}
}

// Tokenize lexes the whole source. On the first lexical error it returns the
// tokens produced so far together with the *Error.
func Tokenize(src []byte) ([]token.Token, error) {
	lx := New(src)
	toks := make([]token.Token, 0, len(src)/4)
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// Next возвращает следующий значимый токен.
// В конце текста возвращает io.EOF; после ошибки лексер больше не продвигается.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.done {
		return token.Token{}, io.EOF
	}
	if err := lx.skipTrivia(); err != nil {
		lx.done = true
		return token.Token{}, err
	}
	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{}, io.EOF
	}

	var (
		tok token.Token
		err error
	)
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8.RuneSelf:
		tok, err = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok, err = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok, err = lx.scanString()
	case ch == '@':
		tok, err = lx.scanAnnotation()
	default:
		tok, err = lx.scanOperatorOrPunct()
	}
	if err != nil {
		lx.done = true
		return token.Token{}, err
	}
	return tok, nil
}

// emit вызывается, когда курсор уже стоит за последним байтом токена.
func (lx *Lexer) emit(m Mark, k token.Kind, text string) token.Token {
	return token.Token{
		Kind:      k,
		Line:      m.Line,
		Column:    m.Col,
		Width:     lx.cursor.Width(m),
		EndLine:   lx.cursor.Line,
		EndColumn: lx.cursor.Col,
		Text:      text,
	}
}
