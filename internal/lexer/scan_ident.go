package lexer

import (
	"fire/internal/diag"
	"fire/internal/token"
)

// scanIdentOrKeyword сканирует максимальный [Ident] и проверяет через LookupKeyword.
// Завершающий '!' входит в слово только для `let!`/`fn!` и только если за ним нет '='
// (`fn!=` это `fn` и `!=`).
func (lx *Lexer) scanIdentOrKeyword() (token.Token, error) {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		return token.Token{}, lx.errAt(diag.LexUnknownChar, start, "unexpected character %q", r)
	}
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	word := lx.cursor.Text(start)
	if lx.cursor.Peek() == '!' {
		if k, ok := token.LookupKeyword(word + "!"); ok {
			_, next, hasNext := lx.cursor.Peek2()
			if !hasNext || next != '=' {
				lx.cursor.Bump()
				return lx.emit(start, k, word+"!"), nil
			}
		}
	}

	if k, ok := token.LookupKeyword(word); ok {
		return lx.emit(start, k, word), nil
	}
	return lx.emit(start, token.Ident, word), nil
}

// scanAnnotation: '@' + один или более [A-Za-z0-9_]. Text хранит имя без '@'.
func (lx *Lexer) scanAnnotation() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	nameStart := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Width(nameStart) == 0 {
		return token.Token{}, lx.errAt(diag.LexEmptyAnnotation, start, "expected annotation name after '@'")
	}
	return lx.emit(start, token.Annotation, lx.cursor.Text(nameStart)), nil
}
