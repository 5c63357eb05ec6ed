package lexer

import (
	"strings"

	"fire/internal/diag"
	"fire/internal/token"
)

// scanString: "..." или '...', заканчивается на такой же неэкранированной кавычке.
// Escape: \\ \$ \n \r \t \b. `\$` остаётся двумя символами `\$`: интерполяцию
// разбирает потребитель Kindling. Конец текста внутри строки это ошибка на открывающей кавычке.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	var sb strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(start, token.StringLit, sb.String()), nil
		}
		if b != '\\' {
			sb.WriteByte(lx.cursor.Bump())
			continue
		}

		esc := lx.cursor.Mark()
		lx.cursor.Bump() // '\'
		if lx.cursor.EOF() {
			break
		}
		switch c := lx.cursor.Bump(); c {
		case '\\':
			sb.WriteByte('\\')
		case '$':
			sb.WriteString(`\$`)
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b':
			sb.WriteByte('\b')
		default:
			return token.Token{}, lx.errAt(diag.LexBadEscape, esc, "invalid escape sequence \\%c", c)
		}
	}
	return token.Token{}, lx.errAt(diag.LexUnterminatedString, start, "unterminated string literal")
}
