package lexer

import (
	"fire/internal/diag"
	"fire/internal/token"
)

// Жадность: сначала 2-символьные, затем 1-символьные.
// Каждое семейство операторов (+ - * / % & < > = !) смотрит на следующий байт.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, error) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, error) {
		return lx.emit(start, k, lx.cursor.Text(start)), nil
	}

	switch {
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	case lx.try2('&', '='):
		return emit(token.AmpAssign)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '&':
		return emit(token.Amp)
	case '!':
		return emit(token.Bang)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case ';':
		return emit(token.Semicolon)
	case ':':
		return emit(token.Colon)
	case '|':
		return token.Token{}, lx.errAt(diag.LexLonePipe, start, "unexpected character '|', did you mean '||'?")
	default:
		lx.cursor.Reset(start)
		r, _ := lx.peekRune()
		return token.Token{}, lx.errAt(diag.LexUnknownChar, start, "unexpected character %q", r)
	}
}

// try2 съедает два байта, если они совпадают с a и b.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
