package lexer

import (
	"math"

	"fire/internal/diag"
	"fire/internal/token"
)

// scanNumber накапливает значение по одной цифре, без strconv:
//
//	123     IntLit
//	1.25    FloatLit (дробная часть: position /= 10 на каждую цифру)
//	1.      FloatLit 1.0
//	3f      FloatLit 3.0
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()

	var num int64
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		d := int64(lx.cursor.Bump() - '0')
		if num > (math.MaxInt64-d)/10 {
			return token.Token{}, lx.errAt(diag.LexIntOverflow, start, "integer literal overflows int64")
		}
		num = num*10 + d
	}

	switch lx.cursor.Peek() {
	case '.':
		lx.cursor.Bump()
		value := float64(num)
		position := 1.0
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			position /= 10
			value += float64(lx.cursor.Bump()-'0') * position
		}
		tok := lx.emit(start, token.FloatLit, lx.cursor.Text(start))
		tok.Float = value
		return tok, nil
	case 'f':
		lx.cursor.Bump()
		tok := lx.emit(start, token.FloatLit, lx.cursor.Text(start))
		tok.Float = float64(num)
		return tok, nil
	}

	tok := lx.emit(start, token.IntLit, lx.cursor.Text(start))
	tok.Int = num
	return tok, nil
}
