package lexer

import "fire/internal/diag"

// skipTrivia пропускает пробелы, переводы строк и комментарии.
// - //... до \n
// - /* ... */ без вложенности: первая */ закрывает
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			lx.cursor.Bump()
			continue
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return nil
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				continue
			case '*':
				if err := lx.skipBlockComment(); err != nil {
					return err
				}
				continue
			}
		}
		return nil
	}
	return nil
}

func (lx *Lexer) skipBlockComment() error {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.try2('*', '/') {
			return nil
		}
		lx.cursor.Bump()
	}
	return lx.errAt(diag.LexUnterminatedBlockComment, start, "unterminated block comment")
}
