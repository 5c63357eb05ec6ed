package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в исходном тексте вместе со строкой и колонкой.
// Line 1-based, Col 0-based (байты).
type Cursor struct {
	Src  []byte
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor creates a new cursor at line 1, column 0.
func NewCursor(src []byte) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{
		Src:   src,
		Line:  1,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.Src[c.Off], c.Src[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
// '\n' увеличивает строку и сбрасывает колонку.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.Col = 0
	} else {
		c.Col++
	}
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

// Mark это метка начала лексемы
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// Width возвращает длину фрагмента в байтах, начиная с метки
func (c *Cursor) Width(m Mark) uint32 {
	return c.Off - m.Off
}

// Text возвращает исходный фрагмент, начиная с метки
func (c *Cursor) Text(m Mark) string {
	return string(c.Src[m.Off:c.Off])
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = m.Off
	c.Line = m.Line
	c.Col = m.Col
}
