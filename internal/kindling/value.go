package kindling

import (
	"strconv"
	"strings"
)

// Value — синтаксическое значение Kindling. Только его умеет печатать Emit.
type Value interface {
	appendTo(buf []byte) []byte
}

// Text prints as "s". The content is not re-escaped.
type Text string

// Quote picks the delimiter s does not contain: Text normally, EscapedText
// when s holds a double quote. ok is false when s holds both kinds;
// Kindling has no escape for that.
func Quote(s string) (v Value, ok bool) {
	if !strings.ContainsRune(s, '"') {
		return Text(s), true
	}
	if !strings.ContainsRune(s, '\'') {
		return EscapedText(s), true
	}
	return Text(s), false
}

// EscapedText prints as 's'; used for item NBT that already holds double quotes.
type EscapedText string

type Number float64

type Identifier string

// List prints as `( a b c )`, the empty list as `( )`.
type List []Value

func (t Text) appendTo(buf []byte) []byte {
	buf = append(buf, '"')
	buf = append(buf, t...)
	return append(buf, '"')
}

func (t EscapedText) appendTo(buf []byte) []byte {
	buf = append(buf, '\'')
	buf = append(buf, t...)
	return append(buf, '\'')
}

// канонический десятичный вид: 1, 2.5, -0.25
func (n Number) appendTo(buf []byte) []byte {
	return strconv.AppendFloat(buf, float64(n), 'f', -1, 64)
}

func (id Identifier) appendTo(buf []byte) []byte {
	return append(buf, id...)
}

func (l List) appendTo(buf []byte) []byte {
	buf = append(buf, '(')
	for _, item := range l {
		buf = append(buf, ' ')
		buf = item.appendTo(buf)
	}
	return append(buf, ' ', ')')
}

// Emit renders v in the exact Kindling text format.
func Emit(v Value) string {
	return string(AppendValue(nil, v))
}

// AppendValue appends the rendering of v to buf.
func AppendValue(buf []byte, v Value) []byte {
	if v == nil {
		return buf
	}
	return v.appendTo(buf)
}
