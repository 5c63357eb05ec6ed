package lexer

import (
	"unicode"
	"unicode/utf8"
)

type charClass uint8

const (
	classIdentStart charClass = 1 << iota
	classDigit
)

// asciiClass классифицирует байты < 0x80; всё выше решает unicode.
var asciiClass = func() (t [utf8.RuneSelf]charClass) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= classIdentStart
		t[c-'a'+'A'] |= classIdentStart
	}
	t['_'] |= classIdentStart
	for c := '0'; c <= '9'; c++ {
		t[c] |= classDigit
	}
	return t
}()

func isDec(b byte) bool {
	return b < utf8.RuneSelf && asciiClass[b]&classDigit != 0
}

func isIdentStartByte(b byte) bool {
	return b < utf8.RuneSelf && asciiClass[b]&classIdentStart != 0
}

func isIdentContinueByte(b byte) bool {
	return b < utf8.RuneSelf && asciiClass[b] != 0
}

// Non-ASCII identifiers: any Unicode letter may start one, letters and
// digits may continue it.
func isIdentStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// peekRune decodes the rune under the cursor; size 0 means EOF.
func (lx *Lexer) peekRune() (rune, int) {
	c := &lx.cursor
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.Peek(); b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.Src[c.Off:c.Limit])
}

// bumpRune steps over one rune. Column advances per byte, not per rune.
func (lx *Lexer) bumpRune() {
	_, n := lx.peekRune()
	for ; n > 0; n-- {
		lx.cursor.Bump()
	}
}
