package lexer

import (
	"testing"
)

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor([]byte("a\nb"))

	if cursor.Line != 1 || cursor.Col != 0 {
		t.Fatalf("start position = %d:%d, want 1:0", cursor.Line, cursor.Col)
	}
	if b := cursor.Bump(); b != 'a' {
		t.Errorf("Expected bump 'a', got %c", b)
	}
	if cursor.Col != 1 {
		t.Errorf("Expected column 1 after 'a', got %d", cursor.Col)
	}
	if b := cursor.Bump(); b != '\n' {
		t.Errorf("Expected bump '\\n', got %c", b)
	}
	if cursor.Line != 2 || cursor.Col != 0 {
		t.Errorf("after newline position = %d:%d, want 2:0", cursor.Line, cursor.Col)
	}
	if b := cursor.Bump(); b != 'b' {
		t.Errorf("Expected bump 'b', got %c", b)
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero bytes at EOF")
	}
}

// TestPeek2 проверяет Peek2 на середине и конце текста
func TestPeek2(t *testing.T) {
	cursor := NewCursor([]byte("ab"))
	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2() = (%c, %c, %v), want (a, b, true)", b0, b1, ok)
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatal("Peek2 must fail with a single byte left")
	}
}

func TestMarkResetRestoresLineAndColumn(t *testing.T) {
	cursor := NewCursor([]byte("x\ny z"))
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	cursor.Bump()
	if cursor.Width(m) != 3 || cursor.Text(m) != "\ny " {
		t.Fatalf("Width/Text = %d/%q", cursor.Width(m), cursor.Text(m))
	}
	cursor.Reset(m)
	if cursor.Off != 1 || cursor.Line != 1 || cursor.Col != 1 {
		t.Fatalf("after Reset = off %d, %d:%d", cursor.Off, cursor.Line, cursor.Col)
	}
}

func TestEat(t *testing.T) {
	cursor := NewCursor([]byte("=>"))
	if cursor.Eat('>') {
		t.Fatal("Eat('>') must not consume '='")
	}
	if !cursor.Eat('=') || !cursor.Eat('>') {
		t.Fatal("Eat sequence failed")
	}
	if cursor.Eat('>') {
		t.Fatal("Eat at EOF must fail")
	}
}
