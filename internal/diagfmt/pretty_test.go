package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire/internal/diag"
	"fire/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	content := []byte("fn main() {\n  let x = 'unterminated\n}\n")
	id := fs.AddVirtual("/home/user/project/fire/main.fire", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	start := uint32(strings.Index(string(content), "'"))
	d := diag.NewError(diag.LexUnterminatedString, source.Span{File: id, Start: start, End: start + 13}, "unterminated string literal").
		WithNote(source.Span{File: id, Start: 0, End: 2}, "inside this function")
	require.True(t, bag.Add(d))
	return bag, fs
}

func TestPathModes(t *testing.T) {
	bag, fs := sampleBag(t)
	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/fire/main.fire:2:11"},
		{"relative", PathModeRelative, "fire/main.fire:2:11"},
		{"basename", PathModeBasename, "main.fire:2:11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()
			assert.Contains(t, out, tt.contains)
			assert.Contains(t, out, "ERROR")
			assert.Contains(t, out, "LEX1002")
			assert.Contains(t, out, "unterminated string literal")
		})
	}
}

func TestPrettyCaretAndContext(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1 | fn main() {", lines[1])
	assert.Equal(t, "2 |   let x = 'unterminated", lines[2])
	assert.Equal(t, "  |"+strings.Repeat(" ", 11)+"^"+strings.Repeat("~", 12), lines[3])
}

func TestPrettyNotes(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, PathMode: PathModeBasename})
	assert.Contains(t, buf.String(), "note: main.fire:1:1: inside this function")

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	assert.NotContains(t, buf.String(), "note:")
}

func TestPrettyColor(t *testing.T) {
	bag, fs := sampleBag(t)
	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let s = \"日本\" + y;\n")
	id := fs.AddVirtual("wide.fire", content)
	bag := diag.NewBag(1)
	start := uint32(strings.Index(string(content), "y"))
	bag.Add(diag.NewError(diag.LowerUnknownVar, source.Span{File: id, Start: start, End: start + 1}, "unknown variable `y`"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// два широких символа занимают по две колонки
	assert.Equal(t, "  |"+strings.Repeat(" ", 1+17)+"^", lines[len(lines)-1])
}
