package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.fire", []byte("hello world"), 0)
	id2 := fs.Add("main.fire", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("ids = %d, %d; want 0, 1", id1, id2)
	}
	latest, ok := fs.GetByPath("main.fire")
	if !ok || latest.ID != id2 {
		t.Fatalf("GetByPath must return the latest version, got %+v", latest)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("old version content changed: %q", fs.Get(id1).Content)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.fire", []byte("a\nb\n")))

	expected := []uint32{1, 3} // позиции символов \n
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, expected)
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.fire", []byte("ab\ncd\n\nef"))
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит своей строке
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start != tc.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tc.off, start, tc.want)
		}
	}
}

func TestOffsetAndSpanAt(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.fire", []byte("let a = 1;\n  return a;")))

	if got := f.Offset(1, 4); got != 4 {
		t.Errorf("Offset(1,4) = %d", got)
	}
	if got := f.Offset(2, 2); got != 13 {
		t.Errorf("Offset(2,2) = %d", got)
	}
	if got := f.Offset(1, 99); got != 10 {
		t.Errorf("Offset past end of line must clamp to the newline, got %d", got)
	}
	if got := f.Offset(9, 0); got != uint32(len(f.Content)) {
		t.Errorf("Offset past last line must clamp to EOF, got %d", got)
	}

	sp := f.SpanAt(2, 2, 6)
	if string(f.Content[sp.Start:sp.End]) != "return" {
		t.Errorf("SpanAt = %q", f.Content[sp.Start:sp.End])
	}
	sp = f.SpanAt(2, 10, 50)
	if sp.End != uint32(len(f.Content)) {
		t.Errorf("SpanAt must clamp at EOF, got %v", sp)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.fire", []byte("one\ntwo\nthree")))
	for n, want := range map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""} {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("cafe\u0301\r\nx")...)
	got, flags := Normalize(raw)
	if string(got) != "caf\u00e9\nx" {
		t.Fatalf("Normalize = %q", got)
	}
	want := FileHadBOM | FileNormalizedCRLF | FileNormalizedNFC
	if flags != want {
		t.Fatalf("flags = %b, want %b", flags, want)
	}

	plain, flags := Normalize([]byte("plain\n"))
	if string(plain) != "plain\n" || flags != 0 {
		t.Fatalf("plain input changed: %q %b", plain, flags)
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.fire")
	if err := os.WriteFile(path, []byte("a\r\nb"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb" || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("content %q flags %b", f.Content, f.Flags)
	}
	if got := f.FormatPath("relative", dir); got != "main.fire" {
		t.Errorf("FormatPath(relative) = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "main.fire" {
		t.Errorf("FormatPath(basename) = %q", got)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.fire")); err == nil {
		t.Error("Load of a missing file must fail")
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "other", "file.fire")

	got, err := RelativePath(target, filepath.Join(tmp, "base"))
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("RelativePath = %q, want %q", got, want)
	}
}

func TestSpanLen(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	if a.Len() != 2 || a.Empty() {
		t.Fatalf("Len/Empty wrong for %v", a)
	}
	if got := a.String(); got != "#1[4:6]" {
		t.Fatalf("String = %q", got)
	}
	// перевёрнутый спан считается пустым
	if b := (Span{Start: 5, End: 3}); !b.Empty() || b.Len() != 0 {
		t.Fatalf("inverted span must be empty, got len %d", b.Len())
	}
}
