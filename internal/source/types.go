package source

import "fmt"

// FileID индексирует файл внутри FileSet (по порядку добавления).
type FileID uint32

// FileFlags records what Load had to change in the raw bytes.
type FileFlags uint8

const (
	// FileVirtual: содержимое пришло не с диска (тест, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File is one loaded .fire source after normalisation.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the byte offset of every '\n'.
	LineIdx []uint32
	// Hash is sha256 of Content; the token cache is keyed by it.
	Hash  [32]byte
	Flags FileFlags
}

// LineCol is a 1-based line and column, columns counted in bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Span is a half-open byte range [Start, End) of one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start >= s.End }

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("#%d[%d:%d]", s.File, s.Start, s.End)
}
