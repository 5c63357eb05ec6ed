package source

import (
	"crypto/sha256"
	"os"
)

// FileSet owns every file of one compilation. FileIDs are dense and
// never reused; re-adding a path appends a new version.
type FileSet struct {
	files   []File
	latest  map[string]FileID
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{latest: make(map[string]FileID)}
}

// NewFileSetWithBase is NewFileSet with relative paths printed against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir defaults to the working directory.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	return workingDir()
}

func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	path = normalizePath(path)
	id := FileID(u32(len(fs.files)))
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.latest[path] = id
	return id
}

func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Load reads path and normalises it the way Normalize does.
func (fs *FileSet) Load(path string) (FileID, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := Normalize(raw)
	return fs.Add(path, content, flags), nil
}

// Normalize strips a UTF-8 BOM, folds CRLF to LF and rewrites to NFC.
// Flags say which of those actually changed something.
func Normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	steps := []struct {
		apply func([]byte) ([]byte, bool)
		flag  FileFlags
	}{
		{removeBOM, FileHadBOM},
		{normalizeCRLF, FileNormalizedCRLF},
		{normalizeNFC, FileNormalizedNFC},
	}
	for _, s := range steps {
		var changed bool
		if content, changed = s.apply(content); changed {
			flags |= s.flag
		}
	}
	return content, flags
}

func (fs *FileSet) Get(id FileID) *File { return &fs.files[id] }

func (fs *FileSet) Len() int { return len(fs.files) }

// GetByPath returns the newest version of path.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := fs.latest[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return &fs.files[id], true
}

// Resolve turns a span into 1-based line/column pairs.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fs.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}
