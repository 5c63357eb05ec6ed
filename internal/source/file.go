package source

import (
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
)

func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source: %d does not fit in uint32: %w", n, err))
	}
	return v
}

func (f *File) size() uint32 { return u32(len(f.Content)) }

// line возвращает байтовый диапазон строки n (1-based) без '\n'.
func (f *File) line(n uint32) (start, end uint32, ok bool) {
	lines := u32(len(f.LineIdx))
	if n == 0 || n > lines+1 {
		return 0, 0, false
	}
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	end = f.size()
	if n <= lines {
		end = f.LineIdx[n-1]
	}
	return start, end, true
}

// Offset maps a token position (line 1-based, byte column 0-based) to a
// byte offset, clamped to the line and to the file.
func (f *File) Offset(line, col uint32) uint32 {
	if line == 0 {
		return 0
	}
	start, end, ok := f.line(line)
	if !ok {
		return f.size()
	}
	return min(start+col, end)
}

// SpanAt is Offset plus width, clamped at EOF.
func (f *File) SpanAt(line, col, width uint32) Span {
	start := f.Offset(line, col)
	return Span{File: f.ID, Start: start, End: min(start+width, f.size())}
}

func (f *File) GetLine(n uint32) string {
	start, end, ok := f.line(n)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders Path for diagnostics: "absolute", "relative" (to
// baseDir), "basename" or "auto" (short paths as is, long absolute ones
// by base name).
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
	case "relative":
		if baseDir == "" {
			baseDir = workingDir()
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) >= 40 && filepath.IsAbs(f.Path) {
			return BaseName(f.Path)
		}
	}
	return f.Path
}
