package driver

import (
	"errors"
	"fmt"

	"fire/internal/diag"
	"fire/internal/lexer"
	"fire/internal/lower"
	"fire/internal/parser"
	"fire/internal/program"
	"fire/internal/resource"
	"fire/internal/source"
	"fire/internal/token"
)

// fileStart — пустой спан в начале файла для ошибок без позиции.
func fileStart(f *source.File) source.Span {
	return source.Span{File: f.ID}
}

func spanAt(f *source.File, pos token.Position, width uint32) source.Span {
	if pos.Line == 0 {
		return fileStart(f)
	}
	return f.SpanAt(pos.Line, pos.Column, width)
}

func lexDiagnostic(f *source.File, err error) diag.Diagnostic {
	var le *lexer.Error
	if errors.As(err, &le) {
		return diag.NewError(le.Code, f.SpanAt(le.Line, le.Column, 1), le.Msg)
	}
	return diag.NewError(diag.UnknownCode, fileStart(f), err.Error())
}

func parseDiagnostic(f *source.File, err error) diag.Diagnostic {
	var pe parser.Error
	if errors.As(err, &pe) {
		return diag.NewError(pe.DiagCode(), spanAt(f, pe.Pos(), pe.Width()), pe.Msg())
	}
	return diag.NewError(diag.UnknownCode, fileStart(f), err.Error())
}

// fileIndex maps file-level resource locations back to loaded source files.
type fileIndex struct {
	fs    *source.FileSet
	locs  []resource.Location
	files []source.FileID
}

func newFileIndex(fs *source.FileSet, results []*FileResult) *fileIndex {
	idx := &fileIndex{fs: fs}
	for _, r := range results {
		if r.Location.IsZero() {
			continue
		}
		idx.locs = append(idx.locs, r.Location)
		idx.files = append(idx.files, r.FileID)
	}
	return idx
}

// fileOf ищет файл с самым длинным префиксом loc.
func (idx *fileIndex) fileOf(loc resource.Location) (*source.File, bool) {
	best := -1
	for i, l := range idx.locs {
		if loc.HasPrefix(l) && (best < 0 || l.Len() > idx.locs[best].Len()) {
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	return idx.fs.Get(idx.files[best]), true
}

// diagnostic converts registration and lowering errors, locating the file
// through the error's resource location.
func (idx *fileIndex) diagnostic(err error) diag.Diagnostic {
	loc, ok := errLocation(err)
	if !ok {
		return diag.NewError(diag.UnknownCode, source.Span{}, err.Error())
	}
	f, ok := idx.fileOf(loc)
	if !ok {
		return diag.NewError(codeOf(err), source.Span{}, fmt.Sprintf("%s: %v", loc, err))
	}
	return fileDiagnostic(f, err)
}

func errLocation(err error) (resource.Location, bool) {
	var pe *program.Error
	if errors.As(err, &pe) {
		return pe.Loc, true
	}
	var le *lower.Error
	if errors.As(err, &le) {
		return le.Loc, true
	}
	return resource.Location{}, false
}

func codeOf(err error) diag.Code {
	var pe *program.Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	var le *lower.Error
	if errors.As(err, &le) {
		return le.Code
	}
	return diag.UnknownCode
}

// fileDiagnostic converts a program or lower error that is known to belong to f.
func fileDiagnostic(f *source.File, err error) diag.Diagnostic {
	var pe *program.Error
	if errors.As(err, &pe) {
		return diag.NewError(pe.Code, spanAt(f, pe.Pos, 1), pe.Err.Error())
	}
	var le *lower.Error
	if errors.As(err, &le) {
		return diag.NewError(le.Code, spanAt(f, le.Pos, 1), le.Msg)
	}
	return diag.NewError(diag.UnknownCode, fileStart(f), err.Error())
}
