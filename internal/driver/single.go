package driver

import (
	"path/filepath"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/lexer"
	"fire/internal/parser"
	"fire/internal/source"
	"fire/internal/token"
)

// Single is one file processed outside of a source directory, as
// `fire tokenize <file>` and `fire parse <file>` do.
type Single struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	// AST is nil after Tokenize or when lexing/parsing failed.
	AST *ast.File
	Bag *diag.Bag
}

// Tokenize loads and lexes path. Lexical errors go to Bag; the error
// return is for I/O only.
func Tokenize(path string, maxDiagnostics int) (*Single, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	s := &Single{FileSet: fs, File: fs.Get(id), Bag: diag.NewBag(maxDiagnostics)}
	toks, lexErr := lexer.Tokenize(s.File.Content)
	if lexErr != nil {
		s.Bag.Add(lexDiagnostic(s.File, lexErr))
	}
	s.Tokens = toks
	return s, nil
}

// Parse goes one step further than Tokenize. Definitions are placed under
// the file's base name, as if it were alone in its directory.
func Parse(path string, maxDiagnostics int) (*Single, error) {
	s, err := Tokenize(path, maxDiagnostics)
	if err != nil || s.Bag.HasErrors() {
		return s, err
	}
	loc, err := LocationFor(filepath.Dir(path), path)
	if err != nil {
		s.Bag.Add(diag.NewError(diag.ResInvalidPath, fileStart(s.File), err.Error()))
		return s, nil
	}
	if s.AST, err = parser.ParseFile(loc, s.Tokens); err != nil {
		s.Bag.Add(parseDiagnostic(s.File, err))
	}
	return s, nil
}
