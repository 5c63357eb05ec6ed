package parser_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"fire/internal/ast"
	"fire/internal/lexer"
	"fire/internal/parser"
	"fire/internal/resource"
	"fire/internal/token"
)

var testFile = resource.MustLocation("test")

func tokens(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	require.NoError(t, err, "tokenize %q", src)
	return toks
}

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(testFile, tokens(t, src))
	require.NoError(t, err, "parse %q", src)
	return file
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseExpression(tokens(t, src))
	require.NoError(t, err, "parse %q", src)
	return expr
}

func parseStmt(t *testing.T, src string) ast.Stmt {
	t.Helper()
	stmt, err := parser.ParseStatement(tokens(t, src))
	require.NoError(t, err, "parse %q", src)
	return stmt
}

// parseErr parses src as a file and returns the parser error.
func parseErr(t *testing.T, src string) parser.Error {
	t.Helper()
	_, err := parser.ParseFile(testFile, tokens(t, src))
	require.Error(t, err, "parse %q", src)
	var perr parser.Error
	require.True(t, errors.As(err, &perr), "want parser.Error, got %T", err)
	return perr
}

// render печатает выражение в виде вызовов, чтобы сравнивать деревья строкой.
func render(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.BoolLit:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.IntLit:
		return strconv.FormatInt(e.Value, 10)
	case *ast.FloatLit:
		return "float"
	case *ast.StringLit:
		return `"` + e.Value + `"`
	case *ast.This:
		return "this"
	case *ast.Variable:
		return e.Name
	case *ast.Assign:
		return e.Target.Name + "=" + render(e.Value)
	case *ast.StaticFunctionCall:
		return e.Name + renderArgs(e.Args)
	case *ast.StaticMethodCall:
		return e.Type.String() + "::" + e.Method + renderArgs(e.Args)
	case *ast.DynamicMethodCall:
		return render(e.Receiver) + "." + e.Method + renderArgs(e.Args)
	default:
		return "?"
	}
}

func renderArgs(args []ast.Expr) string {
	s := "("
	for i, a := range args {
		if i > 0 {
			s += ","
		}
		s += render(a)
	}
	return s + ")"
}
