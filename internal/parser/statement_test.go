package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/parser"
)

func TestVariableStatements(t *testing.T) {
	v, ok := parseStmt(t, "let x = 1;").(*ast.VarDef)
	require.True(t, ok)
	require.Equal(t, "x", v.Name)
	require.True(t, v.Mutable)
	require.Nil(t, v.Type)
	require.Equal(t, "1", render(v.Value))

	c, ok := parseStmt(t, "let! y: Int = a + 2;").(*ast.ConstDef)
	require.True(t, ok)
	require.Equal(t, "y", c.Name)
	require.NotNil(t, c.Type)
	require.Equal(t, "Int", c.Type.Name)
	require.Equal(t, "a.add(2)", render(c.Value))
}

func TestControlStatements(t *testing.T) {
	ret, ok := parseStmt(t, "return;").(*ast.Return)
	require.True(t, ok)
	require.Nil(t, ret.Value)

	ret, ok = parseStmt(t, "return a + 1;").(*ast.Return)
	require.True(t, ok)
	require.Equal(t, "a.add(1)", render(ret.Value))

	_, ok = parseStmt(t, "break;").(*ast.Break)
	require.True(t, ok)
	_, ok = parseStmt(t, "continue;").(*ast.Continue)
	require.True(t, ok)

	ifs, ok := parseStmt(t, "if (a < 3) { b(); }").(*ast.If)
	require.True(t, ok)
	require.Equal(t, "a.lt(3)", render(ifs.Cond))
	body, ok := ifs.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Stmts, 1)
	require.IsType(t, &ast.CallStmt{}, body.Stmts[0])

	loop, ok := parseStmt(t, "for (i in range(10)) print(i);").(*ast.For)
	require.True(t, ok)
	require.Equal(t, "i", loop.Var.Name)
	require.Equal(t, "range(10)", render(loop.Iter))
	require.IsType(t, &ast.CallStmt{}, loop.Body)

	w, ok := parseStmt(t, "while (true) {}").(*ast.While)
	require.True(t, ok)
	require.Equal(t, "true", render(w.Cond))
	require.Empty(t, w.Body.(*ast.Block).Stmts)
}

func TestKindlingInsert(t *testing.T) {
	k, ok := parseStmt(t, `__kindling "( raw 1 )";`).(*ast.KindlingInsert)
	require.True(t, ok)
	require.Equal(t, "( raw 1 )", k.Text)

	// без строки это обычный вызов
	call, ok := parseStmt(t, "__kindling(1);").(*ast.CallStmt)
	require.True(t, ok)
	require.Equal(t, "__kindling(1)", render(call.Call))
}

func TestExpressionStatements(t *testing.T) {
	s, ok := parseStmt(t, "a = 1;").(*ast.ExprStmt)
	require.True(t, ok)
	require.IsType(t, &ast.Assign{}, s.Expr)

	s, ok = parseStmt(t, "x;").(*ast.ExprStmt)
	require.True(t, ok)
	require.Equal(t, "x", render(s.Expr))

	c, ok := parseStmt(t, "a.push(1);").(*ast.CallStmt)
	require.True(t, ok)
	require.Equal(t, "a.push(1)", render(c.Call))

	blk, ok := parseStmt(t, "{ let a = 1; { a; } }").(*ast.Block)
	require.True(t, ok)
	require.Len(t, blk.Stmts, 2)
	require.IsType(t, &ast.Block{}, blk.Stmts[1])
}

func stmtErr(t *testing.T, src string) parser.Error {
	t.Helper()
	_, err := parser.ParseStatement(tokens(t, src))
	require.Error(t, err)
	var perr parser.Error
	require.True(t, errors.As(err, &perr), "got %T", err)
	return perr
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
		msg  string
	}{
		{"let = 1;", diag.SynExpectIdentifier, "expected variable name"},
		{"let! a;", diag.SynUnexpectedToken, "expected `=`"},
		{"return 1", diag.SynUnexpectedEnd, "expected `;`"},
		{"for (i of x) {}", diag.SynUnexpectedToken, "expected `in`"},
		{"if (a) b(); else c();", diag.SynUnexpectedToken, "`else` branches are not supported"},
		{"{ a; ", diag.SynUnexpectedEnd, "expected `}`"},
		{"a += 1;", diag.SynCompoundAssign, "compound assignment"},
		{"fn", diag.SynExpectStatement, "not a statement"},
		{"let x: 1 = 2;", diag.SynExpectType, "expected a type"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			err := stmtErr(t, tt.src)
			require.Equal(t, tt.code, err.DiagCode())
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}
