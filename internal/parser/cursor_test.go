package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fire/internal/diag"
	"fire/internal/token"
)

func TestCursorPeekAndNext(t *testing.T) {
	toks := []token.Token{
		{Kind: token.KwLet, Line: 1, Column: 0, Width: 3, Text: "let"},
		{Kind: token.Ident, Line: 1, Column: 4, Width: 1, Text: "a"},
	}
	cur := NewCursor(toks)

	require.Equal(t, token.Position{Line: 1, Column: 0}, cur.Position())
	require.True(t, cur.HasNext())

	tok, ok := cur.Peek(1)
	require.True(t, ok)
	require.Equal(t, token.Ident, tok.Kind)
	_, ok = cur.Peek(2)
	require.False(t, ok)
	_, ok = cur.Peek(-1)
	require.False(t, ok)

	tok, err := cur.Next()
	require.NoError(t, err)
	require.Equal(t, token.KwLet, tok.Kind)
	require.Equal(t, token.Position{Line: 1, Column: 3}, cur.Position())

	_, err = cur.Next()
	require.NoError(t, err)
	require.False(t, cur.HasNext())
	require.Equal(t, token.Position{Line: 1, Column: 5}, cur.Position())
	require.Equal(t, token.Invalid, cur.PeekKind(0))
}

func TestCursorExhausted(t *testing.T) {
	cur := NewCursor([]token.Token{{Kind: token.Semicolon, Line: 3, Column: 7, Width: 1}})
	_, err := cur.Next()
	require.NoError(t, err)

	_, err = cur.Next()
	var missing *MissingTokenError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, diag.SynUnexpectedEnd, missing.DiagCode())
	require.Equal(t, token.Position{Line: 3, Column: 8}, missing.Pos())
	require.Zero(t, missing.Width())
}

func TestCursorEmpty(t *testing.T) {
	cur := NewCursor(nil)
	require.False(t, cur.HasNext())
	_, err := cur.Next()
	require.Error(t, err)
	require.Equal(t, "1:0: unexpected end of input", err.Error())
}
