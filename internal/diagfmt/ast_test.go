package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fire/internal/lexer"
	"fire/internal/parser"
	"fire/internal/resource"
)

func TestFormatASTPretty(t *testing.T) {
	toks, err := lexer.Tokenize([]byte("import lib::f;\n@event fn Join() { print(1 + 2); }"))
	require.NoError(t, err)
	file, err := parser.ParseFile(resource.MustLocation("main"), toks)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatASTPretty(&buf, file))
	want := `File: main
├─ Import: lib::f (1:7)
└─ Fn: Join (2:7)
   ├─ Annotation: @event (2:0)
   └─ Block (2:17)
      └─ CallStmt (2:19)
         └─ Call: print (2:19)
            └─ MethodCall: add (2:25)
               ├─ Int: 1 (2:25)
               └─ Int: 2 (2:29)
`
	assert.Equal(t, want, buf.String())
}

func TestFormatASTJSON(t *testing.T) {
	toks, err := lexer.Tokenize([]byte("let! x = true;"))
	require.NoError(t, err)
	file, err := parser.ParseFile(resource.MustLocation("main"), toks)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatASTJSON(&buf, file))
	var root ASTNodeOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &root))
	require.Len(t, root.Children, 1)
	v := root.Children[0]
	assert.Equal(t, "Var", v.Type)
	assert.Equal(t, "x", v.Text)
	require.Len(t, v.Children, 2)
	assert.Equal(t, "Const", v.Children[0].Type)
	assert.Equal(t, "true", v.Children[1].Text)
}

func TestFormatTokens(t *testing.T) {
	toks, err := lexer.Tokenize([]byte("let a = 1;"))
	require.NoError(t, err)

	var pretty bytes.Buffer
	require.NoError(t, FormatTokensPretty(&pretty, toks))
	assert.Contains(t, pretty.String(), `"a"`)
	assert.Contains(t, pretty.String(), " 1 at 1:8+1")

	var js bytes.Buffer
	require.NoError(t, FormatTokensJSON(&js, toks))
	var out []TokenOutput
	require.NoError(t, json.Unmarshal(js.Bytes(), &out))
	require.Len(t, out, len(toks))
	assert.Equal(t, "a", out[1].Text)
	assert.Equal(t, int64(1), out[3].Int)
}
