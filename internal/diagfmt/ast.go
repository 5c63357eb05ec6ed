package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fire/internal/ast"
	"fire/internal/token"
)

// ASTNodeOutput is one node of the JSON tree dump.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Pos      string          `json:"pos,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

type treeNode struct {
	typ      string
	text     string
	pos      string
	children []*treeNode
}

func (n *treeNode) add(children ...*treeNode) *treeNode {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

func (n *treeNode) label() string {
	var b strings.Builder
	b.WriteString(n.typ)
	if n.text != "" {
		b.WriteString(": ")
		b.WriteString(n.text)
	}
	if n.pos != "" {
		fmt.Fprintf(&b, " (%s)", n.pos)
	}
	return b.String()
}

func (n *treeNode) output() ASTNodeOutput {
	out := ASTNodeOutput{Type: n.typ, Text: n.text, Pos: n.pos}
	for _, c := range n.children {
		out.Children = append(out.Children, c.output())
	}
	return out
}

func leaf(typ, text string, pos token.Position) *treeNode {
	return &treeNode{typ: typ, text: text, pos: pos.String()}
}

// FormatASTPretty печатает дерево файла с ветками ├─ / └─.
func FormatASTPretty(w io.Writer, file *ast.File) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	root := fileNode(file)
	if _, err := fmt.Fprintln(w, root.label()); err != nil {
		return err
	}
	return writeChildren(w, root, "")
}

func writeChildren(w io.Writer, n *treeNode, prefix string) error {
	for i, c := range n.children {
		branch, next := "├─ ", "│  "
		if i == len(n.children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, c.label()); err != nil {
			return err
		}
		if err := writeChildren(w, c, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func FormatASTJSON(w io.Writer, file *ast.File) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fileNode(file).output())
}

func fileNode(file *ast.File) *treeNode {
	root := &treeNode{typ: "File", text: file.Location.String()}
	for _, imp := range file.Imports {
		root.add(leaf("Import", imp.Path.String(), imp.Pos))
	}
	for _, def := range file.Definitions {
		root.add(defNode(def))
	}
	return root
}

func defNode(def ast.Definition) *treeNode {
	n := leaf(titleKind(def), def.Location().Head().String(), def.Position())
	for _, a := range def.Annotations() {
		n.add(leaf("Annotation", "@"+a.Name, a.Pos))
	}
	switch d := def.(type) {
	case *ast.Function:
		n.add(paramsNode(d.Params), returnNode(d.Return), blockNode(d.Body))
	case *ast.Method:
		if d.Mutable {
			n.add(&treeNode{typ: "Mutable"})
		}
		n.add(paramsNode(d.Params), returnNode(d.Return))
		if d.Body != nil {
			n.add(blockNode(d.Body))
		}
	case *ast.Process:
		n.add(paramsNode(d.Params), blockNode(d.Body))
	case *ast.Field:
		n.add(typeNode("Type", d.Type))
	case *ast.Struct:
		for _, impl := range d.Impls {
			n.add(typeNode("Impl", impl))
		}
		for _, f := range d.Fields {
			n.add(defNode(f))
		}
		for _, m := range d.Methods {
			n.add(defNode(m))
		}
	case *ast.Trait:
		for _, m := range d.Methods {
			n.add(defNode(m))
		}
	case *ast.Enum:
		for _, v := range d.Variants {
			n.add(defNode(v))
		}
		for _, m := range d.Methods {
			n.add(defNode(m))
		}
	case *ast.EnumVariant:
		n.text += " = " + strconv.Itoa(d.Index)
	case *ast.GlobalVar:
		if d.Const {
			n.add(&treeNode{typ: "Const"})
		}
		if d.Type != nil {
			n.add(typeNode("Type", *d.Type))
		}
		n.add(exprNode(d.Value))
	}
	return n
}

func titleKind(def ast.Definition) string {
	k := ast.KindName(def)
	words := strings.Fields(k)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, "")
}

func typeNode(typ string, t ast.TypeRef) *treeNode {
	return leaf(typ, t.String(), t.Pos)
}

func paramsNode(params []ast.Param) *treeNode {
	if len(params) == 0 {
		return nil
	}
	n := &treeNode{typ: "Params"}
	for _, p := range params {
		n.add(leaf("Param", p.Name+": "+p.Type.String(), p.Pos))
	}
	return n
}

func returnNode(t *ast.TypeRef) *treeNode {
	if t == nil {
		return nil
	}
	return typeNode("Return", *t)
}

func blockNode(b *ast.Block) *treeNode {
	n := &treeNode{typ: "Block", pos: b.Pos.String()}
	for _, s := range b.Stmts {
		n.add(stmtNode(s))
	}
	return n
}

func stmtNode(s ast.Stmt) *treeNode {
	switch s := s.(type) {
	case *ast.Block:
		return blockNode(s)
	case *ast.VarDef:
		return leaf("Let", s.Name, s.Pos).add(exprNode(s.Value))
	case *ast.ConstDef:
		return leaf("Const", s.Name, s.Pos).add(exprNode(s.Value))
	case *ast.Return:
		n := leaf("Return", "", s.Pos)
		if s.Value != nil {
			n.add(exprNode(s.Value))
		}
		return n
	case *ast.Break:
		return leaf("Break", "", s.Pos)
	case *ast.Continue:
		return leaf("Continue", "", s.Pos)
	case *ast.KindlingInsert:
		return leaf("Kindling", strconv.Quote(s.Text), s.Pos)
	case *ast.If:
		return leaf("If", "", s.Pos).add(exprNode(s.Cond), stmtNode(s.Body))
	case *ast.While:
		return leaf("While", "", s.Pos).add(exprNode(s.Cond), stmtNode(s.Body))
	case *ast.For:
		return leaf("For", s.Var.Name, s.Pos).add(exprNode(s.Iter), stmtNode(s.Body))
	case *ast.CallStmt:
		return leaf("CallStmt", "", s.Pos).add(exprNode(s.Call))
	case *ast.ExprStmt:
		return leaf("ExprStmt", "", s.Pos).add(exprNode(s.Expr))
	default:
		return leaf(fmt.Sprintf("%T", s), "", s.Position())
	}
}

func exprNode(e ast.Expr) *treeNode {
	switch e := e.(type) {
	case *ast.BoolLit:
		return leaf("Bool", strconv.FormatBool(e.Value), e.Pos)
	case *ast.IntLit:
		return leaf("Int", strconv.FormatInt(e.Value, 10), e.Pos)
	case *ast.FloatLit:
		return leaf("Float", strconv.FormatFloat(e.Value, 'g', -1, 64), e.Pos)
	case *ast.StringLit:
		return leaf("String", strconv.Quote(e.Value), e.Pos)
	case *ast.This:
		return leaf("This", "", e.Pos)
	case *ast.Variable:
		return leaf("Variable", e.Name, e.Pos)
	case *ast.Assign:
		return leaf("Assign", e.Target.Name, e.Pos).add(exprNode(e.Value))
	case *ast.StaticFunctionCall:
		return argsOf(leaf("Call", e.Name, e.Pos), e.Args)
	case *ast.StaticMethodCall:
		return argsOf(leaf("StaticCall", e.Type.String()+"."+e.Method, e.Pos), e.Args)
	case *ast.DynamicMethodCall:
		n := leaf("MethodCall", e.Method, e.Pos).add(exprNode(e.Receiver))
		return argsOf(n, e.Args)
	default:
		return leaf(fmt.Sprintf("%T", e), "", e.Position())
	}
}

func argsOf(n *treeNode, args []ast.Expr) *treeNode {
	for _, a := range args {
		n.add(exprNode(a))
	}
	return n
}
