package ast

import "fire/internal/token"

// Expr is any expression node.
type Expr interface {
	Position() token.Position
	// Pure reports that evaluating the expression has no observable side effect.
	Pure() bool
	exprNode()
}

type BoolLit struct {
	Pos   token.Position
	Value bool
}

type IntLit struct {
	Pos   token.Position
	Value int64
}

type FloatLit struct {
	Pos   token.Position
	Value float64
}

type StringLit struct {
	Pos   token.Position
	Value string
}

// This is the `this` receiver.
type This struct {
	Pos token.Position
}

// Variable references a local, parameter or global by name.
type Variable struct {
	Pos  token.Position
	Name string
}

// Assign is `target = value`. Only plain `=` exists; compound forms are rejected by the parser.
type Assign struct {
	Pos    token.Position
	Target *Variable
	Value  Expr
}

// StaticFunctionCall is `name(args)`.
type StaticFunctionCall struct {
	Pos  token.Position
	Name string
	Args []Expr
}

// StaticMethodCall is `Type.method(args)` or `This.method(args)`.
type StaticMethodCall struct {
	Pos    token.Position
	Type   TypeRef
	Method string
	Args   []Expr
}

// DynamicMethodCall is `receiver.method(args)`; also the target of operator desugaring.
type DynamicMethodCall struct {
	Pos      token.Position
	Receiver Expr
	Method   string
	Args     []Expr
}

func (e *BoolLit) Position() token.Position            { return e.Pos }
func (e *IntLit) Position() token.Position             { return e.Pos }
func (e *FloatLit) Position() token.Position           { return e.Pos }
func (e *StringLit) Position() token.Position          { return e.Pos }
func (e *This) Position() token.Position               { return e.Pos }
func (e *Variable) Position() token.Position           { return e.Pos }
func (e *Assign) Position() token.Position             { return e.Pos }
func (e *StaticFunctionCall) Position() token.Position { return e.Pos }
func (e *StaticMethodCall) Position() token.Position   { return e.Pos }
func (e *DynamicMethodCall) Position() token.Position  { return e.Pos }

func (*BoolLit) Pure() bool            { return true }
func (*IntLit) Pure() bool             { return true }
func (*FloatLit) Pure() bool           { return true }
func (*StringLit) Pure() bool          { return true }
func (*This) Pure() bool               { return true }
func (*Variable) Pure() bool           { return true }
func (*Assign) Pure() bool             { return false }
func (*StaticFunctionCall) Pure() bool { return false }
func (*StaticMethodCall) Pure() bool   { return false }
func (*DynamicMethodCall) Pure() bool  { return false }

func (*BoolLit) exprNode()            {}
func (*IntLit) exprNode()             {}
func (*FloatLit) exprNode()           {}
func (*StringLit) exprNode()          {}
func (*This) exprNode()               {}
func (*Variable) exprNode()           {}
func (*Assign) exprNode()             {}
func (*StaticFunctionCall) exprNode() {}
func (*StaticMethodCall) exprNode()   {}
func (*DynamicMethodCall) exprNode()  {}

// IsCall reports whether e is one of the three call forms.
func IsCall(e Expr) bool {
	switch e.(type) {
	case *StaticFunctionCall, *StaticMethodCall, *DynamicMethodCall:
		return true
	default:
		return false
	}
}
