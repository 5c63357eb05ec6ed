package ast

import "fire/internal/token"

// Stmt is any statement node.
type Stmt interface {
	Position() token.Position
	stmtNode()
}

type Block struct {
	Pos   token.Position
	Stmts []Stmt
}

// VarDef is `let x[: T] = value;`.
type VarDef struct {
	Pos     token.Position
	Name    string
	Type    *TypeRef
	Value   Expr
	Mutable bool
}

// ConstDef is `let! x[: T] = value;`.
type ConstDef struct {
	Pos   token.Position
	Name  string
	Type  *TypeRef
	Value Expr
}

// Return has a nil Value for a bare `return;`.
type Return struct {
	Pos   token.Position
	Value Expr
}

type Break struct {
	Pos token.Position
}

type Continue struct {
	Pos token.Position
}

// KindlingInsert is `__kindling "..."`; Text is passed to the output verbatim.
type KindlingInsert struct {
	Pos  token.Position
	Text string
}

// If has no else branch in the current grammar.
type If struct {
	Pos  token.Position
	Cond Expr
	Body Stmt
}

// For is `for (x in iter) body`.
type For struct {
	Pos  token.Position
	Var  *Variable
	Iter Expr
	Body Stmt
}

type While struct {
	Pos  token.Position
	Cond Expr
	Body Stmt
}

// CallStmt is a call evaluated for its effect.
type CallStmt struct {
	Pos  token.Position
	Call Expr
}

// ExprStmt is any other expression followed by `;`.
type ExprStmt struct {
	Pos  token.Position
	Expr Expr
}

func (s *Block) Position() token.Position          { return s.Pos }
func (s *VarDef) Position() token.Position         { return s.Pos }
func (s *ConstDef) Position() token.Position       { return s.Pos }
func (s *Return) Position() token.Position         { return s.Pos }
func (s *Break) Position() token.Position          { return s.Pos }
func (s *Continue) Position() token.Position       { return s.Pos }
func (s *KindlingInsert) Position() token.Position { return s.Pos }
func (s *If) Position() token.Position             { return s.Pos }
func (s *For) Position() token.Position            { return s.Pos }
func (s *While) Position() token.Position          { return s.Pos }
func (s *CallStmt) Position() token.Position       { return s.Pos }
func (s *ExprStmt) Position() token.Position       { return s.Pos }

func (*Block) stmtNode()          {}
func (*VarDef) stmtNode()         {}
func (*ConstDef) stmtNode()       {}
func (*Return) stmtNode()         {}
func (*Break) stmtNode()          {}
func (*Continue) stmtNode()       {}
func (*KindlingInsert) stmtNode() {}
func (*If) stmtNode()             {}
func (*For) stmtNode()            {}
func (*While) stmtNode()          {}
func (*CallStmt) stmtNode()       {}
func (*ExprStmt) stmtNode()       {}
