// Package ast defines the Fire syntax tree.
//
// Three closed families: Expr, Stmt and Definition. Each is an interface with
// an unexported marker method, so only this package can add variants and a
// type switch over them is exhaustive by construction. Nodes are built once by
// the parser and never mutated; every node records the position of its first
// token.
//
// Binary and unary operators do not have nodes of their own: the parser
// desugars `a + b` into DynamicMethodCall{Receiver: a, Method: "add"}.
package ast
