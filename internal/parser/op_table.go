package parser

import "fire/internal/token"

// Operator precedence levels (higher number = tighter binding)
const (
	precNone = iota
	precLogicalOr
	precLogicalAnd
	precEquality
	precComparison
	precAdditive
	precMultiplicative
)

type binaryOp struct {
	prec   int
	method string
}

// getBinaryOp returns precedence and desugared method name; prec is precNone for non-operators.
func getBinaryOp(kind token.Kind) binaryOp {
	switch kind {
	case token.OrOr:
		return binaryOp{precLogicalOr, "or"}
	case token.AndAnd:
		return binaryOp{precLogicalAnd, "and"}
	case token.EqEq:
		return binaryOp{precEquality, "eq"}
	case token.BangEq:
		return binaryOp{precEquality, "ne"}
	case token.Lt:
		return binaryOp{precComparison, "lt"}
	case token.LtEq:
		return binaryOp{precComparison, "le"}
	case token.Gt:
		return binaryOp{precComparison, "gt"}
	case token.GtEq:
		return binaryOp{precComparison, "ge"}
	case token.Plus:
		return binaryOp{precAdditive, "add"}
	case token.Minus:
		return binaryOp{precAdditive, "sub"}
	case token.Amp:
		return binaryOp{precAdditive, "concat"}
	case token.Star:
		return binaryOp{precMultiplicative, "mul"}
	case token.Slash:
		return binaryOp{precMultiplicative, "div"}
	case token.Percent:
		return binaryOp{precMultiplicative, "rem"}
	default:
		return binaryOp{}
	}
}

func getUnaryMethod(kind token.Kind) (string, bool) {
	switch kind {
	case token.Bang:
		return "not", true
	case token.Minus:
		return "neg", true
	default:
		return "", false
	}
}
