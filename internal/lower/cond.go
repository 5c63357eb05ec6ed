package lower

import (
	"fire/internal/ast"
	"fire/internal/kindling"
)

// cond lowers e to an if-var template. Code is left for the caller to fill.
func (c *fnCtx) cond(e ast.Expr) (kindling.If, error) {
	if call, ok := e.(*ast.DynamicMethodCall); ok {
		if op, ok := comparisons[call.Method]; ok && len(call.Args) == 1 {
			a, err := c.expr(call.Receiver)
			if err != nil {
				return kindling.If{}, err
			}
			b, err := c.expr(call.Args[0])
			if err != nil {
				return kindling.If{}, err
			}
			return ifVar(op, a, b), nil
		}
		switch {
		case call.Method == "not" && len(call.Args) == 0:
			inner, err := c.cond(call.Receiver)
			if err != nil {
				return kindling.If{}, err
			}
			inner.Invert = !inner.Invert
			return inner, nil
		case call.Method == "and" && len(call.Args) == 1:
			return c.logical(call, true)
		case call.Method == "or" && len(call.Args) == 1:
			return c.logical(call, false)
		}
	}
	v, err := c.expr(e)
	if err != nil {
		return kindling.If{}, err
	}
	return ifVar("=", v, trueArg), nil
}

// logical lowers && and || with short circuit: the right side is computed
// only inside the branch where it matters. The result lands in a temp.
func (c *fnCtx) logical(call *ast.DynamicMethodCall, and bool) (kindling.If, error) {
	left, err := c.cond(call.Receiver)
	if err != nil {
		return kindling.If{}, err
	}
	t := c.temp()
	start, other := falseArg, trueArg
	if !and {
		start, other = trueArg, falseArg
		left.Invert = !left.Invert
	}
	c.emit(kindling.SetVar("=", "", t, start))
	// and: left истинно -> считаем правую часть; or: left ложно -> считаем правую часть
	left.Code, err = c.nested(func() error {
		right, err := c.cond(call.Args[0])
		if err != nil {
			return err
		}
		if !and {
			right.Invert = !right.Invert
		}
		right.Code = []kindling.Action{kindling.SetVar("=", "", t, other)}
		c.emit(right)
		return nil
	})
	if err != nil {
		return kindling.If{}, err
	}
	c.emit(left)
	return ifVar("=", t, trueArg), nil
}

func ifVar(op string, a, b kindling.Argument) kindling.If {
	return kindling.If{
		Kind: kindling.IfVariable,
		Type: op,
		Args: []kindling.Argument{a, b},
	}
}
