package lower

import (
	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/kindling"
	"fire/internal/token"
)

// arithmetic maps desugared operator methods onto set-var actions.
var arithmetic = map[string]string{
	"add":    "+",
	"sub":    "-",
	"mul":    "x",
	"div":    "/",
	"rem":    "%",
	"concat": "String",
}

// comparisons maps operator methods onto if-var sub-actions.
var comparisons = map[string]string{
	"eq": "=",
	"ne": "!=",
	"lt": "<",
	"le": "<=",
	"gt": ">",
	"ge": ">=",
}

func isLogical(method string) bool {
	return method == "and" || method == "or" || method == "not"
}

var (
	falseArg = kindling.NumberArg{Number: 0}
	trueArg  = kindling.NumberArg{Number: 1}
)

// literal returns the constant argument for a literal expression.
// A string with both quote kinds has no Kindling spelling and is not a literal.
func literal(e ast.Expr) (kindling.Argument, bool) {
	switch e := e.(type) {
	case *ast.IntLit:
		return kindling.NumberArg{Number: float64(e.Value)}, true
	case *ast.FloatLit:
		return kindling.NumberArg{Number: e.Value}, true
	case *ast.StringLit:
		if _, ok := kindling.Quote(e.Value); !ok {
			return nil, false
		}
		return kindling.TextArg{Text: e.Value}, true
	case *ast.BoolLit:
		if e.Value {
			return trueArg, true
		}
		return falseArg, true
	default:
		return nil, false
	}
}

func (c *fnCtx) unquotable(pos token.Position) error {
	return c.errorf(diag.LowerUnsupported, pos, "string holds both ' and \" and cannot be quoted in Kindling")
}

// expr lowers e to an argument, emitting whatever actions compute it.
func (c *fnCtx) expr(e ast.Expr) (kindling.Argument, error) {
	if lit, ok := literal(e); ok {
		return lit, nil
	}
	switch e := e.(type) {
	case *ast.StringLit:
		return nil, c.unquotable(e.Pos)
	case *ast.This:
		if c.owner == nil {
			return nil, c.errorf(diag.LowerUnsupported, e.Pos, "`this` outside of a method")
		}
		return kindling.FunctionVar{Name: thisVar}, nil
	case *ast.Variable:
		return c.variable(e)
	case *ast.Assign:
		return c.assign(e)
	case *ast.DynamicMethodCall:
		if op, ok := arithmetic[e.Method]; ok && len(e.Args) == 1 {
			return c.binary(op, e.Receiver, e.Args[0])
		}
		if e.Method == "neg" && len(e.Args) == 0 {
			return c.binary("-", &ast.IntLit{Pos: e.Pos}, e.Receiver)
		}
		if _, ok := comparisons[e.Method]; ok || isLogical(e.Method) {
			return c.boolValue(e)
		}
		return c.call(e, true)
	case *ast.StaticFunctionCall, *ast.StaticMethodCall:
		return c.call(e, true)
	default:
		return nil, c.errorf(diag.LowerUnsupported, e.Position(), "unsupported expression %T", e)
	}
}

func (c *fnCtx) variable(v *ast.Variable) (kindling.Argument, error) {
	if lit, ok := c.consts[v.Name]; ok {
		return lit, nil
	}
	if c.locals[v.Name] {
		return kindling.FunctionVar{Name: v.Name}, nil
	}
	if g, ok := c.global(v.Name); ok {
		if g.Const {
			if lit, ok := literal(g.Value); ok {
				return lit, nil
			}
			if _, ok := g.Value.(*ast.StringLit); ok {
				return nil, c.unquotable(v.Pos)
			}
		}
		return kindling.GameVar{Name: g.Location().String()}, nil
	}
	return nil, c.errorf(diag.LowerUnknownVar, v.Pos, "unknown variable `%s`", v.Name)
}

func (c *fnCtx) global(name string) (*ast.GlobalVar, bool) {
	def, err := c.l.prog.ResolveName(c.file, name)
	if err != nil {
		return nil, false
	}
	g, ok := def.(*ast.GlobalVar)
	return g, ok
}

func (c *fnCtx) assign(a *ast.Assign) (kindling.Argument, error) {
	value, err := c.expr(a.Value)
	if err != nil {
		return nil, err
	}
	var target kindling.Argument
	switch {
	case c.locals[a.Target.Name]:
		target = kindling.FunctionVar{Name: a.Target.Name}
	case c.consts[a.Target.Name] != nil:
		return nil, c.errorf(diag.LowerUnsupported, a.Pos, "cannot assign to constant `%s`", a.Target.Name)
	default:
		g, ok := c.global(a.Target.Name)
		if !ok {
			return nil, c.errorf(diag.LowerUnknownVar, a.Target.Pos, "unknown variable `%s`", a.Target.Name)
		}
		if g.Const {
			return nil, c.errorf(diag.LowerUnsupported, a.Pos, "cannot assign to constant `%s`", a.Target.Name)
		}
		target = kindling.GameVar{Name: g.Location().String()}
	}
	c.emit(kindling.SetVar("=", "", target, value))
	return target, nil
}

func (c *fnCtx) binary(op string, left, right ast.Expr) (kindling.Argument, error) {
	a, err := c.expr(left)
	if err != nil {
		return nil, err
	}
	b, err := c.expr(right)
	if err != nil {
		return nil, err
	}
	t := c.temp()
	c.emit(kindling.SetVar(op, "", t, a, b))
	return t, nil
}

// boolValue materialises a condition as 1 or 0 in a temp.
func (c *fnCtx) boolValue(e ast.Expr) (kindling.Argument, error) {
	cond, err := c.cond(e)
	if err != nil {
		return nil, err
	}
	t := c.temp()
	c.emit(kindling.SetVar("=", "", t, falseArg))
	cond.Code = []kindling.Action{kindling.SetVar("=", "", t, trueArg)}
	c.emit(cond)
	return t, nil
}
