package lower

import (
	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/kindling"
)

// call lowers a call expression. With wantValue the returned value is copied
// into a temp right after the call, before anything can overwrite (ret).
func (c *fnCtx) call(e ast.Expr, wantValue bool) (kindling.Argument, error) {
	switch e := e.(type) {
	case *ast.StaticFunctionCall:
		return c.staticFunction(e, wantValue)
	case *ast.StaticMethodCall:
		owner, err := c.typeOwner(e)
		if err != nil {
			return nil, err
		}
		target, err := c.l.prog.ResolveMember(owner, e.Method)
		if err != nil {
			return nil, c.errorf(diag.ResUnresolvedCall, e.Pos, "unknown method `%s.%s`", e.Type, e.Method)
		}
		args, err := c.args(e.Args)
		if err != nil {
			return nil, err
		}
		// слот (param 0) у статического вызова получает имя типа
		recv := kindling.TextArg{Text: owner.Location().String()}
		args = append([]kindling.Argument{recv}, args...)
		return c.invoke(target, args, wantValue, e)
	case *ast.DynamicMethodCall:
		if _, ok := e.Receiver.(*ast.This); !ok || c.owner == nil {
			return nil, c.errorf(diag.LowerUnsupported, e.Pos, "method `%s` can only be called on `this`", e.Method)
		}
		target, err := c.l.prog.ResolveMember(c.owner, e.Method)
		if err != nil {
			return nil, c.errorf(diag.ResUnresolvedCall, e.Pos, "unknown method `%s`", e.Method)
		}
		args, err := c.args(e.Args)
		if err != nil {
			return nil, err
		}
		args = append([]kindling.Argument{kindling.FunctionVar{Name: thisVar}}, args...)
		return c.invoke(target, args, wantValue, e)
	default:
		return c.expr(e)
	}
}

func (c *fnCtx) staticFunction(e *ast.StaticFunctionCall, wantValue bool) (kindling.Argument, error) {
	args, err := c.args(e.Args)
	if err != nil {
		return nil, err
	}
	target, rerr := c.l.prog.ResolveName(c.file, e.Name)
	if rerr != nil {
		if b, ok := builtins[e.Name]; ok {
			if wantValue {
				return nil, c.errorf(diag.LowerUnsupported, e.Pos, "`%s` has no value", e.Name)
			}
			return b(c, e, args)
		}
		return nil, c.errorf(diag.ResUnresolvedCall, e.Pos, "unknown function `%s`", e.Name)
	}
	return c.invoke(target, args, wantValue, e)
}

func (c *fnCtx) typeOwner(e *ast.StaticMethodCall) (ast.Definition, error) {
	if e.Type.This {
		if c.owner == nil {
			return nil, c.errorf(diag.LowerUnsupported, e.Pos, "`This` outside of a type")
		}
		return c.owner, nil
	}
	def, err := c.l.prog.ResolveName(c.file, e.Type.Name)
	if err != nil {
		return nil, c.errorf(diag.ResUnresolvedCall, e.Type.Pos, "unknown type `%s`", e.Type.Name)
	}
	if ast.Container(def) == nil {
		return nil, c.errorf(diag.ResNotAContainer, e.Type.Pos, "`%s` is a %s, not a type", e.Type.Name, ast.KindName(def))
	}
	return def, nil
}

func (c *fnCtx) args(exprs []ast.Expr) ([]kindling.Argument, error) {
	out := make([]kindling.Argument, 0, len(exprs))
	for _, e := range exprs {
		a, err := c.expr(e)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (c *fnCtx) invoke(target ast.Definition, args []kindling.Argument, wantValue bool, at ast.Expr) (kindling.Argument, error) {
	name := target.Location().String()
	switch target.(type) {
	case *ast.Function, *ast.Method:
		c.emit(kindling.Call(name, "", args...))
	case *ast.Process:
		if wantValue {
			return nil, c.errorf(diag.LowerUnsupported, at.Position(), "process `%s` has no value", name)
		}
		c.emit(kindling.Start(name, "", args...))
		return nil, nil
	default:
		return nil, c.errorf(diag.LowerUnsupported, at.Position(), "%s `%s` is not callable", ast.KindName(target), name)
	}
	if !wantValue {
		return nil, nil
	}
	t := c.temp()
	c.emit(kindling.SetVar("=", "", t, kindling.ReturnedValue{}))
	return t, nil
}
