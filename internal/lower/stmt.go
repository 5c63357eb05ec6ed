package lower

import (
	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/kindling"
)

func (c *fnCtx) block(b *ast.Block) error {
	for _, s := range b.Stmts {
		if err := c.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *fnCtx) stmt(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.Block:
		return c.scoped(func() error { return c.block(s) })
	case *ast.VarDef:
		return c.define(s.Name, s.Value)
	case *ast.ConstDef:
		// литерал сворачивается в места использования
		if lit, ok := literal(s.Value); ok {
			c.consts[s.Name] = lit
			return nil
		}
		return c.define(s.Name, s.Value)
	case *ast.Return:
		if s.Value == nil {
			c.emit(kindling.Return{})
			return nil
		}
		v, err := c.expr(s.Value)
		if err != nil {
			return err
		}
		c.emit(kindling.Return{Arg: v})
		return nil
	case *ast.Break:
		if c.loops == 0 {
			return c.errorf(diag.LowerUnsupported, s.Pos, "break outside of a loop")
		}
		c.emit(kindling.Control("StopRepeat", ""))
		return nil
	case *ast.Continue:
		if c.loops == 0 {
			return c.errorf(diag.LowerUnsupported, s.Pos, "continue outside of a loop")
		}
		c.emit(kindling.Control("Skip", ""))
		return nil
	case *ast.KindlingInsert:
		c.emit(kindling.Raw{Text: s.Text})
		return nil
	case *ast.If:
		return c.ifStmt(s)
	case *ast.While:
		return c.whileStmt(s)
	case *ast.For:
		return c.forStmt(s)
	case *ast.CallStmt:
		_, err := c.call(s.Call, false)
		return err
	case *ast.ExprStmt:
		_, err := c.expr(s.Expr)
		return err
	default:
		return c.errorf(diag.LowerUnsupported, s.Position(), "unsupported statement %T", s)
	}
}

func (c *fnCtx) define(name string, value ast.Expr) error {
	v, err := c.expr(value)
	if err != nil {
		return err
	}
	delete(c.consts, name)
	c.locals[name] = true
	c.emit(kindling.SetVar("=", "", kindling.FunctionVar{Name: name}, v))
	return nil
}

func (c *fnCtx) ifStmt(s *ast.If) error {
	cond, err := c.cond(s.Cond)
	if err != nil {
		return err
	}
	cond.Code, err = c.body(s.Body)
	if err != nil {
		return err
	}
	c.emit(cond)
	return nil
}

// whileStmt: если условие само порождает действия, оно пересчитывается в начале
// каждой итерации внутри Forever.
func (c *fnCtx) whileStmt(s *ast.While) error {
	var cond kindling.If
	pre, err := c.nested(func() error {
		var err error
		cond, err = c.cond(s.Cond)
		return err
	})
	if err != nil {
		return err
	}
	c.loops++
	body, err := c.body(s.Body)
	c.loops--
	if err != nil {
		return err
	}
	if len(pre) == 0 {
		c.emit(kindling.Repeat{
			Type:   "While",
			Sub:    cond.Type,
			Invert: cond.Invert,
			Args:   cond.Args,
			Code:   body,
		})
		return nil
	}
	cond.Invert = !cond.Invert
	cond.Code = []kindling.Action{kindling.Control("StopRepeat", "")}
	code := append(pre, cond)
	code = append(code, body...)
	c.emit(kindling.Repeat{Type: "Forever", Code: code})
	return nil
}

func (c *fnCtx) forStmt(s *ast.For) error {
	iter, err := c.expr(s.Iter)
	if err != nil {
		return err
	}
	c.loops++
	// переменная цикла видна только в теле
	body, err := c.nested(func() error {
		return c.scoped(func() error {
			delete(c.consts, s.Var.Name)
			c.locals[s.Var.Name] = true
			return c.stmt(s.Body)
		})
	})
	c.loops--
	if err != nil {
		return err
	}
	c.emit(kindling.Repeat{
		Type: "ForEach",
		Args: []kindling.Argument{kindling.FunctionVar{Name: s.Var.Name}, iter},
		Code: body,
	})
	return nil
}
