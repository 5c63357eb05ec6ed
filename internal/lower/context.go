package lower

import (
	"fmt"
	"maps"
	"strconv"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/kindling"
	"fire/internal/resource"
	"fire/internal/token"
)

const thisVar = "this"

// fnCtx — состояние понижения одного тела функции.
type fnCtx struct {
	l      *Lowerer
	file   *ast.File
	owner  ast.Definition // контейнер для методов, иначе nil
	loc    resource.Location
	locals map[string]bool
	consts map[string]kindling.Argument
	blocks [][]kindling.Action
	temps  int
	loops  int
}

func newFnCtx(l *Lowerer, file *ast.File, owner ast.Definition, loc resource.Location) *fnCtx {
	return &fnCtx{
		l:      l,
		file:   file,
		owner:  owner,
		loc:    loc,
		locals: make(map[string]bool),
		consts: make(map[string]kindling.Argument),
		blocks: [][]kindling.Action{nil},
	}
}

// bindParams copies (param i) into named variables. Methods receive `this` as param 0.
func (c *fnCtx) bindParams(params []ast.Param) {
	offset := 0
	if c.owner != nil {
		c.emit(kindling.SetVar("=", "", kindling.FunctionVar{Name: thisVar}, kindling.Param{Index: 0}))
		c.locals[thisVar] = true
		offset = 1
	}
	for i, p := range params {
		c.emit(kindling.SetVar("=", "", kindling.FunctionVar{Name: p.Name}, kindling.Param{Index: i + offset}))
		c.locals[p.Name] = true
	}
}

func (c *fnCtx) emit(a kindling.Action) {
	top := len(c.blocks) - 1
	c.blocks[top] = append(c.blocks[top], a)
}

// nested lowers fn into a fresh action list and returns it.
func (c *fnCtx) nested(fn func() error) ([]kindling.Action, error) {
	c.blocks = append(c.blocks, nil)
	err := fn()
	top := len(c.blocks) - 1
	code := c.blocks[top]
	c.blocks = c.blocks[:top]
	if code == nil {
		code = []kindling.Action{}
	}
	return code, err
}

// scoped runs fn with its own name scope: variables and constants declared
// inside are forgotten when it returns, outer names come back unchanged.
func (c *fnCtx) scoped(fn func() error) error {
	locals, consts := maps.Clone(c.locals), maps.Clone(c.consts)
	err := fn()
	c.locals, c.consts = locals, consts
	return err
}

// body lowers a branch or loop body into its own action list and scope.
func (c *fnCtx) body(s ast.Stmt) ([]kindling.Action, error) {
	return c.nested(func() error {
		return c.scoped(func() error { return c.stmt(s) })
	})
}

func (c *fnCtx) code() []kindling.Action {
	return c.blocks[0]
}

// temp allocates a fresh scratch variable _t0, _t1, ...
func (c *fnCtx) temp() kindling.FunctionVar {
	v := kindling.FunctionVar{Name: "_t" + strconv.Itoa(c.temps)}
	c.temps++
	return v
}

func (c *fnCtx) errorf(code diag.Code, pos token.Position, format string, args ...any) error {
	return &Error{Code: code, Loc: c.loc, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
