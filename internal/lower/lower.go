package lower

import (
	"fmt"

	"fire/internal/ast"
	"fire/internal/config"
	"fire/internal/diag"
	"fire/internal/kindling"
	"fire/internal/program"
	"fire/internal/resource"
	"fire/internal/token"
)

// Error is a lowering failure at a source position.
type Error struct {
	Code diag.Code
	Loc  resource.Location
	Pos  token.Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %d:%d: %s", e.Loc, e.Pos.Line, e.Pos.Column, e.Msg)
}

// Lowerer turns registered definitions into Kindling headers.
type Lowerer struct {
	prog     *program.Program
	settings config.Settings
}

func New(prog *program.Program, settings config.Settings) *Lowerer {
	return &Lowerer{prog: prog, settings: settings}
}

// Program lowers every registered definition in registration order.
// A failing definition is skipped; all errors are returned.
func (l *Lowerer) Program() ([]kindling.Header, []error) {
	var (
		headers []kindling.Header
		errs    []error
	)
	for _, def := range l.prog.Definitions() {
		hs, err := l.Definition(def)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		headers = append(headers, hs...)
	}
	return headers, errs
}

// Definition lowers one top-level definition. Containers yield one header per
// method with a body; globals and fields yield none.
func (l *Lowerer) Definition(def ast.Definition) ([]kindling.Header, error) {
	file, ok := l.prog.FileOf(def.Location())
	if !ok {
		return nil, &Error{
			Code: diag.LowerUnsupported,
			Loc:  def.Location(),
			Pos:  def.Position(),
			Msg:  "definition is not registered",
		}
	}
	switch d := def.(type) {
	case *ast.Function:
		h, err := l.function(file, d)
		if err != nil {
			return nil, err
		}
		return []kindling.Header{h}, nil
	case *ast.Process:
		h, err := l.lowerBody(newFnCtx(l, file, nil, d.Location()), kindling.Process, d.Location().String(), d.Params, d.Body)
		if err != nil {
			return nil, err
		}
		return []kindling.Header{h}, nil
	case *ast.Struct:
		return l.methods(file, d, d.Methods)
	case *ast.Trait:
		return l.methods(file, d, d.Methods)
	case *ast.Enum:
		return l.methods(file, d, d.Methods)
	case *ast.GlobalVar:
		return nil, nil
	default:
		return nil, &Error{
			Code: diag.LowerUnsupported,
			Loc:  def.Location(),
			Pos:  def.Position(),
			Msg:  fmt.Sprintf("cannot lower %s", ast.KindName(def)),
		}
	}
}

// event annotations turn a function into an event header named after the function.
const (
	annotEvent       = "event"
	annotEntityEvent = "entity_event"
)

func (l *Lowerer) function(file *ast.File, fn *ast.Function) (kindling.Header, error) {
	kind := kindling.Function
	name := fn.Location().String()
	for _, a := range fn.Annotations() {
		switch a.Name {
		case annotEvent:
			kind = kindling.PlayerEvent
		case annotEntityEvent:
			kind = kindling.EntityEvent
		default:
			continue
		}
		if len(fn.Params) > 0 {
			return kindling.Header{}, &Error{
				Code: diag.LowerBadAnnotation,
				Loc:  fn.Location(),
				Pos:  a.Pos,
				Msg:  fmt.Sprintf("@%s function cannot take parameters", a.Name),
			}
		}
		name = fn.Location().Head().String()
	}
	return l.lowerBody(newFnCtx(l, file, nil, fn.Location()), kind, name, fn.Params, fn.Body)
}

func (l *Lowerer) methods(file *ast.File, owner ast.Definition, methods []*ast.Method) ([]kindling.Header, error) {
	var out []kindling.Header
	for _, m := range methods {
		if m.Body == nil {
			continue
		}
		ctx := newFnCtx(l, file, owner, m.Location())
		h, err := l.lowerBody(ctx, kindling.Function, m.Location().String(), m.Params, m.Body)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (l *Lowerer) lowerBody(ctx *fnCtx, kind kindling.HeaderKind, name string, params []ast.Param, body *ast.Block) (kindling.Header, error) {
	ctx.bindParams(params)
	if err := ctx.block(body); err != nil {
		return kindling.Header{}, err
	}
	code := ctx.code()
	if n := kindling.CountActions(code); n > l.settings.MaxSize {
		return kindling.Header{}, &Error{
			Code: diag.LowerTooLarge,
			Loc:  ctx.loc,
			Pos:  body.Pos,
			Msg:  fmt.Sprintf("%s lowers to %d actions, limit is %d", name, n, l.settings.MaxSize),
		}
	}
	return kindling.Header{Kind: kind, Name: name, Code: code}, nil
}
