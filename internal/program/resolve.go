package program

import (
	"fmt"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/resource"
)

// CheckImports reports imports that name neither a file nor a definition.
func (p *Program) CheckImports(file *ast.File) []error {
	var errs []error
	for _, imp := range file.Imports {
		if _, err := p.Node(imp.Path); err != nil {
			errs = append(errs, &Error{
				Code: diag.ResUnknownImport,
				Loc:  imp.Path,
				Pos:  imp.Pos,
				Err:  fmt.Errorf("unknown import %s", imp.Path),
			})
		}
	}
	return errs
}

// ResolveName looks name up as seen from file: first the file's own
// definitions, then each import in order. An import `a::f` matches `f`
// itself; an import `a::m` also exposes `a::m::f`.
func (p *Program) ResolveName(file *ast.File, name string) (ast.Definition, error) {
	rn, err := resource.NewName(name)
	if err != nil {
		return nil, &Error{Code: diag.ResInvalidName, Loc: file.Location, Err: err}
	}
	candidates := make([]resource.Location, 0, 1+len(file.Imports))
	candidates = append(candidates, file.Location.Child(rn))
	for _, imp := range file.Imports {
		if imp.Path.Head() == rn {
			candidates = append(candidates, imp.Path)
			continue
		}
		candidates = append(candidates, imp.Path.Child(rn))
	}
	for _, loc := range candidates {
		if def, err := p.Resolve(loc); err == nil {
			return def, nil
		}
	}
	return nil, &Error{
		Code: diag.ResUnresolvedCall,
		Loc:  file.Location,
		Err:  &resource.NotFoundError{Key: name},
	}
}

// ResolveMember finds member name inside the container definition owner.
func (p *Program) ResolveMember(owner ast.Definition, name string) (ast.Definition, error) {
	members := ast.Container(owner)
	if members == nil {
		return nil, &Error{
			Code: diag.ResNotAContainer,
			Loc:  owner.Location(),
			Pos:  owner.Position(),
			Err:  &resource.NotAContainerError{Path: owner.Location().String()},
		}
	}
	rn, err := resource.NewName(name)
	if err == nil {
		if def, ok := members.Lookup(rn); ok {
			return def, nil
		}
	}
	return nil, &Error{
		Code: diag.ResUnresolvedCall,
		Loc:  owner.Location(),
		Pos:  owner.Position(),
		Err:  &resource.NotFoundError{Key: owner.Location().String() + resource.Separator + name},
	}
}
