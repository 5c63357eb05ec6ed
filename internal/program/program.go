package program

import (
	"errors"
	"fmt"

	"fire/internal/ast"
	"fire/internal/diag"
	"fire/internal/resource"
	"fire/internal/token"
)

// EntryKind classifies tree nodes.
type EntryKind uint8

const (
	EntryDirectory EntryKind = iota
	EntryFile
	EntryDefinition
	EntryMember
)

func (k EntryKind) String() string {
	switch k {
	case EntryDirectory:
		return "directory"
	case EntryFile:
		return "file"
	case EntryDefinition:
		return "definition"
	case EntryMember:
		return "member"
	default:
		return fmt.Sprintf("EntryKind(%d)", uint8(k))
	}
}

// Entry is the payload of one tree node. Def is nil for directories; File is set for files.
type Entry struct {
	Kind EntryKind
	Def  ast.Definition
	File *ast.File
}

// Unit is one parsed file ready for registration.
type Unit struct {
	Location resource.Location
	File     *ast.File
}

// Error is a registration failure tied to a definition.
type Error struct {
	Code diag.Code
	Loc  resource.Location
	Pos  token.Position
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Loc, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Program — общее для всех файлов дерево ресурсов.
type Program struct {
	tree  *resource.Tree[Entry]
	defs  *resource.Map[ast.Definition]
	files *resource.Map[*ast.File]
}

func New() *Program {
	return &Program{
		tree:  resource.NewTree[Entry](),
		defs:  resource.NewMap[ast.Definition](),
		files: resource.NewMap[*ast.File](),
	}
}

// Register inserts a file and its definitions. A failing definition is skipped
// and registration continues; every failure is returned.
func (p *Program) Register(unit Unit) []error {
	if unit.File == nil {
		return []error{&Error{Code: diag.ResInvalidPath, Loc: unit.Location, Err: errors.New("nil file")}}
	}
	fileID, err := p.ensureFile(unit)
	if err != nil {
		return []error{err}
	}
	var errs []error
	for _, def := range unit.File.Definitions {
		if err := p.registerDef(fileID, def); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// ensureFile создаёт каталоги для всех префиксов и сам файл.
func (p *Program) ensureFile(unit Unit) (resource.ID, error) {
	loc := unit.Location
	if loc.IsZero() {
		return resource.NoID, &Error{Code: diag.ResInvalidPath, Loc: loc, Err: errors.New("empty file location")}
	}
	segs := loc.Segments()
	parent := resource.NoID
	for i, seg := range segs {
		last := i == len(segs)-1
		id, err := p.lookupOrAdd(parent, seg)
		if err != nil {
			return resource.NoID, &Error{Code: codeOf(err), Loc: loc, Err: err}
		}
		node := p.tree.Node(id)
		kind := node.Value.Kind
		switch {
		case last && kind != EntryDirectory:
			// файл или определение уже занимают это место
			err := &resource.DuplicateError{Key: loc.String()}
			return resource.NoID, &Error{Code: diag.ResDuplicate, Loc: loc, Err: err}
		case !last && kind != EntryDirectory && kind != EntryFile, !node.IsContainer():
			err := &resource.NotAContainerError{Path: node.Location.String()}
			return resource.NoID, &Error{Code: diag.ResNotAContainer, Loc: loc, Err: err}
		}
		if last {
			// каталог с тем же именем становится файлом
			node.Value = Entry{Kind: EntryFile, File: unit.File}
			if err := p.files.Add(loc, unit.File); err != nil {
				return resource.NoID, &Error{Code: diag.ResDuplicate, Loc: loc, Err: err}
			}
		}
		parent = id
	}
	return parent, nil
}

func (p *Program) lookupOrAdd(parent resource.ID, name resource.Name) (resource.ID, error) {
	if parent == resource.NoID {
		for _, id := range p.tree.Roots() {
			if p.tree.Node(id).Name() == name {
				return id, nil
			}
		}
		return p.tree.AddRoot(name, Entry{Kind: EntryDirectory}, true)
	}
	if id, ok := p.tree.LookupChild(parent, name); ok {
		return id, nil
	}
	return p.tree.AddChild(parent, name, Entry{Kind: EntryDirectory}, true)
}

func (p *Program) registerDef(fileID resource.ID, def ast.Definition) error {
	loc := def.Location()
	if err := p.defs.Add(loc, def); err != nil {
		return &Error{Code: codeOf(err), Loc: loc, Pos: def.Position(), Err: err}
	}
	members := ast.Container(def)
	id, err := p.tree.AddChild(fileID, loc.Head(), Entry{Kind: EntryDefinition, Def: def}, members != nil)
	if err != nil {
		return &Error{Code: codeOf(err), Loc: loc, Pos: def.Position(), Err: err}
	}
	if members == nil {
		return nil
	}
	for _, name := range members.Names() {
		member, _ := members.Lookup(name)
		if _, err := p.tree.AddChild(id, name, Entry{Kind: EntryMember, Def: member}, false); err != nil {
			return &Error{Code: codeOf(err), Loc: member.Location(), Pos: member.Position(), Err: err}
		}
	}
	return nil
}

func codeOf(err error) diag.Code {
	var dup *resource.DuplicateError
	var nf *resource.NotFoundError
	var nc *resource.NotAContainerError
	var ne *resource.NameError
	switch {
	case errors.As(err, &dup):
		return diag.ResDuplicate
	case errors.As(err, &nf):
		return diag.ResNotFound
	case errors.As(err, &nc):
		return diag.ResNotAContainer
	case errors.As(err, &ne):
		return diag.ResInvalidName
	default:
		return diag.ResInvalidPath
	}
}

// Resolve finds a definition or container member by its full location.
func (p *Program) Resolve(loc resource.Location) (ast.Definition, error) {
	if def, ok := p.defs.Lookup(loc); ok {
		return def, nil
	}
	id, err := p.tree.Lookup(loc)
	if err != nil {
		return nil, err
	}
	entry := p.tree.Node(id).Value
	if entry.Def == nil {
		return nil, &resource.NotFoundError{Key: loc.String()}
	}
	return entry.Def, nil
}

// Node returns the tree entry at loc.
func (p *Program) Node(loc resource.Location) (*resource.Node[Entry], error) {
	id, err := p.tree.Lookup(loc)
	if err != nil {
		return nil, err
	}
	return p.tree.Node(id), nil
}

// Definitions returns top-level definitions in registration order.
func (p *Program) Definitions() []ast.Definition {
	out := make([]ast.Definition, 0, p.defs.Len())
	p.defs.Each(func(_ resource.Location, d ast.Definition) bool {
		out = append(out, d)
		return true
	})
	return out
}

// Files returns registered files in registration order.
func (p *Program) Files() []*ast.File {
	out := make([]*ast.File, 0, p.files.Len())
	p.files.Each(func(_ resource.Location, f *ast.File) bool {
		out = append(out, f)
		return true
	})
	return out
}

// FileOf returns the file that owns loc, walking up the parents.
func (p *Program) FileOf(loc resource.Location) (*ast.File, bool) {
	for cur := loc; !cur.IsZero(); {
		if f, ok := p.files.Lookup(cur); ok {
			return f, true
		}
		parent, err := cur.Parent()
		if err != nil {
			break
		}
		cur = parent
	}
	return nil, false
}

// Tree exposes the resource tree for dumps.
func (p *Program) Tree() *resource.Tree[Entry] { return p.tree }
