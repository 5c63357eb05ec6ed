package ast

import (
	"fire/internal/resource"
	"fire/internal/token"
)

// Annotation is `@name` before a definition.
type Annotation struct {
	Pos  token.Position
	Name string
}

// TypeRef names a type. This is set for the `This` keyword.
type TypeRef struct {
	Pos  token.Position
	Name string
	This bool
}

func (t TypeRef) String() string {
	if t.This {
		return "This"
	}
	return t.Name
}

// Param is `name: Type` in a parameter list.
type Param struct {
	Pos  token.Position
	Name string
	Type TypeRef
}

// Definition is any named, path-addressable program entity.
type Definition interface {
	Location() resource.Location
	Annotations() []Annotation
	Position() token.Position
	defNode()
}

// DefHeader holds what every definition carries.
type DefHeader struct {
	Loc     resource.Location
	Annots  []Annotation
	Pos     token.Position
	Private bool
}

func (h *DefHeader) Location() resource.Location { return h.Loc }
func (h *DefHeader) Annotations() []Annotation   { return h.Annots }
func (h *DefHeader) Position() token.Position    { return h.Pos }

// HasAnnotation reports whether @name is present.
func (h *DefHeader) HasAnnotation(name string) bool {
	for _, a := range h.Annots {
		if a.Name == name {
			return true
		}
	}
	return false
}

type Function struct {
	DefHeader
	Params []Param
	Return *TypeRef
	Body   *Block
}

// Method lives inside a struct, enum or trait. Mutable marks `fn!` (mutable receiver).
// Body is nil for a trait method without a default implementation.
type Method struct {
	DefHeader
	Mutable bool
	Params  []Param
	Return  *TypeRef
	Body    *Block
}

// Process is always static.
type Process struct {
	DefHeader
	Params []Param
	Body   *Block
}

// Field is `name: Type;` inside a struct.
type Field struct {
	DefHeader
	Type TypeRef
}

// Struct owns Fields and Methods; Members indexes both by name.
type Struct struct {
	DefHeader
	Impls   []TypeRef
	Fields  []*Field
	Methods []*Method
	Members *resource.Children[Definition]
}

type Trait struct {
	DefHeader
	Methods []*Method
	Members *resource.Children[Definition]
}

type EnumVariant struct {
	DefHeader
	Index int
}

type Enum struct {
	DefHeader
	Variants []*EnumVariant
	Methods  []*Method
	Members  *resource.Children[Definition]
}

// GlobalVar is a top-level `let` or `let!`.
type GlobalVar struct {
	DefHeader
	Const bool
	Type  *TypeRef
	Value Expr
}

func (*Function) defNode()    {}
func (*Method) defNode()      {}
func (*Process) defNode()     {}
func (*Field) defNode()       {}
func (*Struct) defNode()      {}
func (*Trait) defNode()       {}
func (*EnumVariant) defNode() {}
func (*Enum) defNode()        {}
func (*GlobalVar) defNode()   {}

// Container returns the member map of a container definition, or nil.
func Container(d Definition) *resource.Children[Definition] {
	switch d := d.(type) {
	case *Struct:
		return d.Members
	case *Trait:
		return d.Members
	case *Enum:
		return d.Members
	default:
		return nil
	}
}

// KindName is a short lowercase label used in diagnostics and dumps.
func KindName(d Definition) string {
	switch d.(type) {
	case *Function:
		return "fn"
	case *Method:
		return "method"
	case *Process:
		return "proc"
	case *Field:
		return "field"
	case *Struct:
		return "struct"
	case *Trait:
		return "trait"
	case *EnumVariant:
		return "variant"
	case *Enum:
		return "enum"
	case *GlobalVar:
		return "var"
	default:
		return "?"
	}
}
