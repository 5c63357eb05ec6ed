package resource

import "strconv"

// ID addresses a node in a Tree. Zero is "no node".
type ID uint32

const NoID ID = 0

// Node is one resource. Containers own children; leaves have none.
type Node[T any] struct {
	ID       ID
	Parent   ID
	Location Location
	Value    T
	children *Children[ID]
}

func (n *Node[T]) IsContainer() bool { return n.children != nil }

// Name is the last segment of the node's location.
func (n *Node[T]) Name() Name { return n.Location.Head() }

// ChildIDs returns children in insertion order (nil for leaves).
func (n *Node[T]) ChildIDs() []ID { return n.children.Values() }

// Tree stores containers and their children. A child's location is fixed at
// insertion to parent.Location.Child(name) and never changes.
type Tree[T any] struct {
	nodes *Arena[Node[T]]
	roots *Children[ID]
}

func NewTree[T any]() *Tree[T] {
	return &Tree[T]{
		nodes: NewArena[Node[T]](64),
		roots: NewChildren[ID](),
	}
}

func (t *Tree[T]) alloc(parent ID, loc Location, value T, container bool) ID {
	n := Node[T]{Parent: parent, Location: loc, Value: value}
	if container {
		n.children = NewChildren[ID]()
	}
	id := ID(t.nodes.Allocate(n))
	t.nodes.Get(uint32(id)).ID = id
	return id
}

// AddRoot adds a top-level resource.
func (t *Tree[T]) AddRoot(name Name, value T, container bool) (ID, error) {
	if name.IsZero() {
		return NoID, &NameError{}
	}
	if _, exists := t.roots.Lookup(name); exists {
		return NoID, &DuplicateError{Key: name.String()}
	}
	loc, err := NewLocation(name)
	if err != nil {
		return NoID, err
	}
	id := t.alloc(NoID, loc, value, container)
	if err := t.roots.Add(name, id); err != nil {
		return NoID, err
	}
	return id, nil
}

// AddChild adds name under parent. It fails with *NotFoundError for an unknown
// parent, *NotAContainerError for a leaf parent and *DuplicateError on a clash.
func (t *Tree[T]) AddChild(parent ID, name Name, value T, container bool) (ID, error) {
	p := t.Node(parent)
	if p == nil {
		return NoID, &NotFoundError{Key: "#" + itoa(uint32(parent))}
	}
	if !p.IsContainer() {
		return NoID, &NotAContainerError{Path: p.Location.String()}
	}
	if name.IsZero() {
		return NoID, &NameError{}
	}
	if _, exists := p.children.Lookup(name); exists {
		return NoID, &DuplicateError{Key: p.Location.Child(name).String()}
	}
	loc := p.Location.Child(name)
	id := t.alloc(parent, loc, value, container)
	// alloc may grow the arena, re-read the parent
	if err := t.Node(parent).children.Add(name, id); err != nil {
		return NoID, err
	}
	return id, nil
}

// Node returns the node or nil for an unknown id.
func (t *Tree[T]) Node(id ID) *Node[T] {
	return t.nodes.Get(uint32(id))
}

// Parent returns the parent id; false for roots and unknown ids.
func (t *Tree[T]) Parent(id ID) (ID, bool) {
	n := t.Node(id)
	if n == nil || n.Parent == NoID {
		return NoID, false
	}
	return n.Parent, true
}

// Child looks up a direct child by name.
func (t *Tree[T]) Child(parent ID, name Name) (ID, error) {
	p := t.Node(parent)
	if p == nil {
		return NoID, &NotFoundError{Key: "#" + itoa(uint32(parent))}
	}
	if !p.IsContainer() {
		return NoID, &NotAContainerError{Path: p.Location.String()}
	}
	id, ok := p.children.Lookup(name)
	if !ok {
		return NoID, &NotFoundError{Key: p.Location.Child(name).String()}
	}
	return id, nil
}

// LookupChild is Child without an error value.
func (t *Tree[T]) LookupChild(parent ID, name Name) (ID, bool) {
	id, err := t.Child(parent, name)
	return id, err == nil
}

// Inner walks path below from, child by child.
func (t *Tree[T]) Inner(from ID, path []Name) (ID, error) {
	cur := from
	for _, seg := range path {
		next, err := t.Child(cur, seg)
		if err != nil {
			return NoID, err
		}
		cur = next
	}
	return cur, nil
}

// Lookup resolves a full location starting from the roots.
func (t *Tree[T]) Lookup(loc Location) (ID, error) {
	if loc.IsZero() {
		return NoID, &PathError{Op: "lookup", Msg: "empty path"}
	}
	root, ok := t.roots.Lookup(loc.Root())
	if !ok {
		return NoID, &NotFoundError{Key: loc.Root().String()}
	}
	segs := loc.Segments()
	return t.Inner(root, segs[1:])
}

// Roots returns top-level ids in insertion order.
func (t *Tree[T]) Roots() []ID { return t.roots.Values() }

func (t *Tree[T]) Len() int { return int(t.nodes.Len()) }

func itoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
