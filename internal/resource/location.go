package resource

import (
	"slices"
	"strings"
)

// Separator joins Location segments in String.
const Separator = "::"

// Location is an immutable non-empty path of Names.
// The zero Location is invalid; construct with NewLocation or ParseLocation.
type Location struct {
	segs []Name
}

// NewLocation builds a location from segments. The slice is copied.
func NewLocation(names ...Name) (Location, error) {
	if len(names) == 0 {
		return Location{}, &PathError{Op: "location", Msg: "empty path"}
	}
	for _, n := range names {
		if n.IsZero() {
			return Location{}, &PathError{Op: "location", Msg: "empty segment"}
		}
	}
	return Location{segs: slices.Clone(names)}, nil
}

// ParseLocation parses `a::b::c`.
func ParseLocation(path string) (Location, error) {
	if path == "" {
		return Location{}, &PathError{Op: "location", Msg: "empty path"}
	}
	parts := strings.Split(path, Separator)
	names := make([]Name, 0, len(parts))
	for _, p := range parts {
		n, err := NewName(p)
		if err != nil {
			return Location{}, err
		}
		names = append(names, n)
	}
	return Location{segs: names}, nil
}

// MustLocation is ParseLocation that panics; for tests and constants.
func MustLocation(path string) Location {
	loc, err := ParseLocation(path)
	if err != nil {
		panic(err)
	}
	return loc
}

// Child returns a new location with name appended.
func (l Location) Child(name Name) Location {
	segs := make([]Name, len(l.segs)+1)
	copy(segs, l.segs)
	segs[len(l.segs)] = name
	return Location{segs: segs}
}

// Parent drops the last segment. Top-level locations have no parent.
func (l Location) Parent() (Location, error) {
	if len(l.segs) <= 1 {
		return Location{}, &PathError{Op: "parent", Path: l.String(), Msg: "top-level location has no parent"}
	}
	return Location{segs: slices.Clone(l.segs[:len(l.segs)-1])}, nil
}

// Head returns the last segment.
func (l Location) Head() Name {
	if len(l.segs) == 0 {
		return Name{}
	}
	return l.segs[len(l.segs)-1]
}

// Name is an alias of Head.
func (l Location) Name() Name { return l.Head() }

// Root returns the first segment.
func (l Location) Root() Name {
	if len(l.segs) == 0 {
		return Name{}
	}
	return l.segs[0]
}

func (l Location) Len() int { return len(l.segs) }

// IsZero reports whether l was never constructed.
func (l Location) IsZero() bool { return len(l.segs) == 0 }

// Segments returns a copy of the path.
func (l Location) Segments() []Name { return slices.Clone(l.segs) }

// Equal compares segment by segment.
func (l Location) Equal(o Location) bool {
	return slices.Equal(l.segs, o.segs)
}

// HasPrefix reports whether p is l or an ancestor of l.
func (l Location) HasPrefix(p Location) bool {
	return len(p.segs) <= len(l.segs) && slices.Equal(l.segs[:len(p.segs)], p.segs)
}

func (l Location) String() string {
	var b strings.Builder
	for i, s := range l.segs {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(s.text)
	}
	return b.String()
}
