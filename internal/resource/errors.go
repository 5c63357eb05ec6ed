package resource

import "fmt"

// NameError reports text that is not a valid resource name.
type NameError struct {
	Text string
}

func (e *NameError) Error() string {
	if e.Text == "" {
		return "invalid resource name: empty"
	}
	return fmt.Sprintf("invalid resource name %q: must match %s", e.Text, namePattern)
}

// PathError reports an invalid location or a location operation that has no result.
type PathError struct {
	Op   string
	Path string
	Msg  string
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Msg)
}

// DuplicateError is returned when a key is already present.
type DuplicateError struct {
	Key string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate resource %s", e.Key)
}

// NotFoundError is returned when a key is absent.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource %s not found", e.Key)
}

// NotAContainerError is returned when a path walks through a resource without children.
type NotAContainerError struct {
	Path string
}

func (e *NotAContainerError) Error() string {
	return fmt.Sprintf("resource %s is not a container", e.Path)
}
