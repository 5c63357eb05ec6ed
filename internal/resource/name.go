package resource

import "regexp"

const namePattern = `^[A-Za-z][A-Za-z0-9_]*$`

var nameRe = regexp.MustCompile(namePattern)

// Name is a single validated path segment.
type Name struct {
	text string
}

// NewName validates text against ^[A-Za-z][A-Za-z0-9_]*$.
func NewName(text string) (Name, error) {
	if !nameRe.MatchString(text) {
		return Name{}, &NameError{Text: text}
	}
	return Name{text: text}, nil
}

// MustName is NewName for compile-time constants; it panics on invalid text.
func MustName(text string) Name {
	n, err := NewName(text)
	if err != nil {
		panic(err)
	}
	return n
}

// IsValidName reports whether text can be a Name.
func IsValidName(text string) bool {
	return nameRe.MatchString(text)
}

func (n Name) String() string { return n.text }

// IsZero reports whether n is the zero Name (never produced by NewName).
func (n Name) IsZero() bool { return n.text == "" }
