package ast

import (
	"fire/internal/resource"
	"fire/internal/token"
)

// Import is `import a::b;`.
type Import struct {
	Pos  token.Position
	Path resource.Location
}

// File is one compilation unit. Definitions keep source order.
type File struct {
	Location    resource.Location
	Imports     []Import
	Definitions []Definition
}
