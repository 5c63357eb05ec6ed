// Package resource implements qualified naming for Fire programs.
//
// A Name is one validated identifier segment, a Location is a non-empty
// `::`-joined path of Names. Map and Children are insertion-ordered maps that
// refuse to overwrite. Tree stores containers and their children in an arena
// so parent links are IDs, never pointers.
//
// All operations are pure or fail without changing state.
package resource
