// Package program holds the program-wide resource tree.
//
// Files are registered one at a time, in an order the caller fixes
// (lexicographic by path in the driver) so duplicate errors are reproducible.
// Every location prefix of a file becomes a directory container.
package program
