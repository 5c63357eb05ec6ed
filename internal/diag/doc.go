// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form (LEX1001, SYN2001, RES3001, LOW4001, IO5001, PRJ6001), a short
// Message, the Primary source.Span and optional Notes.
//
// Phases never print. The lexer and parser return typed errors; the driver turns
// them into Diagnostics and collects them in a Bag (one per file when running in
// parallel, merged afterwards). Rendering lives in internal/diagfmt.
//
// Keep the data model deterministic: Bag.Sort orders by file, span, severity
// and code so output is stable across runs.
package diag
