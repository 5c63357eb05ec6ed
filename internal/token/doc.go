// Package token defines lexical token kinds for the Fire compiler.
// Invariants:
//   - Token.Line is 1-based, Token.Column is the 0-based byte column of the first character.
//   - Token.Width is the source-byte length of the lexeme (quotes and escapes included).
//   - Value-carrying kinds (Ident, IntLit, FloatLit, StringLit, Annotation) store the
//     decoded payload: escapes in strings are already resolved, '@' is not part of
//     an annotation name.
//   - `let!` and `fn!` are single keyword tokens.
package token
