package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a float literal (`1.5`, `2f`).
	FloatLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// Annotation represents `@name`.
	Annotation

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwLetBang represents the immutable 'let!' keyword.
	KwLetBang // let!
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwFnBang represents the 'fn!' keyword (mutable receiver).
	KwFnBang // fn!
	// KwProc represents the 'proc' keyword.
	KwProc // proc
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwThisType represents the 'This' keyword.
	KwThisType // This
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// Semicolon represents ';'.
	Semicolon
	// Colon represents ':'.
	Colon

	// Plus represents '+'.
	Plus
	// PlusAssign represents '+='.
	PlusAssign
	// Minus represents '-'.
	Minus
	// MinusAssign represents '-='.
	MinusAssign
	// Star represents '*'.
	Star
	// StarAssign represents '*='.
	StarAssign
	// Slash represents '/'.
	Slash
	// SlashAssign represents '/='.
	SlashAssign
	// Percent represents '%'.
	Percent
	// PercentAssign represents '%='.
	PercentAssign
	// Amp represents '&' (string concatenation).
	Amp
	// AmpAssign represents '&='.
	AmpAssign
	// AndAnd represents '&&'.
	AndAnd
	// OrOr represents '||'.
	OrOr
	// Bang represents '!'.
	Bang
	// BangEq represents '!='.
	BangEq
	// Assign represents '='.
	Assign
	// EqEq represents '=='.
	EqEq
	// Lt represents '<'.
	Lt
	// LtEq represents '<='.
	LtEq
	// Gt represents '>'.
	Gt
	// GtEq represents '>='.
	GtEq
	// Arrow represents '->'.
	Arrow

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:    "Invalid",
	Ident:      "Ident",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	Annotation: "Annotation",

	KwLet:      "let",
	KwLetBang:  "let!",
	KwFn:       "fn",
	KwFnBang:   "fn!",
	KwProc:     "proc",
	KwIf:       "if",
	KwElse:     "else",
	KwFor:      "for",
	KwWhile:    "while",
	KwReturn:   "return",
	KwBreak:    "break",
	KwContinue: "continue",
	KwStruct:   "struct",
	KwTrait:    "trait",
	KwImpl:     "impl",
	KwPrivate:  "private",
	KwEnum:     "enum",
	KwImport:   "import",
	KwWhere:    "where",
	KwThis:     "this",
	KwThisType: "This",
	KwTrue:     "true",
	KwFalse:    "false",

	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	LBrace:    "{",
	RBrace:    "}",
	Comma:     ",",
	Dot:       ".",
	Semicolon: ";",
	Colon:     ":",

	Plus:          "+",
	PlusAssign:    "+=",
	Minus:         "-",
	MinusAssign:   "-=",
	Star:          "*",
	StarAssign:    "*=",
	Slash:         "/",
	SlashAssign:   "/=",
	Percent:       "%",
	PercentAssign: "%=",
	Amp:           "&",
	AmpAssign:     "&=",
	AndAnd:        "&&",
	OrOr:          "||",
	Bang:          "!",
	BangEq:        "!=",
	Assign:        "=",
	EqEq:          "==",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Arrow:         "->",
}

// String returns the lexeme for fixed tokens and the kind name for value tokens.
func (k Kind) String() string {
	if k >= kindCount {
		return "Kind(?)"
	}
	return kindNames[k]
}

// IsKeyword reports whether k is a language keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwLet && k <= KwFalse
}

// IsCompoundAssign reports whether k is one of `+= -= *= /= %= &=`.
func (k Kind) IsCompoundAssign() bool {
	switch k {
	case PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign, AmpAssign:
		return true
	default:
		return false
	}
}
