package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexIntOverflow              Code = 1004
	LexLonePipe                 Code = 1005
	LexEmptyAnnotation          Code = 1006
	LexBadEscape                Code = 1007

	// Парсерные
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnexpectedEnd         Code = 2002
	SynExpectExpression      Code = 2003
	SynExpectStatement       Code = 2004
	SynExpectDefinition      Code = 2005
	SynCompoundAssign        Code = 2006
	SynDanglingAnnotation    Code = 2007
	SynExpectIdentifier      Code = 2008
	SynExpectType            Code = 2009
	SynModifierNotAllowed    Code = 2010
	SynInvalidResourceName   Code = 2011
	SynDuplicateMember       Code = 2012
	SynKindlingExpectsString Code = 2013

	// Ресурсы (регистрация имён)
	ResInfo           Code = 3000
	ResDuplicate      Code = 3001
	ResNotFound       Code = 3002
	ResNotAContainer  Code = 3003
	ResInvalidName    Code = 3004
	ResInvalidPath    Code = 3005
	ResUnknownImport  Code = 3006
	ResUnresolvedCall Code = 3007

	// Понижение в Kindling
	LowerInfo          Code = 4000
	LowerTooLarge      Code = 4001
	LowerUnsupported   Code = 4002
	LowerUnknownVar    Code = 4003
	LowerBadAnnotation Code = 4004

	// Ввод/вывод
	IOInfo       Code = 5000
	IOLoadFailed Code = 5001
	IOWriteFail  Code = 5002
	IOCacheFail  Code = 5003

	// Проект
	PrjInfo           Code = 6000
	PrjBadManifest    Code = 6001
	PrjNoSources      Code = 6002
	PrjInvalidSetting Code = 6003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexIntOverflow:              "Integer literal overflow",
		LexLonePipe:                 "Single '|' is not an operator",
		LexEmptyAnnotation:          "Empty annotation name",
		LexBadEscape:                "Invalid escape sequence",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnexpectedEnd:            "Unexpected end of file",
		SynExpectExpression:         "Expect expression",
		SynExpectStatement:          "Expect statement",
		SynExpectDefinition:         "Expect definition",
		SynCompoundAssign:           "Compound assignment is not supported",
		SynDanglingAnnotation:       "Annotation without definition",
		SynExpectIdentifier:         "Expect identifier",
		SynExpectType:               "Expect type",
		SynModifierNotAllowed:       "Modifier not allowed here",
		SynInvalidResourceName:      "Invalid resource name",
		SynDuplicateMember:          "Duplicate member",
		SynKindlingExpectsString:    "__kindling expects a string literal",
		ResInfo:                     "Resource information",
		ResDuplicate:                "Duplicate resource",
		ResNotFound:                 "Resource not found",
		ResNotAContainer:            "Resource is not a container",
		ResInvalidName:              "Invalid resource name",
		ResInvalidPath:              "Invalid resource path",
		ResUnknownImport:            "Unknown import",
		ResUnresolvedCall:           "Unresolved call target",
		LowerInfo:                   "Lowering information",
		LowerTooLarge:               "Code block exceeds max size",
		LowerUnsupported:            "Construct cannot be lowered to Kindling",
		LowerUnknownVar:             "Unknown variable",
		LowerBadAnnotation:          "Unsupported annotation",
		IOInfo:                      "I/O information",
		IOLoadFailed:                "Failed to load file",
		IOWriteFail:                 "Failed to write output",
		IOCacheFail:                 "Cache failure",
		PrjInfo:                     "Project information",
		PrjBadManifest:              "Invalid fire.toml",
		PrjNoSources:                "No source files",
		PrjInvalidSetting:           "Invalid setting",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("LOW%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
