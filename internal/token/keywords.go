package token

var keywords = map[string]Kind{
	"let":      KwLet,
	"let!":     KwLetBang,
	"fn":       KwFn,
	"fn!":      KwFnBang,
	"proc":     KwProc,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"struct":   KwStruct,
	"trait":    KwTrait,
	"impl":     KwImpl,
	"private":  KwPrivate,
	"enum":     KwEnum,
	"import":   KwImport,
	"where":    KwWhere,
	"this":     KwThis,
	"This":     KwThisType,
	"true":     KwTrue,
	"false":    KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Регистр важен: `This` и `this` это разные ключевые слова.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
