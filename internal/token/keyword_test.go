package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"let":      KwLet,
		"let!":     KwLetBang,
		"fn":       KwFn,
		"fn!":      KwFnBang,
		"proc":     KwProc,
		"return":   KwReturn,
		"struct":   KwStruct,
		"trait":    KwTrait,
		"impl":     KwImpl,
		"private":  KwPrivate,
		"where":    KwWhere,
		"this":     KwThis,
		"This":     KwThisType,
		"true":     KwTrue,
		"false":    KwFalse,
		"continue": KwContinue,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// регистр важен, `in` контекстное слово, `__kindling` обычный идентификатор
	notKw := []string{
		"Let", "FN", "THIS", "True",
		"in", "__kindling", "Int", "proc!", "if!",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKeywordTableMatchesKindNames(t *testing.T) {
	for lexeme, k := range keywords {
		if !k.IsKeyword() {
			t.Errorf("%q maps to non-keyword kind %v", lexeme, k)
		}
		if k.String() != lexeme {
			t.Errorf("kind %d prints as %q, want %q", k, k.String(), lexeme)
		}
	}
}
