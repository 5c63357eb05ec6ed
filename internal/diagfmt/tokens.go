package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"fire/internal/token"
)

type TokenOutput struct {
	Kind   string  `json:"kind"`
	Text   string  `json:"text,omitempty"`
	Line   uint32  `json:"line"`
	Column uint32  `json:"column"`
	Width  uint32  `json:"width"`
	Int    int64   `json:"int,omitempty"`
	Float  float64 `json:"float,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		switch tok.Kind {
		case token.Ident, token.StringLit, token.Annotation:
			fmt.Fprintf(w, " %q", tok.Text)
		case token.IntLit:
			fmt.Fprintf(w, " %d", tok.Int)
		case token.FloatLit:
			fmt.Fprintf(w, " %g", tok.Float)
		}
		fmt.Fprintf(w, " at %d:%d+%d\n", tok.Line, tok.Column, tok.Width)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:   tok.Kind.String(),
			Line:   tok.Line,
			Column: tok.Column,
			Width:  tok.Width,
			Int:    tok.Int,
			Float:  tok.Float,
		}
		switch tok.Kind {
		case token.Ident, token.StringLit, token.Annotation:
			out.Text = tok.Text
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
