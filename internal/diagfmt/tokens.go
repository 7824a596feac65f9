package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bcpeinhardt/hcl/internal/source"
	"github.com/bcpeinhardt/hcl/internal/token"
)

// TokenOutput is the serializable token shape consumed by downstream
// tooling (pretty-printers, snapshot tests).
type TokenOutput struct {
	Kind       string `json:"kind"`
	Lexeme     string `json:"lexeme"`
	ByteOffset uint32 `json:"byte_offset"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, _ := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d (%d:%d)", tok.Span.Start, startPos.Line, startPos.Col)
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:       tok.Kind.String(),
			Lexeme:     tok.Text,
			ByteOffset: tok.Span.Start,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
