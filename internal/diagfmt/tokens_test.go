package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bcpeinhardt/hcl/internal/source"
	"github.com/bcpeinhardt/hcl/internal/token"
)

func TestFormatTokensJSON_Shape(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Ident, Span: source.Span{Start: 0, End: 3}, Text: "Foo"},
		{Kind: token.OpOrDelim, Span: source.Span{Start: 4, End: 5}, Text: "+"},
	}

	var sb strings.Builder
	if err := FormatTokensJSON(&sb, tokens); err != nil {
		t.Fatal(err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, sb.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(decoded))
	}
	if decoded[0].Kind != "Ident" || decoded[0].Lexeme != "Foo" || decoded[0].ByteOffset != 0 {
		t.Errorf("entry 0 = %+v", decoded[0])
	}
	if decoded[1].Kind != "OpOrDelim" || decoded[1].Lexeme != "+" || decoded[1].ByteOffset != 4 {
		t.Errorf("entry 1 = %+v", decoded[1])
	}

	// поле офсета называется byte_offset
	if !strings.Contains(sb.String(), `"byte_offset"`) {
		t.Errorf("JSON must use the byte_offset key:\n%s", sb.String())
	}
}

func TestFormatTokensJSON_Empty(t *testing.T) {
	var sb strings.Builder
	if err := FormatTokensJSON(&sb, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(sb.String()); got != "[]" {
		t.Fatalf("empty stream must encode as [], got %q", got)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hcl", []byte("Foo + Bar"))
	tokens := []token.Token{
		{Kind: token.Ident, Span: source.Span{File: id, Start: 0, End: 3}, Text: "Foo"},
		{Kind: token.OpOrDelim, Span: source.Span{File: id, Start: 4, End: 5}, Text: "+"},
		{Kind: token.Ident, Span: source.Span{File: id, Start: 6, End: 9}, Text: "Bar"},
	}

	var sb strings.Builder
	if err := FormatTokensPretty(&sb, tokens, fs); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), sb.String())
	}
	if !strings.Contains(lines[0], "Ident") || !strings.Contains(lines[0], `"Foo"`) || !strings.Contains(lines[0], "at 0 (1:1)") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "OpOrDelim") || !strings.Contains(lines[1], "at 4 (1:5)") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "at 6 (1:7)") {
		t.Errorf("line 2 = %q", lines[2])
	}
}
