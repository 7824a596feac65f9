package token

import (
	"testing"

	"github.com/bcpeinhardt/hcl/internal/source"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{LineComment, "LineComment"},
		{InlineComment, "InlineComment"},
		{Newline, "Newline"},
		{HorizontalTab, "HorizontalTab"},
		{Ident, "Ident"},
		{NumberLit, "NumberLit"},
		{OpOrDelim, "OpOrDelim"},
		{Kind(200), "Kind(?)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestToken_Offset(t *testing.T) {
	tok := Token{
		Kind: Ident,
		Span: source.Span{Start: 7, End: 10},
		Text: "foo",
	}
	if tok.Offset() != 7 {
		t.Fatalf("Offset() = %d, want 7", tok.Offset())
	}
}

func TestToken_Predicates(t *testing.T) {
	if !(Token{Kind: LineComment}).IsComment() {
		t.Errorf("LineComment must be a comment")
	}
	if !(Token{Kind: InlineComment}).IsComment() {
		t.Errorf("InlineComment must be a comment")
	}
	if (Token{Kind: Newline}).IsComment() {
		t.Errorf("Newline must not be a comment")
	}
	if !(Token{Kind: OpOrDelim}).IsOpOrDelim() {
		t.Errorf("OpOrDelim predicate failed")
	}
	if !(Token{Kind: Ident}).IsIdent() {
		t.Errorf("Ident predicate failed")
	}
	if (Token{Kind: Ident}).IsOpOrDelim() {
		t.Errorf("Ident must not be an operator")
	}
}
