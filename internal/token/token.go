package token

import (
	"github.com/bcpeinhardt/hcl/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Offset returns the byte offset where the token's lexeme begins.
// For comments this is the first byte after the opening delimiter.
func (t Token) Offset() uint32 { return t.Span.Start }

// IsComment reports whether the token is a line or inline comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == InlineComment
}

// IsOpOrDelim reports whether the token is an operator or delimiter.
func (t Token) IsOpOrDelim() bool { return t.Kind == OpOrDelim }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
