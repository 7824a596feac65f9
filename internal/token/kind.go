package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LineComment is a '//' or '#' comment; Text excludes the prefix and
	// the terminating newline (and a trailing '\r' on CRLF lines).
	LineComment
	// InlineComment is a '/* ... */' comment; Text excludes the delimiters.
	InlineComment
	// Newline is the '\n' that terminates a line comment.
	Newline
	// HorizontalTab is reserved; tabs are currently skipped as whitespace.
	HorizontalTab
	// Ident is an identifier.
	Ident
	// NumberLit is reserved; numeric literals are not scanned yet.
	NumberLit
	// OpOrDelim is an operator or delimiter; Text holds the exact literal.
	OpOrDelim
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	LineComment:   "LineComment",
	InlineComment: "InlineComment",
	Newline:       "Newline",
	HorizontalTab: "HorizontalTab",
	Ident:         "Ident",
	NumberLit:     "NumberLit",
	OpOrDelim:     "OpOrDelim",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
