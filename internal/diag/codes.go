package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	// UnknownCode - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	// Зарезервированы под будущие шаги сканера (строки, числа).
	LexUnterminatedString Code = 1003
	LexBadNumber          Code = 1004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexInfo:                     "lexical info",
	LexUnknownChar:              "unrecognized character",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexUnterminatedString:       "unterminated string literal",
	LexBadNumber:                "malformed numeric literal",
}

// ID returns the stable textual identifier, e.g. "LEX1001".
func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("LEX%04d", ic)
	}
	return "E0000"
}

// Title returns a short human description of the code.
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
