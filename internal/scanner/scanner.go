// Package scanner converts HCL-style configuration source into a stream of
// typed tokens with byte offsets. The scanner has a single mode: template
// interpolation bodies are not entered, the '${' and '%{' openers are
// ordinary operator tokens.
package scanner

import (
	"github.com/bcpeinhardt/hcl/internal/source"
	"github.com/bcpeinhardt/hcl/internal/token"
)

// Scanner reads tokens from a single source file.
type Scanner struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	pending *token.Token // 1-элементный буфер: Newline после строчного комментария
}

// New creates a scanner positioned at the start of file.
func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
//
// Dispatch order per step: pending token, whitespace skip, '#' / '//' line
// comment, '/*' block comment, operator table, identifier. Anything left
// over (digits, quotes, non-ASCII) is reported as an unrecognized character
// and produces an Invalid token.
func (sc *Scanner) Next() token.Token {
	// 1) Если есть отложенный токен — вернуть его
	if sc.pending != nil {
		tok := *sc.pending
		sc.pending = nil
		return tok
	}

	// 2) Пробелы, табы и переводы строк токенов не дают
	sc.skipWhitespace()

	if sc.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: sc.emptySpan(),
			Text: "",
		}
	}

	ch := sc.cursor.Peek()
	switch {
	case ch == '#':
		return sc.scanLineComment()

	case ch == '/':
		if _, b1, ok := sc.cursor.Peek2(); ok {
			switch b1 {
			case '/':
				return sc.scanLineComment()
			case '*':
				return sc.scanBlockComment()
			}
		}
		// одиночный '/' — оператор
		return sc.scanOpOrDelim()

	case isAlpha(ch):
		return sc.scanIdent()

	default:
		// операторы, разделители и всё нераспознанное
		return sc.scanOpOrDelim()
	}
}

// skipWhitespace consumes spaces, tabs, newlines and CRLF pairs. A lone
// '\r' is not whitespace and falls through to the unrecognized-character
// path.
func (sc *Scanner) skipWhitespace() {
	for {
		switch sc.cursor.Peek() {
		case ' ', '\t', '\n':
			sc.cursor.Bump()
		case '\r':
			if _, b1, ok := sc.cursor.Peek2(); ok && b1 == '\n' {
				sc.cursor.Bump()
				sc.cursor.Bump()
				continue
			}
			return
		default:
			return
		}
	}
}

func (sc *Scanner) emptySpan() source.Span {
	return source.Span{File: sc.file.ID, Start: sc.cursor.Off, End: sc.cursor.Off}
}
