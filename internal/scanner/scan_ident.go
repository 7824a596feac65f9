package scanner

import (
	"github.com/bcpeinhardt/hcl/internal/token"
)

// scanIdent consumes an identifier: an ASCII letter followed by a maximal
// run of letters, digits, '_' and '-'. Token.Text — ровно исходный срез.
//
// Это сознательное приближение номинальной грамматики
// ID_Start (ID_Continue | '-')*: только ASCII, и '-' разрешён в любой
// позиции после первого символа.
func (sc *Scanner) scanIdent() token.Token {
	start := sc.cursor.Mark()
	sc.cursor.Bump() // первый байт уже проверен диспетчером: isAlpha
	for isIdentContinue(sc.cursor.Peek()) {
		sc.cursor.Bump()
	}

	sp := sc.cursor.SpanFrom(start)
	text := string(sc.file.Content[sp.Start:sp.End])
	if sc.opts.Interner != nil {
		sc.opts.Interner.Intern(text)
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
