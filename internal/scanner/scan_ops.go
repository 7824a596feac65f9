package scanner

import (
	"unicode/utf8"

	"github.com/bcpeinhardt/hcl/internal/diag"
	"github.com/bcpeinhardt/hcl/internal/token"
)

// scanOpOrDelim matches the fixed operator/delimiter table.
// Жадность: сначала 3-символьные, затем 2-символьные, затем одиночные.
// Набор литералов: ... %{ ${ <= >= == => != && || и одиночные
// { } [ ] ( ) + - * / % < > = ! . : ? ,
// '$', '&' и '|' сами по себе операторами не являются.
func (sc *Scanner) scanOpOrDelim() token.Token {
	start := sc.cursor.Mark()
	emit := func() token.Token {
		sp := sc.cursor.SpanFrom(start)
		return token.Token{
			Kind: token.OpOrDelim,
			Span: sp,
			Text: string(sc.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case sc.try3('.', '.', '.'):
		return emit()
	case sc.try2('%', '{'),
		sc.try2('$', '{'),
		sc.try2('<', '='),
		sc.try2('>', '='),
		sc.try2('=', '='),
		sc.try2('=', '>'),
		sc.try2('!', '='),
		sc.try2('&', '&'),
		sc.try2('|', '|'):
		return emit()
	}

	// односимвольные
	ch := sc.cursor.Bump()
	switch ch {
	case '{', '}', '[', ']', '(', ')',
		'+', '-', '*', '/', '%',
		'<', '>', '=', '!',
		'.', ':', '?', ',':
		return emit()
	}

	// символ, который сканер ещё не поддерживает
	if ch >= utf8.RuneSelf {
		// съедаем руну целиком, чтобы span был осмысленным
		_, size := utf8.DecodeRune(sc.file.Content[uint32(start):])
		for i := 1; i < size; i++ {
			sc.cursor.Bump()
		}
	}
	sp := sc.cursor.SpanFrom(start)
	msg := "unrecognized character"
	switch {
	case isDigit(ch):
		msg = "numeric literals are not supported yet"
	case ch == '"':
		msg = "string literals are not supported yet"
	}
	sc.errLex(diag.LexUnknownChar, sp, msg)
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(sc.file.Content[sp.Start:sp.End]),
	}
}
