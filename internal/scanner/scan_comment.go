package scanner

import (
	"github.com/bcpeinhardt/hcl/internal/diag"
	"github.com/bcpeinhardt/hcl/internal/token"
)

// scanLineComment consumes a '#' or '//' comment up to (not including) the
// next newline. The token's span covers only the comment body, so its
// offset points right past the prefix. Если комментарий закрыт переводом
// строки, '\n' становится отложенным Newline-токеном; '\r' из CRLF не
// входит ни в лексему, ни в Newline. '\r' на конце файла — обычный байт
// тела: без '\n' за ним это не CRLF.
func (sc *Scanner) scanLineComment() token.Token {
	if !sc.cursor.Eat('#') {
		sc.cursor.Bump() // '/'
		sc.cursor.Bump() // '/'
	}

	start := sc.cursor.Mark()
	for !sc.cursor.EOF() && sc.cursor.Peek() != '\n' {
		sc.cursor.Bump()
	}
	sp := sc.cursor.SpanFrom(start)
	if sc.cursor.Peek() == '\n' && sp.End > sp.Start && sc.file.Content[sp.End-1] == '\r' {
		sp.End--
	}
	tok := token.Token{
		Kind: token.LineComment,
		Span: sp,
		Text: string(sc.file.Content[sp.Start:sp.End]),
	}

	if sc.cursor.Peek() == '\n' {
		nlStart := sc.cursor.Mark()
		sc.cursor.Bump()
		nl := token.Token{
			Kind: token.Newline,
			Span: sc.cursor.SpanFrom(nlStart),
			Text: "\n",
		}
		sc.pending = &nl
	}
	// комментарий в конце файла без '\n' — Newline не эмитим

	return tok
}

// scanBlockComment consumes '/* ... */'. Вложенность не поддерживается —
// первый '*/' закрывает комментарий. An unterminated comment is fatal for
// the whole scan: report and emit Invalid.
func (sc *Scanner) scanBlockComment() token.Token {
	open := sc.cursor.Mark()
	sc.cursor.Bump() // '/'
	sc.cursor.Bump() // '*'

	start := sc.cursor.Mark()
	for {
		b0, b1, ok := sc.cursor.Peek2()
		if !ok {
			break
		}
		if b0 == '*' && b1 == '/' {
			sp := sc.cursor.SpanFrom(start)
			sc.cursor.Bump()
			sc.cursor.Bump()
			return token.Token{
				Kind: token.InlineComment,
				Span: sp,
				Text: string(sc.file.Content[sp.Start:sp.End]),
			}
		}
		sc.cursor.Bump()
	}

	// '*/' так и не встретился
	for !sc.cursor.EOF() {
		sc.cursor.Bump()
	}
	sp := sc.cursor.SpanFrom(open)
	sc.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(sc.file.Content[sp.Start:sp.End]),
	}
}
