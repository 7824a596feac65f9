package scanner

// isAlpha reports whether b is an ASCII letter. Case-insensitive via bit
// fold; никакого Unicode — полная классификация ID_Start/ID_Continue
// пока не поддерживается.
func isAlpha(b byte) bool {
	b |= 0x20
	return b >= 'a' && b <= 'z'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isIdentContinue accepts everything after an identifier's first byte:
// буквы, цифры, '_' и '-' в любой позиции.
func isIdentContinue(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_' || b == '-'
}

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (sc *Scanner) try2(a, b byte) bool {
	b0, b1, ok := sc.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	sc.cursor.Bump()
	sc.cursor.Bump()
	return true
}

func (sc *Scanner) try3(a, b, c byte) bool {
	b0, b1, b2, ok := sc.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	sc.cursor.Bump()
	sc.cursor.Bump()
	sc.cursor.Bump()
	return true
}
