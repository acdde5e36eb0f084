package lexer

// scanSymbolic consumes bytes until whitespace or end of input.
func (l *Lexer) scanSymbolic() int {
	start := l.current
	for !l.isAtEnd() && !l.checkChars(whitespaceChars) {
		l.advance()
	}
	return l.lengthFrom(start)
}

// scanWord consumes bytes until a reserved byte (whitespace, a comment or
// string opener, or punctuation) or end of input.
func (l *Lexer) scanWord() int {
	start := l.current
	for !l.isAtEnd() && !l.checkReserved() {
		l.advance()
	}
	return l.lengthFrom(start)
}

// scanString consumes a string body up to and including closer. An escape
// character (if configured) is consumed, and a closer directly after it is
// consumed literally — an escaped closer never terminates the string. Any
// other byte after an escape character is scanned as usual. Sets l.err to ErrUnclosedString if input ends (or, for a
// LXL_STRING_LINE-equivalent string, a line feed appears) before closer is
// found.
func (l *Lexer) scanString(closer string, kind stringKind) int {
	start := l.current
	for !l.matchString(closer) {
		if l.matchChars(l.StringEscapeChars) {
			l.matchString(closer) // escaped closer does not terminate the string
			continue
		}
		c := l.advance()
		atEnd := l.isAtEnd() && c == 0
		if atEnd || (c == '\n' && kind == stringLine) {
			l.err = ErrUnclosedString
			return l.lengthFrom(start)
		}
	}
	return l.lengthFrom(start)
}

// scanInteger consumes a run of digit(base) and digit-separator bytes. At
// least one real digit is required; if none is found, the speculative scan
// is un-lexed (after invoking BeforeUnlexInt) and 0 is returned.
func (l *Lexer) scanInteger(base int) int {
	start := l.current
	digitCount := 0
	for {
		if l.matchDigit(base) {
			digitCount++
		} else if l.matchDigitSeparator() {
			// A separator alone doesn't count as a digit.
		} else {
			break
		}
	}
	if digitCount <= 0 {
		l.Hooks.BeforeUnlexInt(l)
		l.rewindTo(start)
		return 0
	}
	return l.lengthFrom(start)
}

// scanFloat consumes an integer part, an optional fractional part (after a
// configured radix separator), and
// an optional exponent part (marker, optional sign, digits). At least one
// digit across all three parts is required, or the speculative scan is
// un-lexed (after invoking BeforeUnlexFloat) and 0 is returned.
func (l *Lexer) scanFloat(base int, exponentMarker string) int {
	start := l.current
	digitLength := l.scanInteger(base)
	if l.matchRadixSeparator() {
		digitLength += l.scanInteger(base)
	}
	if l.matchString(exponentMarker) {
		l.matchExponentSign()
		digitLength += l.scanInteger(base)
	}
	if digitLength <= 0 {
		l.Hooks.BeforeUnlexFloat(l)
		l.rewindTo(start)
		return 0
	}
	return l.lengthFrom(start)
}

// resolveWordType compares the just-scanned word (wordStart..current)
// against the configured keyword table, returning the matching keyword's
// type or DefaultWordType if none matches.
func (l *Lexer) resolveWordType(wordStart int) TokenType {
	if len(l.Keywords) == 0 {
		return l.DefaultWordType
	}
	word := l.source[wordStart:l.current]
	for _, kw := range l.Keywords {
		if kw.Word == word {
			return kw.Type
		}
	}
	return l.DefaultWordType
}
