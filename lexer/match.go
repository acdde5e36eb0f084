package lexer

import "strings"

const whitespaceCharsNoLF = " \t\r\f\v"
const whitespaceChars = whitespaceCharsNoLF + "\n"

// checkChars reports whether the byte at current is one of chars, without
// consuming it.
func (l *Lexer) checkChars(chars string) bool {
	if chars == "" || l.isAtEnd() {
		return false
	}
	return strings.IndexByte(chars, l.source[l.current]) >= 0
}

// matchChars consumes the byte at current if it is one of chars.
func (l *Lexer) matchChars(chars string) bool {
	if l.checkChars(chars) {
		l.advance()
		return true
	}
	return false
}

// checkString reports whether s occurs literally at current, without
// consuming it. Fails if fewer than len(s) bytes remain.
func (l *Lexer) checkString(s string) bool {
	if len(s) > l.tailLength() {
		return false
	}
	return l.source[l.current:l.current+len(s)] == s
}

// matchString consumes s if it occurs literally at current.
func (l *Lexer) matchString(s string) bool {
	if l.checkString(s) {
		return l.advanceBy(len(s))
	}
	return false
}

// checkStringN is the bounded variant of checkString: it compares only the
// first n bytes of s (clamped to both len(s) and the remaining tail).
func (l *Lexer) checkStringN(s string, n int) bool {
	if n > len(s) {
		n = len(s)
	}
	if n > l.tailLength() {
		n = l.tailLength()
	}
	return l.source[l.current:l.current+n] == s[:n]
}

// matchStringN consumes the bounded prefix checkStringN inspected.
func (l *Lexer) matchStringN(s string, n int) bool {
	if n > len(s) {
		n = len(s)
	}
	if l.checkStringN(s, n) {
		return l.advanceBy(n)
	}
	return false
}

// checkStrings reports the first string in list that matches at current,
// without consuming it. Ordering is caller-controlled: longer alternatives
// must precede their prefixes to avoid shadowing.
func (l *Lexer) checkStrings(list []string) (string, bool) {
	for _, s := range list {
		if l.checkString(s) {
			return s, true
		}
	}
	return "", false
}

// matchStrings consumes the first string in list that matches at current.
func (l *Lexer) matchStrings(list []string) (string, bool) {
	for _, s := range list {
		if l.matchString(s) {
			return s, true
		}
	}
	return "", false
}

// checkWhitespace reports whether current is a whitespace byte, treating a
// line feed as whitespace only when the lexer cannot emit it as its own
// token right now.
func (l *Lexer) checkWhitespace() bool {
	if l.canEmitLineEnding() {
		return l.checkChars(whitespaceCharsNoLF)
	}
	return l.checkChars(whitespaceChars)
}

// checkReserved reports whether current begins whitespace, a comment, a
// string opener, or punctuation — i.e. anything that ends a bare word.
func (l *Lexer) checkReserved() bool {
	return l.checkChars(whitespaceChars) ||
		l.checkLineComment() ||
		l.checkBlockComment() ||
		l.checkStringOpenerAny() ||
		l.checkPunct() != nil
}

func (l *Lexer) checkLineComment() bool {
	_, ok := l.checkStrings(l.LineCommentOpeners)
	return ok
}

func (l *Lexer) checkNestableComment() bool {
	for _, d := range l.NestableCommentDelims {
		if l.checkString(d.Opener) {
			return true
		}
	}
	return false
}

func (l *Lexer) checkUnnestableComment() bool {
	for _, d := range l.UnnestableCommentDelims {
		if l.checkString(d.Opener) {
			return true
		}
	}
	return false
}

func (l *Lexer) checkBlockComment() bool {
	return l.checkNestableComment() || l.checkUnnestableComment()
}

// stringKind selects which delimiter family a string-opener check or match
// should consult.
type stringKind int

const (
	stringLine stringKind = iota
	stringMultiline
)

func (l *Lexer) stringRules(kind stringKind) []StringRule {
	if kind == stringLine {
		return l.LineStrings
	}
	return l.MultilineStrings
}

// checkStringOpener returns the first configured string rule (of the given
// kind) whose opener matches at current, without consuming it.
func (l *Lexer) checkStringOpener(kind stringKind) (*StringRule, bool) {
	rules := l.stringRules(kind)
	for i := range rules {
		if l.checkString(rules[i].Opener) {
			return &rules[i], true
		}
	}
	return nil, false
}

func (l *Lexer) checkStringOpenerAny() bool {
	if _, ok := l.checkStringOpener(stringLine); ok {
		return true
	}
	_, ok := l.checkStringOpener(stringMultiline)
	return ok
}

// matchStringOpener consumes the opener of the first matching string rule.
func (l *Lexer) matchStringOpener(kind stringKind) (*StringRule, bool) {
	rules := l.stringRules(kind)
	for i := range rules {
		if l.matchString(rules[i].Opener) {
			return &rules[i], true
		}
	}
	return nil, false
}

func (l *Lexer) checkDigit(base int) bool {
	if base == 0 || l.isAtEnd() {
		return false
	}
	return isDigit(l.source[l.current], base)
}

func (l *Lexer) matchDigit(base int) bool {
	if !l.checkDigit(base) {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) checkDigitSeparator() bool {
	return l.checkChars(l.DigitSeparators)
}

func (l *Lexer) matchDigitSeparator() bool {
	return l.matchChars(l.DigitSeparators)
}

func (l *Lexer) checkDigitOrSeparator(base int) bool {
	return l.checkDigit(base) || l.checkDigitSeparator()
}

func (l *Lexer) matchDigitOrSeparator(base int) bool {
	if l.matchDigit(base) {
		return true
	}
	return l.matchDigitSeparator()
}

// checkIntPrefix detects an integer prefix, tolerating (and rewinding) a
// leading number sign. Returns the base to lex in, or 0 if no integer can
// start here.
func (l *Lexer) checkIntPrefix() int {
	start := l.current
	l.matchNumberSign()
	defer l.rewindTo(start)
	for _, rule := range l.IntegerPrefixes {
		if l.checkString(rule.Prefix) {
			return rule.Base
		}
	}
	if l.checkDigit(l.DefaultIntBase) {
		return l.DefaultIntBase
	}
	return 0
}

// matchIntPrefix is checkIntPrefix's consuming counterpart: on success, the
// sign and prefix (if any) remain consumed.
func (l *Lexer) matchIntPrefix() int {
	l.matchNumberSign()
	for _, rule := range l.IntegerPrefixes {
		if l.matchString(rule.Prefix) {
			return rule.Base
		}
	}
	if l.checkDigit(l.DefaultIntBase) {
		return l.DefaultIntBase
	}
	return 0
}

func (l *Lexer) checkIntSuffix() bool {
	_, ok := l.checkStrings(l.IntegerSuffixes)
	return ok
}

func (l *Lexer) matchIntSuffix() bool {
	_, ok := l.matchStrings(l.IntegerSuffixes)
	return ok
}

// checkFloatPrefix mirrors checkIntPrefix for float literals, additionally
// reporting the exponent marker associated with whichever prefix matched.
func (l *Lexer) checkFloatPrefix() (base int, exponentMarker string) {
	start := l.current
	l.matchNumberSign()
	defer l.rewindTo(start)
	for _, rule := range l.FloatPrefixes {
		if l.checkString(rule.Prefix) {
			return rule.Base, rule.ExponentMarker
		}
	}
	if l.checkDigit(l.DefaultFloatBase) {
		return l.DefaultFloatBase, l.DefaultExponentMarker
	}
	return 0, ""
}

func (l *Lexer) matchFloatPrefix() (base int, exponentMarker string) {
	l.matchNumberSign()
	for _, rule := range l.FloatPrefixes {
		if l.matchString(rule.Prefix) {
			return rule.Base, rule.ExponentMarker
		}
	}
	if l.checkDigit(l.DefaultFloatBase) {
		return l.DefaultFloatBase, l.DefaultExponentMarker
	}
	return 0, ""
}

func (l *Lexer) checkFloatSuffix() bool {
	_, ok := l.checkStrings(l.FloatSuffixes)
	return ok
}

func (l *Lexer) matchFloatSuffix() bool {
	_, ok := l.matchStrings(l.FloatSuffixes)
	return ok
}

func (l *Lexer) checkNumberSign() bool {
	_, ok := l.checkStrings(l.NumberSigns)
	return ok
}

func (l *Lexer) matchNumberSign() bool {
	_, ok := l.matchStrings(l.NumberSigns)
	return ok
}

func (l *Lexer) checkRadixSeparator() bool {
	_, ok := l.checkStrings(l.RadixSeparators)
	return ok
}

func (l *Lexer) matchRadixSeparator() bool {
	_, ok := l.matchStrings(l.RadixSeparators)
	return ok
}

func (l *Lexer) checkExponentSign() bool {
	_, ok := l.checkStrings(l.ExponentSigns)
	return ok
}

func (l *Lexer) matchExponentSign() bool {
	_, ok := l.matchStrings(l.ExponentSigns)
	return ok
}

// checkPunct returns the first configured punctuation rule matching at
// current, without consuming it.
func (l *Lexer) checkPunct() *PunctRule {
	for i := range l.Puncts {
		if l.checkString(l.Puncts[i].Text) {
			return &l.Puncts[i]
		}
	}
	return nil
}

// matchPunct consumes the first configured punctuation rule matching at
// current.
func (l *Lexer) matchPunct() *PunctRule {
	for i := range l.Puncts {
		if l.matchString(l.Puncts[i].Text) {
			return &l.Puncts[i]
		}
	}
	return nil
}
