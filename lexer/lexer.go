package lexer

// NextToken produces the next token from the source, per the dispatch
// order: line ending, line string, multiline string, integer (with
// speculative re-lex into float on a trailing radix separator), float,
// punctuation, and finally a bare word resolved against the keyword table.
//
// Once the lexer is finished, NextToken returns the end-of-stream sentinel
// on every subsequent call.
func (l *Lexer) NextToken() Token {
	if l.IsFinished() {
		return l.createEndToken()
	}

	l.skipWhitespace()
	if l.err != ErrOK {
		return l.createErrorToken()
	}
	if l.isAtEnd() {
		return l.createEndToken()
	}

	tok := l.startToken()

	switch {
	case l.matchChars("\n"):
		// skipWhitespace only leaves a line feed in front of us when it
		// must become its own token.
		tok.Type = l.LineEndingType

	case hasStringOpener(l, stringLine):
		rule, _ := l.matchStringOpener(stringLine)
		l.scanString(rule.Closer, stringLine)
		tok.Type = rule.Type

	case hasStringOpener(l, stringMultiline):
		rule, _ := l.matchStringOpener(stringMultiline)
		l.scanString(rule.Closer, stringMultiline)
		tok.Type = rule.Type

	default:
		if base := l.matchIntPrefix(); base != 0 {
			l.lexInteger(&tok, base)
		} else if base, exp := l.matchFloatPrefix(); base != 0 {
			l.lexFloat(&tok, base, exp)
		} else if punct := l.matchPunct(); punct != nil {
			tok.Type = punct.Type
		} else {
			l.lexWord(&tok)
		}
	}

	l.finishToken(&tok)
	return tok
}

func hasStringOpener(l *Lexer, kind stringKind) bool {
	_, ok := l.checkStringOpener(kind)
	return ok
}

// lexInteger handles dispatch case (d): lex an integer, then check whether
// it is actually the integer part of a float (a radix separator follows
// and float lexing is enabled). On that path, it un-lexes back to the
// token start and re-dispatches into lexFloat. On zero digits, the token
// becomes an INVALID_INTEGER error token.
func (l *Lexer) lexInteger(tok *Token, base int) {
	if l.scanInteger(base) == 0 {
		tok.Type = ErrInvalidInteger
		return
	}
	tok.Type = l.DefaultIntType
	if l.checkRadixSeparator() && l.DefaultFloatBase != 0 {
		l.Hooks.BeforeUnlexInt(l)
		l.unlex()
		if base, exp := l.matchFloatPrefix(); base != 0 {
			l.lexFloat(tok, base, exp)
			return
		}
		tok.Type = ErrInvalidInteger
		return
	}
	// No suffix is consumed after a failed int->float re-lex; this path
	// only applies when there was no re-lex attempt.
	l.matchIntSuffix()
}

// lexFloat handles dispatch case (e), and also the re-lex continuation
// from lexInteger.
func (l *Lexer) lexFloat(tok *Token, base int, exponentMarker string) {
	if l.scanFloat(base, exponentMarker) == 0 {
		tok.Type = ErrInvalidFloat
		return
	}
	tok.Type = l.DefaultFloatType
	l.matchFloatSuffix()
}

// lexWord handles dispatch case (g): scan a bare word per WordLexingRule
// and resolve it against the keyword table.
func (l *Lexer) lexWord(tok *Token) {
	switch l.WordLexingRule {
	case LexWord:
		l.scanWord()
	default:
		l.scanSymbolic()
	}
	tok.Type = l.resolveWordType(tok.Start)
}

// startToken begins a new token at the current position.
func (l *Lexer) startToken() Token {
	if l.status == statusReady {
		l.status = statusLexing
	}
	l.tokenStart = l.current
	return Token{
		Src:   l.source,
		Start: l.current,
		End:   l.current,
		Loc:   l.loc,
		Type:  TokenUninit,
	}
}

// finishToken closes out tok: sets its end, promotes a pending lex error to
// the token's type (clearing the error slot), updates previousTokenType,
// and invokes AfterToken.
func (l *Lexer) finishToken(tok *Token) {
	tok.End = l.current
	if l.err != ErrOK {
		tok.Type = l.err
		l.err = ErrOK
	}
	l.previousTokenType = tok.Type
	if l.status == statusLexing {
		l.status = statusReady
	}
	l.Hooks.AfterToken(l, *tok)
}

func (l *Lexer) createEndToken() Token {
	tok := l.startToken()
	if l.status != statusFinishedAbnormal {
		tok.Type = TokenEnd
		l.status = statusFinished
	} else {
		tok.Type = TokenEndAbnormal
	}
	l.finishToken(&tok)
	return tok
}

func (l *Lexer) createErrorToken() Token {
	tok := l.startToken()
	if l.err == ErrOK {
		l.err = ErrGeneric
	}
	l.finishToken(&tok) // sets tok.Type from l.err and clears it
	return tok
}
