/*
Package lexbuild provides a fluent builder for lexer.Config.

The original C library builds its configuration arrays with a region
allocator and a family of variadic "builder" helper macros, because C has
no garbage collector and no slice literals. Go needs neither: Builder is a
thin convenience wrapper that appends to the same flat Config fields the
lexer package consumes directly. It holds no lexing logic of its own.
*/
package lexbuild

import "github.com/ninesquared81/lexelgo/lexer"

// Builder accumulates a lexer.Config through chained With... calls.
type Builder struct {
	cfg lexer.Config
}

// New starts a Builder from lexer.DefaultConfig().
func New() *Builder {
	return &Builder{cfg: lexer.DefaultConfig()}
}

// Build returns the accumulated Config. The Builder may keep being used
// afterwards; Build does not reset it.
func (b *Builder) Build() lexer.Config {
	return b.cfg
}

func (b *Builder) WithLineComment(openers ...string) *Builder {
	b.cfg.LineCommentOpeners = append(b.cfg.LineCommentOpeners, openers...)
	return b
}

func (b *Builder) WithNestableComment(opener, closer string) *Builder {
	b.cfg.NestableCommentDelims = append(b.cfg.NestableCommentDelims, lexer.DelimPair{Opener: opener, Closer: closer})
	return b
}

func (b *Builder) WithUnnestableComment(opener, closer string) *Builder {
	b.cfg.UnnestableCommentDelims = append(b.cfg.UnnestableCommentDelims, lexer.DelimPair{Opener: opener, Closer: closer})
	return b
}

func (b *Builder) WithLineString(opener, closer string, tokenType lexer.TokenType) *Builder {
	b.cfg.LineStrings = append(b.cfg.LineStrings, lexer.StringRule{Opener: opener, Closer: closer, Type: tokenType})
	return b
}

func (b *Builder) WithMultilineString(opener, closer string, tokenType lexer.TokenType) *Builder {
	b.cfg.MultilineStrings = append(b.cfg.MultilineStrings, lexer.StringRule{Opener: opener, Closer: closer, Type: tokenType})
	return b
}

func (b *Builder) WithStringEscapeChars(chars string) *Builder {
	b.cfg.StringEscapeChars = chars
	return b
}

func (b *Builder) WithDigitSeparators(chars string) *Builder {
	b.cfg.DigitSeparators = chars
	return b
}

func (b *Builder) WithNumberSigns(signs ...string) *Builder {
	b.cfg.NumberSigns = append(b.cfg.NumberSigns, signs...)
	return b
}

func (b *Builder) WithIntegers(tokenType lexer.TokenType, base int) *Builder {
	b.cfg.DefaultIntType = tokenType
	b.cfg.DefaultIntBase = base
	return b
}

func (b *Builder) WithIntegerPrefix(prefix string, base int) *Builder {
	b.cfg.IntegerPrefixes = append(b.cfg.IntegerPrefixes, lexer.IntegerPrefixRule{Prefix: prefix, Base: base})
	return b
}

func (b *Builder) WithIntegerSuffixes(suffixes ...string) *Builder {
	b.cfg.IntegerSuffixes = append(b.cfg.IntegerSuffixes, suffixes...)
	return b
}

func (b *Builder) WithFloats(tokenType lexer.TokenType, base int) *Builder {
	b.cfg.DefaultFloatType = tokenType
	b.cfg.DefaultFloatBase = base
	return b
}

func (b *Builder) WithFloatPrefix(prefix string, base int, exponentMarker string) *Builder {
	b.cfg.FloatPrefixes = append(b.cfg.FloatPrefixes, lexer.FloatPrefixRule{
		Prefix: prefix, Base: base, ExponentMarker: exponentMarker,
	})
	return b
}

func (b *Builder) WithFloatSuffixes(suffixes ...string) *Builder {
	b.cfg.FloatSuffixes = append(b.cfg.FloatSuffixes, suffixes...)
	return b
}

func (b *Builder) WithExponentMarker(marker string) *Builder {
	b.cfg.DefaultExponentMarker = marker
	return b
}

func (b *Builder) WithPunct(text string, tokenType lexer.TokenType) *Builder {
	b.cfg.Puncts = append(b.cfg.Puncts, lexer.PunctRule{Text: text, Type: tokenType})
	return b
}

func (b *Builder) WithKeyword(word string, tokenType lexer.TokenType) *Builder {
	b.cfg.Keywords = append(b.cfg.Keywords, lexer.KeywordRule{Word: word, Type: tokenType})
	return b
}

func (b *Builder) WithDefaultWordType(tokenType lexer.TokenType) *Builder {
	b.cfg.DefaultWordType = tokenType
	return b
}

func (b *Builder) WithWordLexingRule(rule lexer.WordLexingRule) *Builder {
	b.cfg.WordLexingRule = rule
	return b
}

func (b *Builder) WithLineEndings(emit, collect bool) *Builder {
	b.cfg.EmitLineEndings = emit
	b.cfg.CollectLineEndings = collect
	return b
}

func (b *Builder) WithHooks(hooks lexer.Hooks) *Builder {
	b.cfg.Hooks = hooks
	return b
}
