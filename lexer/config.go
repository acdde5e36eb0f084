package lexer

import "fmt"

// DelimPair is a pair of opener/closer strings, e.g. ("/*", "*/") for a
// C-style block comment.
type DelimPair struct {
	Opener string
	Closer string
}

// StringRule binds a string-literal delimiter pair to the token type
// emitted when that delimiter opens a string.
type StringRule struct {
	Opener string
	Closer string
	Type   TokenType
}

// IntegerPrefixRule binds an integer-literal prefix (e.g. "0x") to the base
// it selects.
type IntegerPrefixRule struct {
	Prefix string
	Base   int
}

// FloatPrefixRule binds a float-literal prefix to its base and the
// exponent marker recognised for literals with that prefix (e.g. "0x" /
// base 16 / exponent marker "p", following C hex-float conventions).
type FloatPrefixRule struct {
	Prefix         string
	Base           int
	ExponentMarker string
}

// PunctRule binds a punctuation spelling to its token type.
type PunctRule struct {
	Text string
	Type TokenType
}

// KeywordRule binds a reserved word to its token type.
type KeywordRule struct {
	Word string
	Type TokenType
}

// WordLexingRule selects how a bare word (not a string, number or
// punctuation) is scanned.
type WordLexingRule int

const (
	// LexSymbolic consumes any run of non-whitespace bytes.
	LexSymbolic WordLexingRule = iota
	// LexWord consumes bytes until a "reserved" byte is seen (whitespace,
	// a comment opener, a string opener, or punctuation).
	LexWord
)

// Config is the caller-supplied lexical grammar. Every list field except
// ExponentSigns and RadixSeparators (which default to "+"/"-" and ".") is a
// nil slice by default, meaning "this feature is disabled" — never an
// empty-but-present slice with special meaning. Config is read-only from
// the scanning engine's point of view; callers may mutate it between
// NextToken calls but never while a token is being built.
type Config struct {
	LineCommentOpeners      []string
	NestableCommentDelims   []DelimPair
	UnnestableCommentDelims []DelimPair

	LineStrings      []StringRule
	MultilineStrings []StringRule
	StringEscapeChars string

	NumberSigns     []string
	DigitSeparators string

	IntegerPrefixes  []IntegerPrefixRule
	IntegerSuffixes  []string
	DefaultIntType   TokenType
	DefaultIntBase   int

	FloatPrefixes         []FloatPrefixRule
	ExponentSigns         []string
	RadixSeparators       []string
	FloatSuffixes         []string
	DefaultFloatType      TokenType
	DefaultFloatBase      int
	DefaultExponentMarker string

	Puncts   []PunctRule
	Keywords []KeywordRule

	DefaultWordType TokenType
	WordLexingRule  WordLexingRule

	LineEndingType      TokenType
	EmitLineEndings     bool
	CollectLineEndings  bool

	Hooks Hooks
}

// DefaultConfig returns a Config with lexel's baseline defaults: no
// comments, no strings, no numbers, no punctuation, no keywords, symbolic
// word lexing, and line endings folded silently into whitespace. Every
// feature must be explicitly turned on by the caller; nothing is on by
// default.
func DefaultConfig() Config {
	return Config{
		DefaultIntType:        TokenUninit,
		DefaultIntBase:        0,
		ExponentSigns:         []string{"+", "-"},
		RadixSeparators:       []string{"."},
		DefaultFloatType:      TokenUninit,
		DefaultFloatBase:      0,
		DefaultExponentMarker: "e",
		DefaultWordType:       TokenUninit,
		WordLexingRule:        LexSymbolic,
		LineEndingType:        TokenLineEnding,
		EmitLineEndings:       false,
		CollectLineEndings:    true,
		Hooks:                 NoopHooks{},
	}
}

// Validate checks the basic invariants on configuration: every base must
// be in [2, 36], or 0 to mean "disabled."
func (c Config) Validate() error {
	checkBase := func(name string, base int) error {
		if base != 0 && (base < 2 || base > 36) {
			return fmt.Errorf("lexer: %s must be 0 or in [2, 36], got %d", name, base)
		}
		return nil
	}
	if err := checkBase("DefaultIntBase", c.DefaultIntBase); err != nil {
		return err
	}
	if err := checkBase("DefaultFloatBase", c.DefaultFloatBase); err != nil {
		return err
	}
	for _, rule := range c.IntegerPrefixes {
		if err := checkBase(fmt.Sprintf("IntegerPrefixes[%q].Base", rule.Prefix), rule.Base); err != nil {
			return err
		}
	}
	for _, rule := range c.FloatPrefixes {
		if err := checkBase(fmt.Sprintf("FloatPrefixes[%q].Base", rule.Prefix), rule.Base); err != nil {
			return err
		}
		if rule.ExponentMarker == "" {
			return fmt.Errorf("lexer: FloatPrefixes[%q] needs a non-empty ExponentMarker", rule.Prefix)
		}
	}
	return nil
}
