/*
Package lexconf loads a lexer.Config from a YAML grammar document, giving
callers a data-driven alternative to assembling a Config (or a
lexbuild.Builder chain) in Go source: a thin, declarative front door onto
the flat Config the core lexer consumes.

Example document:

	line_comments: ["#"]
	integers:
	  type: 1
	  base: 10
	floats:
	  type: 2
	  base: 10
	puncts:
	  - {text: "+", type: 10}
	  - {text: "-", type: 11}
	keywords:
	  - {word: "if", type: 20}
	default_word_type: 30
*/
package lexconf

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ninesquared81/lexelgo/lexer"
)

// Grammar is the YAML-shaped representation of a lexer.Config.
type Grammar struct {
	LineComments      []string       `yaml:"line_comments"`
	NestableComments  []DelimPair    `yaml:"nestable_comments"`
	UnnestableComments []DelimPair   `yaml:"unnestable_comments"`
	LineStrings       []StringRule   `yaml:"line_strings"`
	MultilineStrings  []StringRule   `yaml:"multiline_strings"`
	StringEscapeChars string         `yaml:"string_escape_chars"`
	NumberSigns       []string       `yaml:"number_signs"`
	DigitSeparators   string         `yaml:"digit_separators"`
	Integers          *NumberDefault `yaml:"integers"`
	IntegerPrefixes   []PrefixRule   `yaml:"integer_prefixes"`
	IntegerSuffixes   []string       `yaml:"integer_suffixes"`
	Floats            *FloatDefault  `yaml:"floats"`
	FloatPrefixes     []FloatPrefix  `yaml:"float_prefixes"`
	FloatSuffixes     []string       `yaml:"float_suffixes"`
	Puncts            []PunctRule    `yaml:"puncts"`
	Keywords          []KeywordRule  `yaml:"keywords"`
	DefaultWordType   int            `yaml:"default_word_type"`
	WordRule          string         `yaml:"word_rule"` // "symbolic" (default) or "word"
	EmitLineEndings   bool           `yaml:"emit_line_endings"`
	CollectLineEndings *bool         `yaml:"collect_line_endings"` // nil => default true
}

type DelimPair struct {
	Opener string `yaml:"opener"`
	Closer string `yaml:"closer"`
}

type StringRule struct {
	Opener string `yaml:"opener"`
	Closer string `yaml:"closer"`
	Type   int    `yaml:"type"`
}

type NumberDefault struct {
	Type int `yaml:"type"`
	Base int `yaml:"base"`
}

type FloatDefault struct {
	Type           int    `yaml:"type"`
	Base           int    `yaml:"base"`
	ExponentMarker string `yaml:"exponent_marker"`
}

type PrefixRule struct {
	Prefix string `yaml:"prefix"`
	Base   int    `yaml:"base"`
}

type FloatPrefix struct {
	Prefix         string `yaml:"prefix"`
	Base           int    `yaml:"base"`
	ExponentMarker string `yaml:"exponent_marker"`
}

type PunctRule struct {
	Text string `yaml:"text"`
	Type int    `yaml:"type"`
}

type KeywordRule struct {
	Word string `yaml:"word"`
	Type int    `yaml:"type"`
}

// Parse decodes a YAML grammar document into a lexer.Config, applying
// lexel's usual defaults (radix separator ".", exponent signs "+"/"-",
// exponent marker "e", symbolic word lexing, line endings folded into
// whitespace) for anything the document doesn't mention, then validates
// the result.
func Parse(doc []byte) (lexer.Config, error) {
	var g Grammar
	if err := yaml.Unmarshal(doc, &g); err != nil {
		return lexer.Config{}, fmt.Errorf("lexconf: parsing grammar: %w", err)
	}
	return g.toConfig()
}

func (g Grammar) toConfig() (lexer.Config, error) {
	cfg := lexer.DefaultConfig()

	cfg.LineCommentOpeners = g.LineComments
	for _, d := range g.NestableComments {
		cfg.NestableCommentDelims = append(cfg.NestableCommentDelims, lexer.DelimPair{Opener: d.Opener, Closer: d.Closer})
	}
	for _, d := range g.UnnestableComments {
		cfg.UnnestableCommentDelims = append(cfg.UnnestableCommentDelims, lexer.DelimPair{Opener: d.Opener, Closer: d.Closer})
	}
	for _, s := range g.LineStrings {
		cfg.LineStrings = append(cfg.LineStrings, lexer.StringRule{Opener: s.Opener, Closer: s.Closer, Type: lexer.TokenType(s.Type)})
	}
	for _, s := range g.MultilineStrings {
		cfg.MultilineStrings = append(cfg.MultilineStrings, lexer.StringRule{Opener: s.Opener, Closer: s.Closer, Type: lexer.TokenType(s.Type)})
	}
	cfg.StringEscapeChars = g.StringEscapeChars
	cfg.NumberSigns = g.NumberSigns
	cfg.DigitSeparators = g.DigitSeparators

	if g.Integers != nil {
		cfg.DefaultIntType = lexer.TokenType(g.Integers.Type)
		cfg.DefaultIntBase = g.Integers.Base
	}
	for _, p := range g.IntegerPrefixes {
		cfg.IntegerPrefixes = append(cfg.IntegerPrefixes, lexer.IntegerPrefixRule{Prefix: p.Prefix, Base: p.Base})
	}
	cfg.IntegerSuffixes = g.IntegerSuffixes

	if g.Floats != nil {
		cfg.DefaultFloatType = lexer.TokenType(g.Floats.Type)
		cfg.DefaultFloatBase = g.Floats.Base
		if g.Floats.ExponentMarker != "" {
			cfg.DefaultExponentMarker = g.Floats.ExponentMarker
		}
	}
	for _, p := range g.FloatPrefixes {
		cfg.FloatPrefixes = append(cfg.FloatPrefixes, lexer.FloatPrefixRule{
			Prefix: p.Prefix, Base: p.Base, ExponentMarker: p.ExponentMarker,
		})
	}
	cfg.FloatSuffixes = g.FloatSuffixes

	for _, p := range g.Puncts {
		cfg.Puncts = append(cfg.Puncts, lexer.PunctRule{Text: p.Text, Type: lexer.TokenType(p.Type)})
	}
	for _, k := range g.Keywords {
		cfg.Keywords = append(cfg.Keywords, lexer.KeywordRule{Word: k.Word, Type: lexer.TokenType(k.Type)})
	}
	if g.DefaultWordType != 0 {
		cfg.DefaultWordType = lexer.TokenType(g.DefaultWordType)
	}
	switch g.WordRule {
	case "", "symbolic":
		cfg.WordLexingRule = lexer.LexSymbolic
	case "word":
		cfg.WordLexingRule = lexer.LexWord
	default:
		return lexer.Config{}, fmt.Errorf("lexconf: unknown word_rule %q", g.WordRule)
	}

	cfg.EmitLineEndings = g.EmitLineEndings
	if g.CollectLineEndings != nil {
		cfg.CollectLineEndings = *g.CollectLineEndings
	}

	if err := cfg.Validate(); err != nil {
		return lexer.Config{}, err
	}
	return cfg, nil
}
