package lexconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninesquared81/lexelgo/lexconf"
	"github.com/ninesquared81/lexelgo/lexer"
)

const doc = `
line_comments: ["#"]
nestable_comments:
  - {opener: "/*", closer: "*/"}
integers:
  type: 1
  base: 10
integer_prefixes:
  - {prefix: "0x", base: 16}
floats:
  type: 2
  base: 10
puncts:
  - {text: "+", type: 10}
  - {text: "-", type: 11}
keywords:
  - {word: "if", type: 20}
default_word_type: 30
word_rule: word
`

func TestParseProducesUsableConfig(t *testing.T) {
	cfg, err := lexconf.Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"#"}, cfg.LineCommentOpeners)
	assert.Equal(t, lexer.TokenType(1), cfg.DefaultIntType)
	assert.Equal(t, 10, cfg.DefaultIntBase)
	assert.Equal(t, []lexer.IntegerPrefixRule{{Prefix: "0x", Base: 16}}, cfg.IntegerPrefixes)
	assert.Equal(t, lexer.TokenType(2), cfg.DefaultFloatType)
	assert.Equal(t, []lexer.PunctRule{{Text: "+", Type: 10}, {Text: "-", Type: 11}}, cfg.Puncts)
	assert.Equal(t, []lexer.KeywordRule{{Word: "if", Type: 20}}, cfg.Keywords)
	assert.Equal(t, lexer.TokenType(30), cfg.DefaultWordType)
	assert.Equal(t, lexer.LexWord, cfg.WordLexingRule)

	l := lexer.New("if x + 1")
	l.Config = cfg
	tok := l.NextToken()
	assert.Equal(t, lexer.TokenType(20), tok.Type)
	assert.Equal(t, "if", tok.Value())
}

func TestParseRejectsUnknownWordRule(t *testing.T) {
	_, err := lexconf.Parse([]byte("word_rule: bogus\n"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidBase(t *testing.T) {
	_, err := lexconf.Parse([]byte("integers:\n  type: 1\n  base: 99\n"))
	assert.Error(t, err)
}

func TestParseAppliesDefaultsWhenDocumentIsEmpty(t *testing.T) {
	cfg, err := lexconf.Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, lexer.LexSymbolic, cfg.WordLexingRule)
	assert.Equal(t, ".", cfg.RadixSeparators[0])
	assert.Equal(t, "e", cfg.DefaultExponentMarker)
	assert.True(t, cfg.CollectLineEndings)
}
