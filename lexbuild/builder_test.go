package lexbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ninesquared81/lexelgo/lexbuild"
	"github.com/ninesquared81/lexelgo/lexer"
)

func TestBuilderAssemblesConfig(t *testing.T) {
	cfg := lexbuild.New().
		WithLineComment("#", "//").
		WithNestableComment("/*", "*/").
		WithLineString(`"`, `"`, 10).
		WithStringEscapeChars(`\`).
		WithIntegers(1, 10).
		WithIntegerPrefix("0x", 16).
		WithFloats(2, 10).
		WithPunct("+", 20).
		WithKeyword("if", 30).
		WithDefaultWordType(40).
		WithWordLexingRule(lexer.LexWord).
		Build()

	assert.Equal(t, []string{"#", "//"}, cfg.LineCommentOpeners)
	assert.Equal(t, []lexer.DelimPair{{Opener: "/*", Closer: "*/"}}, cfg.NestableCommentDelims)
	assert.Equal(t, []lexer.StringRule{{Opener: `"`, Closer: `"`, Type: 10}}, cfg.LineStrings)
	assert.Equal(t, `\`, cfg.StringEscapeChars)
	assert.Equal(t, lexer.TokenType(1), cfg.DefaultIntType)
	assert.Equal(t, 10, cfg.DefaultIntBase)
	assert.Equal(t, []lexer.IntegerPrefixRule{{Prefix: "0x", Base: 16}}, cfg.IntegerPrefixes)
	assert.Equal(t, lexer.TokenType(2), cfg.DefaultFloatType)
	assert.Equal(t, []lexer.PunctRule{{Text: "+", Type: 20}}, cfg.Puncts)
	assert.Equal(t, []lexer.KeywordRule{{Word: "if", Type: 30}}, cfg.Keywords)
	assert.Equal(t, lexer.TokenType(40), cfg.DefaultWordType)
	assert.Equal(t, lexer.LexWord, cfg.WordLexingRule)
	assert.NoError(t, cfg.Validate())
}

func TestBuilderDefaultsAreDisabled(t *testing.T) {
	cfg := lexbuild.New().Build()
	assert.Nil(t, cfg.LineCommentOpeners)
	assert.Nil(t, cfg.Puncts)
	assert.Nil(t, cfg.Keywords)
	assert.Equal(t, 0, cfg.DefaultIntBase)
	assert.NoError(t, cfg.Validate())
}
