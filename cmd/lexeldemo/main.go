/*
File    : lexelgo/cmd/lexeldemo/main.go

lexeldemo is an interactive line-at-a-time tokenizer REPL. It reads a
line, runs it through a sample grammar, and prints every token the line
produces, colored by kind. It is an external collaborator of the core
lexer package: it drives the lexer but is not part of its interface.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ninesquared81/lexelgo/lexbuild"
	"github.com/ninesquared81/lexelgo/lexer"
)

// Color definitions for REPL output, matching the convention the rest of
// this codebase's interactive tools use.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Token types for the demo grammar. Negative values are reserved by the
// lexer itself, so ours start at zero.
const (
	tokID lexer.TokenType = iota
	tokInt
	tokFloat
	tokString
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokDef
)

func demoConfig() lexer.Config {
	return lexbuild.New().
		WithLineComment("#").
		WithIntegers(tokInt, 10).
		WithIntegerPrefix("0x", 16).
		WithFloats(tokFloat, 10).
		WithLineString(`"`, `"`, tokString).
		WithStringEscapeChars(`\`).
		WithDigitSeparators("_").
		WithPunct("+", tokPlus).
		WithPunct("-", tokMinus).
		WithPunct("*", tokStar).
		WithPunct("/", tokSlash).
		WithPunct("(", tokLParen).
		WithPunct(")", tokRParen).
		WithPunct("{", tokLBrace).
		WithPunct("}", tokRBrace).
		WithKeyword("def", tokDef).
		WithDefaultWordType(tokID).
		WithWordLexingRule(lexer.LexWord).
		Build()
}

func tokenName(t lexer.TokenType) string {
	switch t {
	case tokID:
		return "ID"
	case tokInt:
		return "INT"
	case tokFloat:
		return "FLOAT"
	case tokString:
		return "STRING"
	case tokPlus:
		return "+"
	case tokMinus:
		return "-"
	case tokStar:
		return "*"
	case tokSlash:
		return "/"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokLBrace:
		return "{"
	case tokRBrace:
		return "}"
	case tokDef:
		return "def"
	default:
		return lexer.ErrorMessage(t)
	}
}

func printToken(w io.Writer, tok lexer.Token) {
	if tok.IsError() {
		redColor.Fprintf(w, "  error: %s at %s (%q)\n", lexer.ErrorMessage(tok.Type), tok.Loc, tok.Value())
		return
	}
	if tok.IsEnd() {
		blueColor.Fprintf(w, "  <end>\n")
		return
	}
	yellowColor.Fprintf(w, "  %-6s %q @%s\n", tokenName(tok.Type), tok.Value(), tok.Loc)
}

func tokenizeLine(w io.Writer, line string) {
	l := lexer.New(line)
	l.Config = demoConfig()
	for {
		tok := l.NextToken()
		if tok.Type == lexer.TokenEnd {
			break
		}
		printToken(w, tok)
	}
}

func printBanner(w io.Writer) {
	sep := strings.Repeat("-", 48)
	blueColor.Fprintf(w, "%s\n", sep)
	greenColor.Fprintf(w, "lexeldemo — interactive lexel tokenizer\n")
	blueColor.Fprintf(w, "%s\n", sep)
	cyanColor.Fprintf(w, "Type a line to see its tokens.\n")
	cyanColor.Fprintf(w, "Type '.exit' to quit.\n")
	blueColor.Fprintf(w, "%s\n", sep)
}

func main() {
	printBanner(os.Stdout)

	rl, err := readline.New("lexel> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(os.Stdout, "Good bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(os.Stdout, "Good bye!")
			return
		}
		rl.SaveHistory(line)
		tokenizeLine(os.Stdout, line)
	}
}
