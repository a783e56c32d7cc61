package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/luthersystems/minilisp/parser/token"
)

// symbolStartRunes are the punctuation runes that may begin a symbol in
// addition to letters.
const symbolStartRunes = "+=!@#$%^&*"

// MaxSymbolLen is the maximum number of runes in a symbol token.
const MaxSymbolLen = 200

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{
		scanner: s,
	}
}

func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	if !lex.readChar() {
		return lex.scanner.EmitToken(token.EOF)
	}
	switch {
	case lex.ch == '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case lex.ch == ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case lex.ch == '.':
		return lex.scanner.EmitToken(token.DOT)
	case lex.ch == '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case lex.ch == ';':
		return lex.readComment()
	case lex.ch == '-':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		return lex.errorf("unknown character: %q", lex.ch)
	case isDigit(lex.ch):
		return lex.readNumber()
	case isSymbolStart(lex.ch):
		return lex.readSymbol()
	default:
		return lex.errorf("unknown character: %q", lex.ch)
	}
}

func (lex *Lexer) readComment() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || c == '\n' {
			break
		}
		if !lex.readChar() {
			break
		}
	}
	return lex.scanner.EmitToken(token.COMMENT)
}

func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		if !lex.readChar() {
			break
		}
	}
	return lex.scanner.EmitToken(token.INT)
}

func (lex *Lexer) readSymbol() *token.Token {
	n := 1
	for isSymbol(lex.peekRune()) {
		if n >= MaxSymbolLen {
			return lex.errorf("symbol name too long")
		}
		if !lex.readChar() {
			break
		}
		n++
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	tok := &token.Token{
		Type:   token.ERROR,
		Text:   fmt.Sprintf(format, v...),
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) skipWhitespace() {
	for unicode.IsSpace(lex.peekRune()) {
		if !lex.readChar() {
			break
		}
	}
	lex.scanner.Ignore()
}

func (lex *Lexer) peekRune() rune {
	c, _ := lex.scanner.Peek()
	return c
}

func (lex *Lexer) readChar() bool {
	c, err := lex.scanner.ScanRune()
	if err != nil {
		return false
	}
	lex.ch = c
	return true
}

func isSymbolStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(symbolStartRunes, c)
}

func isSymbol(c rune) bool {
	return unicode.IsLetter(c) || isDigit(c) || c == '-'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
