// Package parser implements the minilisp reader.  The parser produces one
// lisp value per expression read and reports the syntax errors required by
// the language: stray dots and parentheses at the top level, unclosed
// lists, and malformed dotted tails.
package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/luthersystems/minilisp/lisp"
	"github.com/luthersystems/minilisp/parser/lexer"
	"github.com/luthersystems/minilisp/parser/token"
)

type reader struct{}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader, reg *lisp.Registry) ([]*lisp.LVal, error) {
	p := New(reg, token.NewScanner(name, r))
	return p.ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	reg  *lisp.Registry
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner
// and interns symbols into reg.
func New(reg *lisp.Registry, scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
		reg: reg,
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses expressions until the end of input and returns them.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		expr, err := p.ParseExpression()
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}

// ParseExpression parses and returns one top-level expression.  At the end
// of input ParseExpression returns io.EOF.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	v, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	// The parser sentinels terminate list parsing and are invalid at the
	// top level.
	if v == lisp.Dot {
		return nil, p.errorf("parse-error", "stray dot")
	}
	if v == lisp.CloseParen {
		return nil, p.errorf("parse-error", "stray close parenthesis")
	}
	return v, nil
}

// parseForm parses one form, which may be the Dot or CloseParen sentinel.
func (p *Parser) parseForm() (*lisp.LVal, error) {
	for p.expect(token.COMMENT) {
	}
	switch p.PeekType() {
	case token.EOF:
		return nil, io.EOF
	case token.INT:
		p.ReadToken()
		return p.parseInt(p.Token().Text)
	case token.SYMBOL:
		p.ReadToken()
		return p.reg.Intern(p.Token().Text), nil
	case token.QUOTE:
		p.ReadToken()
		return p.parseQuote()
	case token.DOT:
		p.ReadToken()
		return lisp.Dot, nil
	case token.PAREN_R:
		p.ReadToken()
		return lisp.CloseParen, nil
	case token.PAREN_L:
		p.ReadToken()
		return p.parseCons()
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf("scan-error", "%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf("parse-error", "unexpected %s", p.Token().Type)
	}
}

func (p *Parser) parseInt(text string) (*lisp.LVal, error) {
	x, err := strconv.Atoi(text)
	if err != nil {
		return nil, p.errorf("parse-error", "integer literal overflows int: %v", text)
	}
	return lisp.Int(x), nil
}

// parseQuote parses the form following a quote operator and wraps it as
// (quote <form>).
func (p *Parser) parseQuote() (*lisp.LVal, error) {
	form, err := p.parseForm()
	if err == io.EOF {
		return nil, p.errorf("unmatched-syntax", "expression expected following quote")
	}
	if err != nil {
		return nil, err
	}
	if form == lisp.Dot || form == lisp.CloseParen {
		return nil, p.errorf("parse-error", "unexpected %s following quote", form)
	}
	return lisp.List(p.reg.Intern("quote"), form), nil
}

// parseCons parses the remainder of a list after its opening parenthesis,
// handling dotted tails.
func (p *Parser) parseCons() (*lisp.LVal, error) {
	var head, tail *lisp.LVal
	for {
		obj, err := p.parseForm()
		if err == io.EOF {
			return nil, p.errorf("unmatched-syntax", "unclosed parenthesis")
		}
		if err != nil {
			return nil, err
		}
		if obj == lisp.CloseParen {
			if head == nil {
				return lisp.Nil, nil
			}
			return head, nil
		}
		if obj == lisp.Dot {
			if head == nil {
				return nil, p.errorf("parse-error", "stray dot")
			}
			return head, p.parseConsTail(tail)
		}
		cell := lisp.Cons(obj, lisp.Nil)
		if head == nil {
			head, tail = cell, cell
		} else {
			tail.Rest = cell
			tail = cell
		}
	}
}

// parseConsTail parses the single form following a dot and the closing
// parenthesis that must come after it, attaching the form as the tail of
// the final cell.
func (p *Parser) parseConsTail(cell *lisp.LVal) error {
	obj, err := p.parseForm()
	if err == io.EOF {
		return p.errorf("unmatched-syntax", "unclosed parenthesis")
	}
	if err != nil {
		return err
	}
	if obj == lisp.Dot || obj == lisp.CloseParen {
		return p.errorf("parse-error", "expression expected following dot")
	}
	cell.Rest = obj
	fin, err := p.parseForm()
	if err == io.EOF {
		return p.errorf("unmatched-syntax", "unclosed parenthesis")
	}
	if err != nil {
		return err
	}
	if fin != lisp.CloseParen {
		return p.errorf("parse-error", "closed parenthesis expected after dot")
	}
	return nil
}

// ReadToken advances the parser one token.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the most recently consumed token.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next unconsumed token.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the next unconsumed token.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ token.Type) bool {
	if p.peek.Type == typ {
		p.ReadToken()
		return true
	}
	return false
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) error {
	loc := p.peek.Source
	if p.curr != nil {
		loc = p.curr.Source
	}
	return lisp.ErrorConditionf(condition, "%s: %s", loc, fmt.Sprintf(format, v...))
}
