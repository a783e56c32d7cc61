package token

import (
	"bufio"
	"io"
)

// Scanner facilitates construction of tokens from a byte stream (io.Reader).
// Runes scanned with ScanRune accumulate into a pending token which is
// completed by EmitToken or discarded by Ignore.
type Scanner struct {
	file string
	r    *bufio.Reader

	text []rune // runes scanned since the last EmitToken or Ignore

	pos  int // byte offset of the next rune
	line int // line number of the next rune
	col  int // column of the next rune

	startPos  int // pos at the first rune of the pending token
	startLine int // line at startPos
	startCol  int // col at startPos
}

// NewScanner initializes and returns a new Scanner.
func NewScanner(file string, r io.Reader) *Scanner {
	return &Scanner{
		file:      file,
		r:         bufio.NewReader(r),
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
}

// ScanRune consumes one rune from the input for inclusion in the pending
// token and returns it.  At the end of input ScanRune returns io.EOF.
func (s *Scanner) ScanRune() (rune, error) {
	c, n, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	s.text = append(s.text, c)
	s.pos += n
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c, nil
}

// Peek returns the next rune to be scanned, if there is one.  Peek returns
// a false second value at the end of input.
func (s *Scanner) Peek() (rune, bool) {
	c, _, err := s.r.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = s.r.UnreadRune()
	return c, true
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to discard all text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.text = s.text[:0]
	s.startPos = s.pos
	s.startLine = s.line
	s.startCol = s.col
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.text)
}

// LocStart returns a Location referencing the beginning of the pending
// token, just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.startPos,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}
