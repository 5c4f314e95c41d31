package cpp

import (
	"io"
	"unicode/utf8"
)

// Scanner turns a CharStream into tokens with a single token of lookahead.
// The current token is scanned lazily by Peek and discarded by Advance.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	src CharStream
	cur *Token
	err error
}

// NewScanner returns a scanner over src.
// fname is used for error messages when showing the source location.
func NewScanner(fname, src string) *Scanner {
	return &Scanner{src: NewStringStream(fname, src)}
}

// NewStreamScanner returns a scanner reading from an existing CharStream.
func NewStreamScanner(src CharStream) *Scanner {
	return &Scanner{src: src}
}

// Lex reads all of r and returns a scanner over its contents.
// A read failure is reported by the first call to Peek.
func Lex(fname string, r io.Reader) *Scanner {
	b, err := io.ReadAll(r)
	s := NewScanner(fname, string(b))
	if err != nil {
		s.err = err
		s.cur = &Token{Kind: ERROR, Val: err.Error(), Pos: FilePos{File: fname, Line: 1, Col: 1}}
	}
	return s
}

// Peek returns the current token without consuming it. Once the end of input
// is reached it keeps returning the EOF token. Errors are sticky.
func (s *Scanner) Peek() (*Token, error) {
	if s.cur == nil {
		s.scan()
	}
	return s.cur, s.err
}

// Advance discards the current token. It is a no-op at EOF or after an error.
func (s *Scanner) Advance() {
	if s.cur == nil {
		s.scan()
	}
	if s.cur.Kind == EOF || s.cur.Kind == ERROR {
		return
	}
	s.cur = nil
}

// Next returns the current token and advances past it.
func (s *Scanner) Next() (*Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return tok, err
	}
	s.Advance()
	return tok, nil
}

func (s *Scanner) sendTok(kind TokenKind, val string, pos FilePos) {
	s.cur = &Token{Kind: kind, Val: val, Pos: pos}
}

func (s *Scanner) error(e error, pos FilePos) {
	s.err = ErrWithLoc(e, pos)
	s.cur = &Token{Kind: ERROR, Val: s.err.Error(), Pos: pos}
}

func (s *Scanner) scan() {
	s.skipWhiteSpaceAndComments()
	pos := s.src.Pos()
	if s.src.EOF() {
		s.sendTok(EOF, "", pos)
		return
	}
	for _, kw := range keywords {
		n := len(kw.Lexeme)
		ahead := s.src.Peek(n + 1)
		if len(ahead) < n || ahead[:n] != kw.Lexeme {
			continue
		}
		if len(ahead) > n && isValidIdentTail(rune(ahead[n])) {
			continue
		}
		s.src.Advance(n)
		s.sendTok(kw.Kind, kw.Lexeme, pos)
		return
	}
	first := rune(s.src.Peek(1)[0])
	if isValidIdentStart(first) {
		s.readIdent(pos)
		return
	}
	switch first {
	case '(', ')', '<', '>', ',', ';', '=', '{', '}':
		s.src.Advance(1)
		s.sendTok(TokenKind(first), string(first), pos)
	default:
		r, _ := utf8.DecodeRuneInString(s.src.Peek(utf8.UTFMax))
		s.error(&ScanError{Char: r}, pos)
	}
}

func (s *Scanner) readIdent(pos FilePos) {
	n := 1
	for {
		ahead := s.src.Peek(n + 1)
		if len(ahead) <= n || !isValidIdentTail(rune(ahead[n])) {
			break
		}
		n++
	}
	val := s.src.Peek(n)
	s.src.Advance(n)
	s.sendTok(IDENT, val, pos)
}

func (s *Scanner) skipWhiteSpaceAndComments() {
	for !s.src.EOF() {
		c := rune(s.src.Peek(1)[0])
		switch {
		case isWhiteSpace(c):
			s.src.Advance(1)
		case s.src.Peek(2) == "//":
			for !s.src.EOF() && s.src.Peek(1) != "\n" {
				s.src.Advance(1)
			}
		default:
			return
		}
	}
}

func isValidIdentTail(b rune) bool {
	return isValidIdentStart(b) || isNumeric(b)
}

func isValidIdentStart(b rune) bool {
	return b == '_' || isAlpha(b)
}

func isAlpha(b rune) bool {
	if b >= 'a' && b <= 'z' {
		return true
	}
	if b >= 'A' && b <= 'Z' {
		return true
	}
	return false
}

func isWhiteSpace(b rune) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t' || b == '\f' || b == '\v'
}

func isNumeric(b rune) bool {
	if b >= '0' && b <= '9' {
		return true
	}
	return false
}
