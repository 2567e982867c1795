package pebbles

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer literal in decimal, hex, or octal notation.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the runes which begin an operator token. The angle
// brackets only form the two-rune shift operators; a lone < or > is an
// invalid token.
const Operators = "+-*/%&|^~<>"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("pebbles: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("pebbles: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered
// before any non-whitespace characters, the result is an EOF token with a nil
// error. Subsequent times, if the EOF token is not pushed, the result is an
// empty token with io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case r == '<', r == '>':
			// The only tokens beginning with an angle bracket are the
			// doubled shift operators.
			l.buf.WriteRune(r)
			d, err := l.readRune()
			if err != nil || d != r {
				if err == nil {
					l.unreadRune()
				}
				return tok, l.error("operator")
			}
			l.buf.WriteRune(d)
			tok.text = l.buf.String()
			tok.kind = tokenOp
			return tok, nil
		default:
			if strings.ContainsRune(Operators, r) {
				tok.text = string(r)
				tok.kind = tokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans an integer literal. The first rune has already been checked
// to be a decimal digit. A 0x or 0X prefix begins a hex literal and a 0o or
// 0O prefix begins an octal literal; any other form is decimal. A digit
// outside the literal's radix, or a letter running up against the literal,
// is an invalid token.
func (l *lexer) scanNum() error {
	digits := "0123456789"
	r, _ := l.readRune()
	l.buf.WriteRune(r)
	if r == '0' {
		switch p, err := l.readRune(); {
		case err != nil:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case p == 'x', p == 'X':
			l.buf.WriteRune(p)
			digits = "0123456789abcdefABCDEF"
		case p == 'o', p == 'O':
			l.buf.WriteRune(p)
			digits = "01234567"
		default:
			l.unreadRune()
		}
	}
	n := 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if !strings.ContainsRune(digits, r) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				// 0xg, 0o9, 123a, and the like.
				l.buf.WriteRune(r)
				return l.error("number")
			}
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		n++
	}
	if len(digits) != 10 && n == 0 {
		// A bare radix prefix with no digits.
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "operator", or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
