package lexer

import (
	"bufio"
	"io"
	"unicode"

	"github.com/pontaoski/haumea/errors"
	"github.com/pontaoski/haumea/types"
)

type Lexer struct {
	pos          types.Position
	reader       *bufio.Reader
	peeked       *types.Token
	peekedString string
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos.Column--
}

func (l *Lexer) kinded(t types.TokenKind) types.Token {
	return types.Token{
		Location: types.SingleCharSpan(l.pos),
		Kind:     t,
	}
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (l *Lexer) lexIdent() (types.Position, types.Position, string) {
	var lit string
	var from types.Position
	var to types.Position

	r, _, err := l.reader.ReadRune()
	l.pos.Column++
	from = l.pos
	to = l.pos

	for {
		if err != nil {
			if err == io.EOF {
				return from, to, lit
			}
			panic(err)
		}

		if otherChar(r) {
			lit += string(r)
			to = l.pos
		} else {
			l.backup()
			return from, to, lit
		}

		r, _, err = l.reader.ReadRune()
		l.pos.Column++
	}
}

func (l *Lexer) lexInt(first rune) (types.Position, types.Position, string) {
	from := l.pos
	runes := string(first)

	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return from, l.pos, runes
			}
			panic(err)
		}
		l.pos.Column++

		if !isDigit(r) {
			l.backup()
			return from, l.pos, runes
		}

		runes += string(r)
	}
}

func (l *Lexer) skipComment() {
	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return
			}
			panic(err)
		}
		if r == '\n' {
			l.newline()
			return
		}
		l.pos.Column++
	}
}

// followedBy consumes the next rune if it is next.
func (l *Lexer) followedBy(next rune) bool {
	byt, err := l.reader.Peek(1)
	if err != nil && err != io.EOF {
		panic(err)
	}
	if len(byt) == 0 || rune(byt[0]) != next {
		return false
	}

	if _, _, err := l.reader.ReadRune(); err != nil {
		panic(err)
	}
	l.pos.Column++
	return true
}

func (l *Lexer) Peek() (types.Token, string) {
	if l.peeked != nil {
		return *l.peeked, l.peekedString
	}

	tok, str := l.Lex()
	l.peeked = &tok
	l.peekedString = str

	return tok, str
}

func (l *Lexer) PeekIs(k ...types.TokenKind) bool {
	token, _ := l.Peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

func (l *Lexer) LexExpecting(k ...types.TokenKind) (types.Token, string) {
	token, lit := l.Lex()
	for _, kind := range k {
		if token.Kind == kind {
			return token, lit
		}
	}

	panic(errors.ExpectedOneOfKindGotKind{
		Expected: k,
		Got:      token.Kind,
		Location: token.Location,
	})
}

var keywords = map[string]types.TokenKind{
	"to":       types.TO,
	"with":     types.WITH,
	"do":       types.DO,
	"end":      types.END,
	"return":   types.RETURN,
	"variable": types.VARIABLE,
	"set":      types.SET,
	"change":   types.CHANGE,
	"by":       types.BY,
	"if":       types.IF,
	"then":     types.THEN,
	"else":     types.ELSE,
	"and":      types.AND,
	"or":       types.OR,
	"not":      types.NOT,
}

var punctuation = map[rune]types.TokenKind{
	'(': types.LPAREN,
	')': types.RPAREN,
	',': types.COMMA,
	'+': types.PLUS,
	'-': types.MINUS,
	'*': types.STAR,
	'/': types.SLASH,
	'=': types.EQUALS,
	'&': types.AMPERSAND,
	'|': types.PIPE,
	'~': types.TILDE,
}

func (l *Lexer) Lex() (types.Token, string) {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked, l.peekedString
	}

	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			if err == io.EOF {
				return l.kinded(types.EOF), ""
			}
			panic(err)
		}

		l.pos.Column++

		switch r {
		case '\n':
			l.newline()
			continue
		case '#':
			l.skipComment()
			continue
		case '!':
			from := l.pos
			if l.followedBy('=') {
				return types.Token{Kind: types.NOTEQUALS, Location: types.Span{From: from, To: l.pos}}, "!="
			}
			panic(errors.UnexpectedCharacter{Char: r, Location: types.SingleCharSpan(from)})
		case '>', '<':
			from := l.pos
			if l.followedBy('=') {
				kind := types.GTE
				if r == '<' {
					kind = types.LTE
				}
				return types.Token{Kind: kind, Location: types.Span{From: from, To: l.pos}}, string(r) + "="
			}
			if r == '<' {
				return l.kinded(types.LT), "<"
			}
			return l.kinded(types.GT), ">"
		}

		if kind, ok := punctuation[r]; ok {
			return l.kinded(kind), string(r)
		}

		switch {
		case isDigit(r):
			from, to, lit := l.lexInt(r)
			return types.Token{Kind: types.INT, Location: types.Span{From: from, To: to}}, lit
		case unicode.IsSpace(r):
			continue
		case firstChar(r):
			l.backup()
			from, to, lit := l.lexIdent()

			if kind, ok := keywords[lit]; ok {
				return types.Token{Kind: kind, Location: types.Span{From: from, To: to}}, lit
			}

			return types.Token{Kind: types.IDENT, Location: types.Span{From: from, To: to}}, lit
		}

		panic(errors.UnexpectedCharacter{Char: r, Location: types.SingleCharSpan(l.pos)})
	}
}

type testToken struct {
	t types.Token
	s string
}

func (l *Lexer) lexToEOF() (ret []testToken) {
	t, s := l.Lex()
	for t.Kind != types.EOF {
		ret = append(ret, testToken{
			t: t,
			s: s,
		})
		t, s = l.Lex()
	}
	return
}
