package lexer

import (
	"strings"
	"testing"

	"github.com/pontaoski/haumea/errors"
	"github.com/pontaoski/haumea/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []testToken) (ret []types.TokenKind) {
	for _, tok := range tokens {
		ret = append(ret, tok.t.Kind)
	}
	return
}

func TestLexer(t *testing.T) {
	l := NewLexer(strings.NewReader("to main do\n  set x to 5 # five\nend"), "stdin")
	tokens := l.lexToEOF()

	assert.Equal(t, []types.TokenKind{
		types.TO, types.IDENT, types.DO,
		types.SET, types.IDENT, types.TO, types.INT,
		types.END,
	}, kinds(tokens))
	assert.Equal(t, "main", tokens[1].s)
	assert.Equal(t, "5", tokens[6].s)
	assert.Equal(t, types.Position{Line: 2, Column: 3, Filename: "stdin"}, tokens[3].t.Location.From)
	assert.Equal(t, types.Position{Line: 3, Column: 1, Filename: "stdin"}, tokens[7].t.Location.From)
}

func TestLexerOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind types.TokenKind
	}{
		{"+", types.PLUS},
		{"-", types.MINUS},
		{"*", types.STAR},
		{"/", types.SLASH},
		{"=", types.EQUALS},
		{"!=", types.NOTEQUALS},
		{">", types.GT},
		{"<", types.LT},
		{">=", types.GTE},
		{"<=", types.LTE},
		{"&", types.AMPERSAND},
		{"|", types.PIPE},
		{"~", types.TILDE},
		{"and", types.AND},
		{"or", types.OR},
		{"not", types.NOT},
		{"(", types.LPAREN},
		{")", types.RPAREN},
		{",", types.COMMA},
	}

	for _, c := range cases {
		tokens := NewLexer(strings.NewReader(c.src), "stdin").lexToEOF()
		require.Len(t, tokens, 1, c.src)
		assert.Equal(t, c.kind, tokens[0].t.Kind, c.src)
		assert.Equal(t, c.src, tokens[0].s)
	}
}

func TestLexerAdjacentTokens(t *testing.T) {
	tokens := NewLexer(strings.NewReader("a>=b<c!=(12)"), "stdin").lexToEOF()
	assert.Equal(t, []types.TokenKind{
		types.IDENT, types.GTE, types.IDENT, types.LT, types.IDENT,
		types.NOTEQUALS, types.LPAREN, types.INT, types.RPAREN,
	}, kinds(tokens))
	assert.Equal(t, "12", tokens[7].s)
}

func TestLexerPeek(t *testing.T) {
	l := NewLexer(strings.NewReader("return x"), "stdin")

	assert.True(t, l.PeekIs(types.RETURN))
	tok, lit := l.Lex()
	assert.Equal(t, types.RETURN, tok.Kind)
	assert.Equal(t, "return", lit)

	_, lit = l.LexExpecting(types.IDENT)
	assert.Equal(t, "x", lit)
	assert.True(t, l.PeekIs(types.EOF))
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	l := NewLexer(strings.NewReader("set x to 1 $"), "prog.hau")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(errors.UnexpectedCharacter)
		require.True(t, ok, "%#v", r)
		assert.Equal(t, '$', err.Char)
		assert.Equal(t, "unexpected character '$'. prog.hau:1:12-1:12", err.Error())
	}()
	l.lexToEOF()
}

func TestLexerOnlyASCIIDigits(t *testing.T) {
	l := NewLexer(strings.NewReader("set x to ٣"), "prog.hau")

	assert.PanicsWithValue(t, errors.UnexpectedCharacter{
		Char:     '٣',
		Location: types.SingleCharSpan(types.Position{Line: 1, Column: 10, Filename: "prog.hau"}),
	}, func() { l.lexToEOF() })
}

func TestLexExpectingMismatch(t *testing.T) {
	l := NewLexer(strings.NewReader("do"), "stdin")

	defer func() {
		assert.Equal(t, errors.ExpectedOneOfKindGotKind{
			Expected: []types.TokenKind{types.IDENT},
			Got:      types.DO,
			Location: types.Span{
				From: types.Position{Line: 1, Column: 1, Filename: "stdin"},
				To:   types.Position{Line: 1, Column: 2, Filename: "stdin"},
			},
		}, recover())
	}()
	l.LexExpecting(types.IDENT)
}
