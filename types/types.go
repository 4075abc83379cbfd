package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota

	LPAREN
	RPAREN
	COMMA

	PLUS
	MINUS
	STAR
	SLASH
	EQUALS
	NOTEQUALS
	GT
	LT
	GTE
	LTE
	AMPERSAND
	PIPE
	TILDE

	INT
	IDENT

	TO
	WITH
	DO
	END
	RETURN
	VARIABLE
	SET
	CHANGE
	BY
	IF
	THEN
	ELSE
	AND
	OR
	NOT
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:       "EOF",
		LPAREN:    "LPAREN",
		RPAREN:    "RPAREN",
		COMMA:     "COMMA",
		PLUS:      "PLUS",
		MINUS:     "MINUS",
		STAR:      "STAR",
		SLASH:     "SLASH",
		EQUALS:    "EQUALS",
		NOTEQUALS: "NOTEQUALS",
		GT:        "GT",
		LT:        "LT",
		GTE:       "GTE",
		LTE:       "LTE",
		AMPERSAND: "AMPERSAND",
		PIPE:      "PIPE",
		TILDE:     "TILDE",
		INT:       "INT",
		IDENT:     "IDENT",
		TO:        "TO",
		WITH:      "WITH",
		DO:        "DO",
		END:       "END",
		RETURN:    "RETURN",
		VARIABLE:  "VARIABLE",
		SET:       "SET",
		CHANGE:    "CHANGE",
		BY:        "BY",
		IF:        "IF",
		THEN:      "THEN",
		ELSE:      "ELSE",
		AND:       "AND",
		OR:        "OR",
		NOT:       "NOT",
	}
	return data[t]
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Kind     TokenKind
	Location Span
}
