package parser

import (
	"strconv"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/haumea/ast"
	"github.com/pontaoski/haumea/errors"
	"github.com/pontaoski/haumea/lexer"
	"github.com/pontaoski/haumea/types"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/haumea", "parser")

type Parser struct {
	l         *lexer.Lexer
	arena     *ast.Arena
	functions []ast.Function
}

// NewParser reads from l and builds nodes into a. Several parsers may share one
// arena so that the functions of many files end up in a single program.
func NewParser(l *lexer.Lexer, a *ast.Arena) Parser {
	return Parser{l: l, arena: a}
}

func (p *Parser) Functions() []ast.Function {
	return p.functions
}

func (p *Parser) Program() ast.Program {
	return ast.Program{Arena: p.arena, Functions: p.functions}
}

func (p *Parser) Parse() (err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()
	for {
		tok, _ := p.l.LexExpecting(types.TO, types.EOF)

		if tok.Kind == types.EOF {
			return
		}

		fn := p.parseFunction()
		plog.Debugf("parsed %s", fn)
		p.functions = append(p.functions, fn)
	}
}

// parseFunction should be called with the parser past the "to" keyword.
func (p *Parser) parseFunction() ast.Function {
	_, name := p.l.LexExpecting(types.IDENT)

	var signature []string
	if p.l.PeekIs(types.WITH) {
		p.l.LexExpecting(types.WITH)
		p.l.LexExpecting(types.LPAREN)
		signature = []string{}
		if !p.l.PeekIs(types.RPAREN) {
			for {
				_, param := p.l.LexExpecting(types.IDENT)
				signature = append(signature, param)

				if p.l.PeekIs(types.COMMA) {
					p.l.LexExpecting(types.COMMA)
					continue
				}
				break
			}
		}
		p.l.LexExpecting(types.RPAREN)
	}

	return p.arena.Function(name, signature, p.parseStatement())
}

func (p *Parser) parseStatement() ast.StmtRef {
	tok, lit := p.l.LexExpecting(types.RETURN, types.DO, types.VARIABLE, types.SET, types.CHANGE, types.IF, types.IDENT)

	switch tok.Kind {
	case types.RETURN:
		return p.arena.Return(p.parseExpression())
	case types.DO:
		var body []ast.StmtRef
		for !p.l.PeekIs(types.END) {
			body = append(body, p.parseStatement())
		}
		p.l.LexExpecting(types.END)
		return p.arena.Do(body...)
	case types.VARIABLE:
		_, name := p.l.LexExpecting(types.IDENT)
		return p.arena.Var(name)
	case types.SET:
		_, name := p.l.LexExpecting(types.IDENT)
		p.l.LexExpecting(types.TO)
		return p.arena.Set(name, p.parseExpression())
	case types.CHANGE:
		_, name := p.l.LexExpecting(types.IDENT)
		p.l.LexExpecting(types.BY)
		return p.arena.Change(name, p.parseExpression())
	case types.IF:
		cond := p.parseExpression()
		p.l.LexExpecting(types.THEN)
		then := p.parseStatement()
		els := ast.NoStmt
		if p.l.PeekIs(types.ELSE) {
			p.l.LexExpecting(types.ELSE)
			els = p.parseStatement()
		}
		return p.arena.If(cond, then, els)
	default:
		return p.arena.CallStmt(lit, p.parseArguments()...)
	}
}

// parseArguments reads a parenthesized, comma separated argument list.
func (p *Parser) parseArguments() []ast.ExprRef {
	var args []ast.ExprRef

	p.l.LexExpecting(types.LPAREN)
	if !p.l.PeekIs(types.RPAREN) {
		for {
			args = append(args, p.parseExpression())

			if p.l.PeekIs(types.COMMA) {
				p.l.LexExpecting(types.COMMA)
				continue
			}
			break
		}
	}
	p.l.LexExpecting(types.RPAREN)

	return args
}

// binaryLevels lists the binary operators from the loosest binding level to
// the tightest.
var binaryLevels = []map[types.TokenKind]ast.Operator{
	{types.OR: ast.LogicalOr},
	{types.AND: ast.LogicalAnd},
	{
		types.EQUALS:    ast.Equals,
		types.NOTEQUALS: ast.NotEquals,
		types.GT:        ast.Gt,
		types.LT:        ast.Lt,
		types.GTE:       ast.Gte,
		types.LTE:       ast.Lte,
	},
	{types.PIPE: ast.BinaryOr},
	{types.AMPERSAND: ast.BinaryAnd},
	{types.PLUS: ast.Add, types.MINUS: ast.Sub},
	{types.STAR: ast.Mul, types.SLASH: ast.Div},
}

var unaryOperators = map[types.TokenKind]ast.Operator{
	types.MINUS: ast.Negate,
	types.NOT:   ast.LogicalNot,
	types.TILDE: ast.BinaryNot,
}

func (p *Parser) parseExpression() ast.ExprRef {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(level int) ast.ExprRef {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	left := p.parseBinary(level + 1)
	for {
		tok, _ := p.l.Peek()
		op, ok := binaryLevels[level][tok.Kind]
		if !ok {
			return left
		}
		p.l.Lex()

		left = p.arena.BinaryOp(op, left, p.parseBinary(level+1))
	}
}

func (p *Parser) parseUnary() ast.ExprRef {
	tok, _ := p.l.Peek()
	if op, ok := unaryOperators[tok.Kind]; ok {
		p.l.Lex()
		return p.arena.UnaryOp(op, p.parseUnary())
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.ExprRef {
	tok, lit := p.l.LexExpecting(types.INT, types.IDENT, types.LPAREN)

	switch tok.Kind {
	case types.INT:
		parsed, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			panic(errors.InvalidInteger{Literal: lit, Location: tok.Location})
		}
		return p.arena.Integer(parsed)
	case types.IDENT:
		if p.l.PeekIs(types.LPAREN) {
			return p.arena.CallExpr(lit, p.parseArguments()...)
		}
		return p.arena.Ident(lit)
	default:
		expr := p.parseExpression()
		p.l.LexExpecting(types.RPAREN)
		return expr
	}
}
