// Package codegen turns a Haumea program into C source text.
//
// Every node is taken out of the program's arena exactly once while it is
// emitted. A node that is shared, or that was already emitted, stops the
// whole run: Generate then returns an error and no text at all.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/haumea/ast"
	"github.com/pontaoski/haumea/errors"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/haumea", "codegen")

const indentUnit = "    "

type ctx struct {
	arena    *ast.Arena
	out      strings.Builder
	function string
}

func (c *ctx) statement(r ast.StmtRef) ast.Statement {
	s, err := c.arena.TakeStatement(r)
	if err != nil {
		panic(err)
	}
	return s
}

func (c *ctx) expression(r ast.ExprRef) ast.Expression {
	e, err := c.arena.TakeExpression(r)
	if err != nil {
		panic(err)
	}
	return e
}

func indentation(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

func codegenExpression(c *ctx, r ast.ExprRef) string {
	return emitExpression(c, c.expression(r))
}

func emitExpression(c *ctx, e ast.Expression) string {
	switch expr := e.(type) {
	case ast.Integer:
		return strconv.FormatInt(int64(expr), 10) + "l"
	case ast.Ident:
		return string(expr)
	case ast.BinaryOp:
		left := codegenExpression(c, expr.Left)
		right := codegenExpression(c, expr.Right)

		return fmt.Sprintf("(%s %s %s)", left, cName(expr.Operator), right)
	case ast.UnaryOp:
		op := cName(expr.Operator)
		operand := codegenExpression(c, expr.Operand)

		// keep "- -5l" from turning into the decrement token
		if strings.HasSuffix(op, "-") && strings.HasPrefix(operand, "-") {
			op += " "
		}

		return "(" + op + operand + ")"
	case ast.CallExpr:
		return codegenCall(c, expr.Function, expr.Arguments)
	default:
		panic(fmt.Sprintf("unhandled expression %T", e))
	}
}

func codegenCall(c *ctx, function string, arguments []ast.ExprRef) string {
	args := make([]string, len(arguments))
	for i, arg := range arguments {
		args[i] = codegenExpression(c, arg)
	}

	return function + "(" + strings.Join(args, ", ") + ")"
}

// codegenCondition renders an if condition with exactly one outer pair of
// parentheses.
func codegenCondition(c *ctx, r ast.ExprRef) string {
	e := c.expression(r)
	text := emitExpression(c, e)

	switch e.(type) {
	case ast.BinaryOp, ast.UnaryOp:
		return text
	}
	return "(" + text + ")"
}

func codegenStatement(c *ctx, r ast.StmtRef, depth int) {
	emitStatement(c, c.statement(r), depth)
}

func emitStatement(c *ctx, s ast.Statement, depth int) {
	indent := indentation(depth)

	switch stmt := s.(type) {
	case ast.Return:
		fmt.Fprintf(&c.out, "%sreturn %s;\n", indent, codegenExpression(c, stmt.Value))
	case ast.Do:
		c.out.WriteString(indent + "{\n")
		for _, sub := range stmt.Body {
			codegenStatement(c, sub, depth+1)
		}
		c.out.WriteString(indent + "}\n")
	case ast.CallStmt:
		fmt.Fprintf(&c.out, "%s%s;\n", indent, codegenCall(c, stmt.Function, stmt.Arguments))
	case ast.Var:
		fmt.Fprintf(&c.out, "%s%s %s;\n", indent, NumericType, stmt.Name)
	case ast.Set:
		fmt.Fprintf(&c.out, "%s%s = %s;\n", indent, stmt.Name, codegenExpression(c, stmt.Value))
	case ast.Change:
		fmt.Fprintf(&c.out, "%s%s += %s;\n", indent, stmt.Name, codegenExpression(c, stmt.Value))
	case ast.If:
		fmt.Fprintf(&c.out, "%sif %s\n", indent, codegenCondition(c, stmt.Cond))

		then := c.statement(stmt.Then)
		_, nested := then.(ast.If)
		// C would bind our else to the inner if
		emitBranch(c, then, depth+1, nested && stmt.Else.Valid())

		if stmt.Else.Valid() {
			c.out.WriteString(indent + "else\n")
			emitBranch(c, c.statement(stmt.Else), depth+1, false)
		}
	default:
		panic(fmt.Sprintf("unhandled statement %T", s))
	}
}

// emitBranch emits the body of an if or else clause. Declarations are not
// statements in C, so a bare Var gets a block of its own.
func emitBranch(c *ctx, s ast.Statement, depth int, braced bool) {
	if _, decl := s.(ast.Var); !braced && !decl {
		emitStatement(c, s, depth)
		return
	}

	indent := indentation(depth)
	c.out.WriteString(indent + "{\n")
	emitStatement(c, s, depth+1)
	c.out.WriteString(indent + "}\n")
}

func codegenFunction(c *ctx, fn ast.Function) {
	c.function = fn.Name
	plog.Debugf("emitting %s", fn)

	params := make([]string, len(fn.Signature))
	for i, param := range fn.Signature {
		params[i] = NumericType + " " + param
	}
	fmt.Fprintf(&c.out, "\n%s %s(%s)", returnType(fn.Name), fn.Name, strings.Join(params, ", "))

	c.out.WriteString("{\n")
	switch body := c.statement(fn.Code).(type) {
	case ast.Do:
		for _, sub := range body.Body {
			codegenStatement(c, sub, 1)
		}
	default:
		emitStatement(c, body, 1)
	}
	c.out.WriteString("}\n")
}

// Generate renders prog as a complete C translation unit: the prolog, one
// definition per function in input order, and the epilog.
func Generate(prog ast.Program) (out string, err error) {
	c := &ctx{arena: prog.Arena}

	defer func() {
		if v := recover(); v != nil {
			violation, ok := v.(errors.OwnershipViolation)
			if !ok {
				panic(v)
			}

			plog.Errorf("%s: %s", c.function, violation)
			out = ""
			err = tracerr.Wrap(errors.FunctionFailed{Function: c.function, Err: violation})
		}
	}()

	c.out.WriteString(Prolog)
	for _, fn := range prog.Functions {
		codegenFunction(c, fn)
	}
	c.out.WriteString(Epilog)

	return c.out.String(), nil
}
