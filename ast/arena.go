// Package ast holds the Haumea syntax tree.
//
// Nodes live in an Arena and refer to their children by index. The arena keeps
// an ownership ledger next to the nodes: every builder call records one owner
// for each child it is handed, and a node may be taken out of the arena only
// while it has exactly one owner and has not been taken before. A tree built
// by attaching the same reference twice (a DAG) is therefore caught the moment
// the shared node is taken.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.types ../ast/nodes.go ast"

import (
	"github.com/pontaoski/haumea/errors"
)

// NoStmt stands in for an absent statement, such as a missing else clause.
const NoStmt StmtRef = -1

func (r StmtRef) Valid() bool {
	return r >= 0
}

type ledger struct {
	node     string
	owners   []int
	consumed []bool
}

func (l *ledger) add() int {
	l.owners = append(l.owners, 0)
	l.consumed = append(l.consumed, false)
	return len(l.owners) - 1
}

// adopt ignores indices it does not know about; take reports them.
func (l *ledger) adopt(idx int) {
	if idx >= 0 && idx < len(l.owners) {
		l.owners[idx]++
	}
}

func (l *ledger) take(idx int) error {
	if idx < 0 || idx >= len(l.owners) {
		return errors.OwnershipViolation{Node: l.node, Index: idx}
	}
	if l.consumed[idx] {
		return errors.OwnershipViolation{Node: l.node, Index: idx, Owners: l.owners[idx], Consumed: true}
	}
	if l.owners[idx] != 1 {
		return errors.OwnershipViolation{Node: l.node, Index: idx, Owners: l.owners[idx]}
	}

	l.consumed[idx] = true
	return nil
}

type Arena struct {
	stmts []Statement
	exprs []Expression

	stmtLedger ledger
	exprLedger ledger
}

func NewArena() *Arena {
	return &Arena{
		stmtLedger: ledger{node: "statement"},
		exprLedger: ledger{node: "expression"},
	}
}

func (a *Arena) newStatement(s Statement) StmtRef {
	a.stmts = append(a.stmts, s)
	return StmtRef(a.stmtLedger.add())
}

func (a *Arena) newExpression(e Expression) ExprRef {
	a.exprs = append(a.exprs, e)
	return ExprRef(a.exprLedger.add())
}

func (a *Arena) ownStatements(refs ...StmtRef) {
	for _, r := range refs {
		a.stmtLedger.adopt(int(r))
	}
}

func (a *Arena) ownExpressions(refs ...ExprRef) {
	for _, r := range refs {
		a.exprLedger.adopt(int(r))
	}
}

func (a *Arena) Return(value ExprRef) StmtRef {
	a.ownExpressions(value)
	return a.newStatement(Return{Value: value})
}

func (a *Arena) Do(body ...StmtRef) StmtRef {
	a.ownStatements(body...)
	return a.newStatement(Do{Body: append([]StmtRef(nil), body...)})
}

func (a *Arena) CallStmt(function string, arguments ...ExprRef) StmtRef {
	a.ownExpressions(arguments...)
	return a.newStatement(CallStmt{Function: function, Arguments: append([]ExprRef(nil), arguments...)})
}

func (a *Arena) Var(name string) StmtRef {
	return a.newStatement(Var{Name: name})
}

func (a *Arena) Set(name string, value ExprRef) StmtRef {
	a.ownExpressions(value)
	return a.newStatement(Set{Name: name, Value: value})
}

func (a *Arena) Change(name string, value ExprRef) StmtRef {
	a.ownExpressions(value)
	return a.newStatement(Change{Name: name, Value: value})
}

// If builds a conditional. Pass NoStmt as els when there is no else clause.
func (a *Arena) If(cond ExprRef, then StmtRef, els StmtRef) StmtRef {
	a.ownExpressions(cond)
	a.ownStatements(then)
	if els.Valid() {
		a.ownStatements(els)
	}
	return a.newStatement(If{Cond: cond, Then: then, Else: els})
}

func (a *Arena) Integer(value int64) ExprRef {
	return a.newExpression(Integer(value))
}

func (a *Arena) Ident(name string) ExprRef {
	return a.newExpression(Ident(name))
}

func (a *Arena) BinaryOp(op Operator, left, right ExprRef) ExprRef {
	a.ownExpressions(left, right)
	return a.newExpression(BinaryOp{Operator: op, Left: left, Right: right})
}

func (a *Arena) UnaryOp(op Operator, operand ExprRef) ExprRef {
	a.ownExpressions(operand)
	return a.newExpression(UnaryOp{Operator: op, Operand: operand})
}

func (a *Arena) CallExpr(function string, arguments ...ExprRef) ExprRef {
	a.ownExpressions(arguments...)
	return a.newExpression(CallExpr{Function: function, Arguments: append([]ExprRef(nil), arguments...)})
}

// Function builds a function definition owning code. A nil signature means
// the function was declared without one.
func (a *Arena) Function(name string, signature []string, code StmtRef) Function {
	a.ownStatements(code)
	return Function{Name: name, Signature: signature, Code: code}
}

// TakeStatement hands out the statement behind r and marks it consumed.
func (a *Arena) TakeStatement(r StmtRef) (Statement, error) {
	if err := a.stmtLedger.take(int(r)); err != nil {
		return nil, err
	}
	return a.stmts[r], nil
}

// TakeExpression hands out the expression behind r and marks it consumed.
func (a *Arena) TakeExpression(r ExprRef) (Expression, error) {
	if err := a.exprLedger.take(int(r)); err != nil {
		return nil, err
	}
	return a.exprs[r], nil
}

// Statement looks at a node without consuming it. It returns nil for unknown
// references.
func (a *Arena) Statement(r StmtRef) Statement {
	if r < 0 || int(r) >= len(a.stmts) {
		return nil
	}
	return a.stmts[r]
}

func (a *Arena) Expression(r ExprRef) Expression {
	if r < 0 || int(r) >= len(a.exprs) {
		return nil
	}
	return a.exprs[r]
}

func (a *Arena) Statements() []Statement {
	return append([]Statement(nil), a.stmts...)
}

func (a *Arena) Expressions() []Expression {
	return append([]Expression(nil), a.exprs...)
}
