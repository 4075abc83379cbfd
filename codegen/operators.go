package codegen

import (
	"fmt"

	"github.com/pontaoski/haumea/ast"
)

var cNames = map[ast.Operator]string{
	ast.Add:        "+",
	ast.Sub:        "-",
	ast.Mul:        "*",
	ast.Div:        "/",
	ast.Negate:     "-",
	ast.Equals:     "==",
	ast.NotEquals:  "!=",
	ast.Gt:         ">",
	ast.Lt:         "<",
	ast.Gte:        ">=",
	ast.Lte:        "<=",
	ast.LogicalAnd: "&&",
	ast.LogicalOr:  "||",
	ast.LogicalNot: "!",
	ast.BinaryAnd:  "&",
	ast.BinaryOr:   "|",
	ast.BinaryNot:  "~",
}

// cName returns the C token for op.
func cName(op ast.Operator) string {
	name, ok := cNames[op]
	if !ok {
		panic(fmt.Sprintf("no C token for %s", op))
	}
	return name
}
