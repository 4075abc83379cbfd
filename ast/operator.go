package ast

import "fmt"

type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Negate
	Equals
	NotEquals
	Gt
	Lt
	Gte
	Lte
	LogicalAnd
	LogicalOr
	LogicalNot
	BinaryAnd
	BinaryOr
	BinaryNot
)

// Operators lists every member of the enumeration in declaration order.
var Operators = []Operator{
	Add, Sub, Mul, Div, Negate,
	Equals, NotEquals, Gt, Lt, Gte, Lte,
	LogicalAnd, LogicalOr, LogicalNot,
	BinaryAnd, BinaryOr, BinaryNot,
}

var operatorNames = [...]string{
	Add:        "Add",
	Sub:        "Sub",
	Mul:        "Mul",
	Div:        "Div",
	Negate:     "Negate",
	Equals:     "Equals",
	NotEquals:  "NotEquals",
	Gt:         "Gt",
	Lt:         "Lt",
	Gte:        "Gte",
	Lte:        "Lte",
	LogicalAnd: "LogicalAnd",
	LogicalOr:  "LogicalOr",
	LogicalNot: "LogicalNot",
	BinaryAnd:  "BinaryAnd",
	BinaryOr:   "BinaryOr",
	BinaryNot:  "BinaryNot",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorNames[o]
}
