package errors

import (
	"fmt"

	"github.com/pontaoski/haumea/types"
)

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected one of %s. %s", e.Got, e.Expected, e.Location)
}

type UnexpectedCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q. %s", e.Char, e.Location)
}

type InvalidInteger struct {
	Literal  string
	Location types.Span
}

func (e InvalidInteger) Error() string {
	return fmt.Sprintf("integer literal %s does not fit in 64 bits. %s", e.Literal, e.Location)
}

// OwnershipViolation is raised when a node is consumed while it is not
// referenced from exactly one place, or when it is consumed a second time.
// It always points at a bug in whatever built the tree, never at the
// program text.
type OwnershipViolation struct {
	Node     string
	Index    int
	Owners   int
	Consumed bool
}

func (e OwnershipViolation) Error() string {
	switch {
	case e.Consumed:
		return fmt.Sprintf("%s #%d was already consumed", e.Node, e.Index)
	case e.Owners == 0:
		return fmt.Sprintf("%s #%d has no owner", e.Node, e.Index)
	}
	return fmt.Sprintf("%s #%d is shared by %d owners", e.Node, e.Index, e.Owners)
}

type FunctionFailed struct {
	Function string
	Err      error
}

func (e FunctionFailed) Error() string {
	return fmt.Sprintf("could not compile function %s: %s", e.Function, e.Err)
}

func (e FunctionFailed) Unwrap() error {
	return e.Err
}
