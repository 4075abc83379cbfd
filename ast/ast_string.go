package ast

import (
	"fmt"
	"strings"
)

func (f Function) String() string {
	if f.Signature == nil {
		return fmt.Sprintf("to %s", f.Name)
	}
	return fmt.Sprintf("to %s with (%s)", f.Name, strings.Join(f.Signature, ", "))
}
