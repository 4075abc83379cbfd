package ast

type Function struct {
	Name      string
	Signature []string
	Code      StmtRef
}

// Program is an ordered list of functions together with the arena holding
// their bodies.
type Program struct {
	Arena     *Arena
	Functions []Function
}
