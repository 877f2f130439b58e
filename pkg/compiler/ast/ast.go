package ast

// Statement is a top-level executable unit of an nscript program: an
// assignment or a print call. The interface is closed; only node types in
// this package implement it.
type Statement interface {
	Line() int
	stmtNode()
}

// Variable is a $-prefixed name reference.
type Variable struct {
	LineNum int
	Name    string
}

func (v Variable) Line() int { return v.LineNum }

// Assignment binds a string literal to a variable: $name = "value".
type Assignment struct {
	LineNum int
	Target  Variable
	Value   string
}

func (a *Assignment) Line() int { return a.LineNum }
func (a *Assignment) stmtNode() {}

// Print writes a variable's value: print($name).
type Print struct {
	LineNum int
	Target  Variable
}

func (p *Print) Line() int { return p.LineNum }
func (p *Print) stmtNode() {}

// SourceCode is the root node, holding statements in source order.
// Nodes are built once during parsing and never mutated.
type SourceCode struct {
	LineNum    int
	Statements []Statement
}

func (s *SourceCode) Line() int { return s.LineNum }
