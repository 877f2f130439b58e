package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/agenthands/nscript/pkg/compiler/ast"
)

// Source renders the canonical textual form of a parsed program, one
// statement per line. Parsing the result yields an equivalent tree: the
// language has no escape sequences, so values are written verbatim between
// quotes (a parsed value can never contain one).
func Source(code *ast.SourceCode) string {
	var b strings.Builder
	for i, stmt := range code.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch s := stmt.(type) {
		case *ast.Assignment:
			fmt.Fprintf(&b, "$%s = \"%s\"", s.Target.Name, s.Value)
		case *ast.Print:
			fmt.Fprintf(&b, "print($%s)", s.Target.Name)
		}
	}
	return b.String()
}

// Fdump writes an indented node tree to w, one node per line with its
// source line number.
func Fdump(w io.Writer, code *ast.SourceCode) error {
	if _, err := fmt.Fprintf(w, "SourceCode [line %d]\n", code.LineNum); err != nil {
		return err
	}
	for _, stmt := range code.Statements {
		switch s := stmt.(type) {
		case *ast.Assignment:
			if _, err := fmt.Fprintf(w, "  Assignment [line %d] $%s = %q\n", s.LineNum, s.Target.Name, s.Value); err != nil {
				return err
			}
		case *ast.Print:
			if _, err := fmt.Fprintf(w, "  Print [line %d] $%s\n", s.LineNum, s.Target.Name); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "  %T [line %d]\n", s, s.Line()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Dump renders the node tree as a string.
func Dump(code *ast.SourceCode) string {
	var b strings.Builder
	_ = Fdump(&b, code) // strings.Builder never fails
	return b.String()
}
