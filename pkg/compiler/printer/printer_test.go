package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/nscript/pkg/compiler/ast"
	"github.com/agenthands/nscript/pkg/compiler/parser"
	"github.com/agenthands/nscript/pkg/compiler/printer"
)

func TestSourceRoundTrip(t *testing.T) {
	src := "$msg = \"hi\"\nprint($msg)\n$empty = \"\""
	code, err := parser.Parse(src)
	require.NoError(t, err)

	rendered := printer.Source(code)
	assert.Equal(t, "$msg = \"hi\"\nprint($msg)\n$empty = \"\"", rendered)

	// Canonical output parses back to an equivalent tree.
	again, err := parser.Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, code, again)
}

func TestSourceRendersValuesVerbatim(t *testing.T) {
	// The language has no escape sequences, so a backslash is an ordinary
	// value character and must not come back Go-escaped.
	code, err := parser.Parse(`$x="a\b"`)
	require.NoError(t, err)
	require.Len(t, code.Statements, 1)
	require.Equal(t, `a\b`, code.Statements[0].(*ast.Assignment).Value)

	rendered := printer.Source(code)
	assert.Equal(t, `$x = "a\b"`, rendered)

	again, err := parser.Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, `a\b`, again.Statements[0].(*ast.Assignment).Value)
}

func TestDump(t *testing.T) {
	code, err := parser.Parse("$a=\"x\"\nprint($a)")
	require.NoError(t, err)

	want := "SourceCode [line 1]\n" +
		"  Assignment [line 1] $a = \"x\"\n" +
		"  Print [line 2] $a\n"
	assert.Equal(t, want, printer.Dump(code))
}
