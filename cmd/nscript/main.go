package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/nscript/pkg/compiler/ast"
	"github.com/agenthands/nscript/pkg/compiler/parser"
	"github.com/agenthands/nscript/pkg/compiler/printer"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nscript",
		Short:         "Tooling for the nscript language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(checkCmd())
	root.AddCommand(dumpCmd())
	return root
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a script and report diagnostics",
		Long:  "Parses the given script (or stdin when the file is -) and reports the first lexical or syntax error. Exits zero when the script parses.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d statement(s)\n", len(code.Statements))
			return nil
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse a script and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				return err
			}
			return printer.Fdump(cmd.OutOrStdout(), code)
		},
	}
}

// parseFile reads and parses one script. Trailing content after a valid
// program is downgraded to a warning; the parsed tree is still usable.
func parseFile(path string) (*ast.SourceCode, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	code, err := parser.Parse(string(src))
	if err != nil && errors.Is(err, parser.ErrTrailingInput) {
		fmt.Fprintln(os.Stderr, "warning:", err)
		return code, nil
	}
	return code, err
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
