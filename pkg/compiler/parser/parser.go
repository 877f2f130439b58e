package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/agenthands/nscript/pkg/compiler/ast"
	"github.com/agenthands/nscript/pkg/compiler/lexer"
)

// ErrTrailingInput marks content left over after a fully parsed program.
// The tree returned alongside it is complete and usable; callers decide
// whether to treat the leftover as fatal.
var ErrTrailingInput = errors.New("trailing input after program")

// Parser builds an nscript AST by pulling tokens from a scanner. Each
// grammar rule consumes tokens left to right with one token of lookahead
// and no backtracking: once a rule takes a token, a failure further down
// aborts the whole parse.
type Parser struct {
	scanner *lexer.Scanner
}

func NewParser(s *lexer.Scanner) *Parser {
	return &Parser{scanner: s}
}

// Parse runs the full pipeline over source. On a lexical or syntactic
// failure it returns nil and the first error encountered. Trailing content
// after a valid program is the one non-fatal diagnostic: the parsed tree is
// returned together with an error wrapping ErrTrailingInput.
func Parse(source string) (*ast.SourceCode, error) {
	return NewParser(lexer.NewScanner(source)).Parse()
}

// Parse consumes the parser's scanner and returns the program tree. The
// scanner is spent afterwards; reparsing needs a fresh one.
func (p *Parser) Parse() (*ast.SourceCode, error) {
	return p.parseSourceCode()
}

func (p *Parser) parseSourceCode() (*ast.SourceCode, error) {
	line := p.scanner.Line()
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	code := &ast.SourceCode{LineNum: line, Statements: stmts}
	if _, err := p.scanner.Expect(lexer.KindEOF); err != nil {
		return code, trailingError(err)
	}
	return code, nil
}

// trailingError ties the leftover-token diagnostic to ErrTrailingInput
// while keeping the underlying error inspectable with errors.As.
func trailingError(err error) error {
	return fmt.Errorf("%w: %w", ErrTrailingInput, err)
}

func (p *Parser) parseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		// Leading whitespace, and whitespace-only programs.
		if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
			return nil, err
		}
		kind, err := p.scanner.Peek()
		if err != nil {
			return nil, err
		}
		if kind == lexer.KindEOF {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	kind, err := p.scanner.Peek()
	if err != nil {
		return nil, err
	}
	switch kind {
	case lexer.KindPrint:
		return p.parsePrint()
	case lexer.KindDollar:
		return p.parseAssignment()
	default:
		return nil, errors.Errorf("line %d: unknown statement starting with %s", p.scanner.Line(), kind)
	}
}

// parseAssignment handles: $name = "value"
func (p *Parser) parseAssignment() (ast.Statement, error) {
	line := p.scanner.Line()
	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
		return nil, err
	}
	if _, err := p.scanner.Expect(lexer.KindEquals); err != nil {
		return nil, errors.Wrap(err, "parse assignment")
	}
	if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
		return nil, err
	}
	value, err := p.parseString()
	if err != nil {
		return nil, errors.Wrap(err, "parse assignment")
	}
	if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
		return nil, err
	}
	return &ast.Assignment{LineNum: line, Target: v, Value: value}, nil
}

// parsePrint handles: print($name)
func (p *Parser) parsePrint() (ast.Statement, error) {
	tok, err := p.scanner.Expect(lexer.KindPrint)
	if err != nil {
		return nil, err
	}
	if _, err := p.scanner.Expect(lexer.KindLParen); err != nil {
		return nil, errors.Wrap(err, "parse print")
	}
	if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
		return nil, err
	}
	v, err := p.parseVariable()
	if err != nil {
		return nil, errors.Wrap(err, "parse print")
	}
	if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
		return nil, err
	}
	if _, err := p.scanner.Expect(lexer.KindRParen); err != nil {
		return nil, errors.Wrap(err, "parse print")
	}
	if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
		return nil, err
	}
	return &ast.Print{LineNum: tok.Line, Target: v}, nil
}

// parseVariable handles: $name. The line is captured before the dollar so
// a missing name is reported where the variable started.
func (p *Parser) parseVariable() (ast.Variable, error) {
	line := p.scanner.Line()
	if _, err := p.scanner.Expect(lexer.KindDollar); err != nil {
		return ast.Variable{}, errors.Wrap(err, "parse variable")
	}
	name, err := p.parseName()
	if err != nil {
		return ast.Variable{}, errors.Wrapf(err, "line %d: variable name expected", line)
	}
	if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
		return ast.Variable{}, err
	}
	return ast.Variable{LineNum: line, Name: name}, nil
}

func (p *Parser) parseName() (string, error) {
	tok, err := p.scanner.Expect(lexer.KindName)
	if err != nil {
		return "", err
	}
	return tok.Text, nil
}

// parseString handles "" and "chars". The literal's value is everything up
// to the next double quote; there are no escapes in the language.
func (p *Parser) parseString() (string, error) {
	kind, err := p.scanner.Peek()
	if err != nil {
		return "", err
	}
	switch kind {
	case lexer.KindDoubleQuote:
		if _, err := p.scanner.Next(); err != nil {
			return "", err
		}
		if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
			return "", err
		}
		return "", nil
	case lexer.KindQuote:
		if _, err := p.scanner.Next(); err != nil {
			return "", err
		}
		text, err := p.scanner.ScanUntil(`"`)
		if err != nil {
			return "", errors.Wrap(err, "unterminated string")
		}
		if _, err := p.scanner.Expect(lexer.KindQuote); err != nil {
			return "", err
		}
		if err := p.scanner.SkipIf(lexer.KindIgnored); err != nil {
			return "", err
		}
		return text, nil
	default:
		return "", errors.Errorf("line %d: not a string: next token is %s", p.scanner.Line(), kind)
	}
}
