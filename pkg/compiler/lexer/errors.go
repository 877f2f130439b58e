package lexer

import "fmt"

// ErrKind classifies scan and token-consumption failures.
type ErrKind uint8

const (
	ErrUnexpectedSymbol ErrKind = iota // character starts no valid token
	ErrTargetNotFound                  // ScanUntil hit end of input first
	ErrUnexpectedToken                 // Expect saw the wrong kind
)

// Error reports a lexical or syntactic failure with its 1-based line.
// For ErrUnexpectedToken, Text holds the offending token's text and
// Expected/Actual the kinds involved; otherwise Text holds the offending
// character or the missing scan target.
type Error struct {
	Kind     ErrKind
	Line     int
	Text     string
	Expected Kind
	Actual   Kind
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedSymbol:
		return fmt.Sprintf("line %d: unexpected symbol %q", e.Line, e.Text)
	case ErrTargetNotFound:
		return fmt.Sprintf("line %d: expected %q before end of input", e.Line, e.Text)
	case ErrUnexpectedToken:
		return fmt.Sprintf("line %d: expected %s, got %s %q", e.Line, e.Expected, e.Actual, e.Text)
	}
	return fmt.Sprintf("line %d: unknown scan error", e.Line)
}
