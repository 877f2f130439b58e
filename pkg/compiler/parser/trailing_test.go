package parser

import (
	"errors"
	"testing"

	"github.com/agenthands/nscript/pkg/compiler/lexer"
)

func TestTrailingErrorKeepsBothCauses(t *testing.T) {
	cause := &lexer.Error{
		Kind:     lexer.ErrUnexpectedToken,
		Line:     3,
		Text:     ")",
		Expected: lexer.KindEOF,
		Actual:   lexer.KindRParen,
	}
	err := trailingError(cause)

	if !errors.Is(err, ErrTrailingInput) {
		t.Errorf("errors.Is(ErrTrailingInput) = false for %v", err)
	}

	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("errors.As(*lexer.Error) = false for %v", err)
	}
	if lexErr.Line != 3 || lexErr.Actual != lexer.KindRParen {
		t.Errorf("underlying error lost detail: %+v", lexErr)
	}
}
