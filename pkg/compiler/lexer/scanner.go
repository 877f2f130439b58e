package lexer

import (
	"strings"
)

// Scanner performs lexical analysis on nscript source. It holds the only
// mutable state in the pipeline: a cursor into the immutable source, the
// current line, and a one-slot lookahead buffer. The line counter always
// reflects the line of the last consumed token; a buffered lookahead does
// not advance it until that token is actually taken.
type Scanner struct {
	source string
	cursor int
	line   int

	pending struct {
		tok  Token
		line int // scanner line after scanning tok, re-applied on consumption
		ok   bool
	}
}

// NewScanner creates a new scanner for the given source. The source is
// consumed by scanning; reparsing requires a fresh scanner.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Line returns the line of the last consumed token, 1-based.
func (s *Scanner) Line() int { return s.line }

// skip drops n characters. Callers guarantee n does not pass the end.
func (s *Scanner) skip(n int) { s.cursor += n }

// scanName consumes a maximal run of letters, digits and underscores.
// It reports false when the run is empty.
func (s *Scanner) scanName() (string, bool) {
	start := s.cursor
	for s.cursor < len(s.source) && isNameChar(s.source[s.cursor]) {
		s.cursor++
	}
	if s.cursor == start {
		return "", false
	}
	return s.source[start:s.cursor], true
}

// skipBlank drops the maximal run of whitespace and newline sequences from
// the front of the source, bumping the line counter once per newline. A
// CRLF or LFCR pair counts as a single newline. It reports whether anything
// was consumed and whether the source ran out.
func (s *Scanner) skipBlank() (consumed, exhausted bool) {
	for s.cursor < len(s.source) {
		switch {
		case s.newlinePair():
			s.line++
			s.skip(2)
			consumed = true
		case s.source[s.cursor] == '\n' || s.source[s.cursor] == '\r':
			s.line++
			s.skip(1)
			consumed = true
		case s.source[s.cursor] == ' ' || s.source[s.cursor] == '\t' || s.source[s.cursor] == '\f':
			s.skip(1)
			consumed = true
		default:
			return consumed, false
		}
	}
	return consumed, true
}

// newlinePair reports whether the cursor sits on a CRLF or LFCR sequence.
func (s *Scanner) newlinePair() bool {
	if s.cursor+1 >= len(s.source) {
		return false
	}
	a, b := s.source[s.cursor], s.source[s.cursor+1]
	return (a == '\r' && b == '\n') || (a == '\n' && b == '\r')
}

// match classifies the token at the cursor. A whitespace run collapses
// into a single ignored token carrying its first character. An
// unclassifiable character is a hard ErrUnexpectedSymbol.
func (s *Scanner) match() (Token, error) {
	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Text: "EOF", Line: s.line}, nil
	}

	ch := s.source[s.cursor]
	switch ch {
	case '$':
		s.skip(1)
		return Token{Kind: KindDollar, Text: "$", Line: s.line}, nil
	case '(':
		s.skip(1)
		return Token{Kind: KindLParen, Text: "(", Line: s.line}, nil
	case ')':
		s.skip(1)
		return Token{Kind: KindRParen, Text: ")", Line: s.line}, nil
	case '=':
		s.skip(1)
		return Token{Kind: KindEquals, Text: "=", Line: s.line}, nil
	case '"':
		if s.cursor+1 < len(s.source) && s.source[s.cursor+1] == '"' {
			s.skip(2)
			return Token{Kind: KindDoubleQuote, Text: `""`, Line: s.line}, nil
		}
		s.skip(1)
		return Token{Kind: KindQuote, Text: `"`, Line: s.line}, nil
	}

	if isNameStart(ch) {
		line := s.line
		name, _ := s.scanName()
		if name == "print" {
			return Token{Kind: KindPrint, Text: name, Line: line}, nil
		}
		return Token{Kind: KindName, Text: name, Line: line}, nil
	}

	line := s.line
	if consumed, _ := s.skipBlank(); consumed {
		return Token{Kind: KindIgnored, Text: string(ch), Line: line}, nil
	}
	return Token{}, &Error{Kind: ErrUnexpectedSymbol, Line: s.line, Text: string(ch)}
}

// ScanUntil returns the source text preceding the first occurrence of
// target, consuming up to but not including target itself. Reaching end of
// input first is an ErrTargetNotFound error. The scan starts at the raw
// cursor, so callers must not have a lookahead buffered: consume the token
// that opens the region (via Next or Expect) before scanning.
func (s *Scanner) ScanUntil(target string) (string, error) {
	i := strings.Index(s.source[s.cursor:], target)
	if i < 0 {
		return "", &Error{Kind: ErrTargetNotFound, Line: s.line, Text: target}
	}
	text := s.source[s.cursor : s.cursor+i]
	s.skip(i)
	return text, nil
}

// Next returns the buffered lookahead if one is pending, else scans a
// fresh token.
func (s *Scanner) Next() (Token, error) {
	if s.pending.ok {
		tok := s.pending.tok
		s.line = s.pending.line
		s.pending.ok = false
		return tok, nil
	}
	return s.match()
}

// Peek reports the kind of the next token without consuming it.
func (s *Scanner) Peek() (Kind, error) {
	if s.pending.ok {
		return s.pending.tok.Kind, nil
	}
	saved := s.line
	tok, err := s.match()
	if err != nil {
		return KindNone, err
	}
	s.pending.tok = tok
	s.pending.line = s.line
	s.pending.ok = true
	s.line = saved
	return tok.Kind, nil
}

// SkipIf consumes the next token when it has the given kind, otherwise
// leaves it buffered as lookahead. The parser uses it to drop a single
// ignored run between syntactic elements.
func (s *Scanner) SkipIf(kind Kind) error {
	if s.pending.ok {
		if s.pending.tok.Kind == kind {
			s.line = s.pending.line
			s.pending.ok = false
		}
		return nil
	}
	saved := s.line
	tok, err := s.match()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		s.pending.tok = tok
		s.pending.line = s.line
		s.pending.ok = true
		s.line = saved
	}
	return nil
}

// Expect consumes the next token and fails with ErrUnexpectedToken unless
// it has the given kind.
func (s *Scanner) Expect(kind Kind) (Token, error) {
	tok, err := s.Next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &Error{
			Kind:     ErrUnexpectedToken,
			Line:     tok.Line,
			Text:     tok.Text,
			Expected: kind,
			Actual:   tok.Kind,
		}
	}
	return tok, nil
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}
