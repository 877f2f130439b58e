package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindNone Kind = iota // sentinel: no token
	KindEOF
	KindDollar      // $
	KindLParen      // (
	KindRParen      // )
	KindEquals      // =
	KindQuote       // "
	KindDoubleQuote // "" (empty string literal)
	KindName
	KindPrint   // print keyword
	KindIgnored // whitespace run
)

var kindNames = [...]string{
	KindNone:        "none",
	KindEOF:         "end of input",
	KindDollar:      "$",
	KindLParen:      "(",
	KindRParen:      ")",
	KindEquals:      "=",
	KindQuote:       `"`,
	KindDoubleQuote: `""`,
	KindName:        "name",
	KindPrint:       "print",
	KindIgnored:     "ignored",
}

// String returns the diagnostic name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token represents a lexical unit: a kind, its source text, and the
// 1-based line it starts on.
type Token struct {
	Kind Kind
	Text string
	Line int
}
