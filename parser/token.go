package parser

import "fmt"

// Range is a half-open interval [Start, End) of rune offsets into the source.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset lies within r.
func (r Range) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenIdentifier
	TokenOperator
	TokenBracket
	TokenWhitespace
	TokenError
)

var tokenKindNames = map[TokenKind]string{
	TokenNumber:     "number",
	TokenIdentifier: "identifier",
	TokenOperator:   "operator",
	TokenBracket:    "bracket",
	TokenWhitespace: "whitespace",
	TokenError:      "error",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Char is one source character together with the flag supplied by the
// editing layer for characters touched by the most recent edit.
type Char struct {
	Value  rune
	Edited bool
}

// Chars converts s into characters that all carry the given edited flag.
func Chars(s string, edited bool) []Char {
	runes := []rune(s)
	chars := make([]Char, len(runes))
	for i, r := range runes {
		chars[i] = Char{Value: r, Edited: edited}
	}
	return chars
}

type Token struct {
	Kind   TokenKind
	Text   string
	Range  Range
	Edited bool
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Range, t.Kind, t.Text)
}
