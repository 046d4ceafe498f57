package parser

import (
	"strings"
	"unicode"

	"github.com/dhamidi/arith/cursor"
)

// Lex splits input into tokens until the cursor is exhausted. Every
// character ends up in exactly one token; characters that belong to no
// class, whitespace included, become single-character error tokens.
func Lex(input *cursor.Cursor[Char]) []Token {
	var tokens []Token
	for {
		ch, err := input.Next()
		if err != nil {
			return tokens
		}
		start, _ := input.LastIndex()

		switch {
		case isWhitespace(ch.Value):
			tokens = append(tokens, single(TokenError, ch, start, input))
		case isDigit(ch.Value):
			tokens = append(tokens, scanWhile(TokenNumber, ch, start, input, isDigit))
		case isIdentifierStart(ch.Value):
			tokens = append(tokens, scanWhile(TokenIdentifier, ch, start, input, isIdentifierContinue))
		case isOperator(ch.Value):
			tokens = append(tokens, single(TokenOperator, ch, start, input))
		case isBracket(ch.Value):
			tokens = append(tokens, single(TokenBracket, ch, start, input))
		default:
			tokens = append(tokens, single(TokenError, ch, start, input))
		}
	}
}

// LexString lexes s with no character marked as edited.
func LexString(s string) []Token {
	return Lex(cursor.New(Chars(s, false)))
}

func single(kind TokenKind, ch Char, start int, input *cursor.Cursor[Char]) Token {
	return Token{
		Kind:   kind,
		Text:   string(ch.Value),
		Range:  Range{Start: start, End: input.UpcomingIndex()},
		Edited: ch.Edited,
	}
}

// scanWhile consumes characters accepted by accept for as long as possible.
func scanWhile(kind TokenKind, first Char, start int, input *cursor.Cursor[Char], accept func(rune) bool) Token {
	var text strings.Builder
	text.WriteRune(first.Value)
	edited := first.Edited

	for {
		ch, err := input.NextIf(func(c Char) bool { return accept(c.Value) })
		if err != nil {
			break
		}
		text.WriteRune(ch.Value)
		edited = edited || ch.Edited
	}

	return Token{
		Kind:   kind,
		Text:   text.String(),
		Range:  Range{Start: start, End: input.UpcomingIndex()},
		Edited: edited,
	}
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentifierStart(r rune) bool {
	return isLetter(r) || r == '_'
}

func isIdentifierContinue(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

func isBracket(r rune) bool {
	return r == '(' || r == ')'
}
