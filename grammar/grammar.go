// Package grammar holds the EBNF description of the expression language.
package grammar

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

const (
	Filename = "arith.ebnf"
	Start    = "Expression"
)

//go:embed arith.ebnf
var source string

// Source returns the grammar text.
func Source() string {
	return source
}

// Load parses the embedded grammar and verifies it from Start.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(Filename, strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Productions returns the production names of g in sorted order.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLexical reports whether name denotes a lexical production.
func IsLexical(name string) bool {
	for _, r := range name {
		return unicode.IsLower(r)
	}
	return false
}
