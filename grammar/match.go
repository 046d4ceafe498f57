package grammar

import (
	"golang.org/x/exp/ebnf"
)

type memoKey struct {
	name   string
	offset int
}

// Matcher measures how much of an input a production matches. Repetitions
// are greedy and alternatives pick the longest match, which is how the
// lexer scans numbers and identifiers.
type Matcher struct {
	grammar  ebnf.Grammar
	input    []rune
	memo     map[memoKey]memoResult
	visiting map[memoKey]bool
}

func NewMatcher(g ebnf.Grammar, input string) *Matcher {
	return &Matcher{
		grammar:  g,
		input:    []rune(input),
		memo:     make(map[memoKey]memoResult),
		visiting: make(map[memoKey]bool),
	}
}

// Match returns the length in runes of the longest match of production name
// at offset. ok is false if the production does not match there.
func (m *Matcher) Match(name string, offset int) (n int, ok bool) {
	return m.matchName(name, offset)
}

// Classify returns the lexical production that matches all of lexeme, or ""
// if none does.
func Classify(g ebnf.Grammar, lexeme string) string {
	n := len([]rune(lexeme))
	if n == 0 {
		return ""
	}
	m := NewMatcher(g, lexeme)
	for _, name := range Productions(g) {
		if !IsLexical(name) || !isToken(name) {
			continue
		}
		if got, ok := m.Match(name, 0); ok && got == n {
			return name
		}
	}
	return ""
}

// isToken reports whether a lexical production stands for a whole token
// rather than a character class used to build one.
func isToken(name string) bool {
	return name != "letter" && name != "digit"
}

// match returns the number of runes expr matches at offset. ok is false
// when expr does not match; an optional part may match zero runes.
func (m *Matcher) match(expr ebnf.Expression, offset int) (int, bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		return m.matchToken(e.String, offset)

	case *ebnf.Range:
		return m.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := m.match(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, found := 0, false
		for _, alt := range e {
			if n, ok := m.match(alt, offset); ok && (!found || n > best) {
				best, found = n, true
			}
		}
		return best, found

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := m.match(e.Body, offset+total)
			if !ok || n == 0 {
				return total, true
			}
			total += n
		}

	case *ebnf.Option:
		n, _ := m.match(e.Body, offset)
		return n, true

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchName(e.String, offset)

	default:
		return 0, false
	}
}

type memoResult struct {
	n  int
	ok bool
}

func (m *Matcher) matchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}

	if result, ok := m.memo[key]; ok {
		return result.n, result.ok
	}
	// Left recursion.
	if m.visiting[key] {
		return 0, false
	}

	prod, ok := m.grammar[name]
	if !ok || prod.Expr == nil {
		m.memo[key] = memoResult{}
		return 0, false
	}

	m.visiting[key] = true
	n, ok := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = memoResult{n: n, ok: ok}
	return n, ok
}

func (m *Matcher) matchToken(token string, offset int) (int, bool) {
	want := []rune(token)
	if offset+len(want) > len(m.input) {
		return 0, false
	}
	for i, r := range want {
		if m.input[offset+i] != r {
			return 0, false
		}
	}
	return len(want), true
}

func (m *Matcher) matchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(m.input) {
		return 0, false
	}
	lo, hi := []rune(begin), []rune(end)
	if len(lo) != 1 || len(hi) != 1 {
		return 0, false
	}
	if r := m.input[offset]; r >= lo[0] && r <= hi[0] {
		return 1, true
	}
	return 0, false
}
