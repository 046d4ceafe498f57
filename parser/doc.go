// Package parser provides an error-tolerant lexer and parser for simple
// arithmetic expressions, meant to be rerun on every keystroke.
//
// # Overview
//
//	┌──────────────┐     ┌─────────────┐     ┌─────────────┐
//	│  Characters  │────▶│    Lex      │────▶│   Parse     │
//	│ (rune, flag) │     │  (tokens)   │     │   (tree)    │
//	└──────────────┘     └─────────────┘     └─────────────┘
//	                                                │
//	                                  ┌─────────────┴─────────────┐
//	                                  ▼                           ▼
//	                           ┌─────────────┐            ┌──────────────┐
//	                           │CollectErrors│            │AffectedRanges│
//	                           └─────────────┘            └──────────────┘
//
// Each source character carries an edited flag supplied by the editing
// layer. Tokens OR together the flags of the characters they cover.
//
// # Lexing
//
// The lexer never skips input. Numbers and identifiers are scanned with
// maximal munch; operators "+ - * /" and brackets "( )" are single
// characters. Whitespace and unknown characters become one-character
// error tokens, so the token ranges always tile [0, len(input)).
//
// # Tree
//
// A Node is either a *Branch (operation, brackets, has-error) or a *Leaf
// (number, identifier, bracket, operator, error). A branch spans its first to
// its last child. Use Match to handle both variants.
//
// # Error Recovery
//
// Parse never fails. Defects become nodes:
//
//  1. Missing term: a zero-width "Missing term" error leaf.
//  2. Unexpected token in term position: a has-error branch wrapping an
//     error leaf with the token's text.
//  3. Unclosed bracket: has-error [ "(", inner, "Missing closing bracket" ].
//  4. Leftover tokens: has-error [ expr, "Missing operator", rest ].
//
// # Affected Ranges
//
// AffectedRanges answers which spans a pending single-character insert or
// delete at the caret would change. Leaves report their own range, branches
// the union of their children, except that an edit next to either bracket
// of a brackets node reports just the two brackets.
package parser
