// Package editor models a single-line text field that reparses its content
// on every keystroke and tracks which characters were recently edited.
package editor

import (
	"fmt"

	"github.com/dhamidi/arith/parser"
)

// Input is an immutable character sequence with one edited flag per
// character.
type Input struct {
	value  []rune
	edited []bool
}

// FromString returns an input whose characters are all marked edited.
func FromString(s string) Input {
	value := []rune(s)
	edited := make([]bool, len(value))
	for i := range edited {
		edited[i] = true
	}
	return Input{value: value, edited: edited}
}

func (in Input) String() string {
	return string(in.value)
}

func (in Input) Len() int {
	return len(in.value)
}

// Edited returns a copy of the edited flags.
func (in Input) Edited() []bool {
	return append([]bool(nil), in.edited...)
}

// SetEdited replaces the edited flags. The flags must match the input length.
func (in Input) SetEdited(edited []bool) (Input, error) {
	if len(edited) != len(in.value) {
		return in, fmt.Errorf("edited flags: got %d, want %d", len(edited), len(in.value))
	}
	return Input{value: in.value, edited: append([]bool(nil), edited...)}, nil
}

// Insert places r before index i and marks it edited.
func (in Input) Insert(i int, r rune) Input {
	return Input{
		value:  spliced(in.value, i, 0, r),
		edited: spliced(in.edited, i, 0, true),
	}
}

// Delete removes the character at index i.
func (in Input) Delete(i int) Input {
	return Input{
		value:  spliced(in.value, i, 1),
		edited: spliced(in.edited, i, 1),
	}
}

// Chars pairs every character with its edited flag for the lexer.
func (in Input) Chars() []parser.Char {
	chars := make([]parser.Char, len(in.value))
	for i, r := range in.value {
		chars[i] = parser.Char{Value: r, Edited: in.edited[i]}
	}
	return chars
}

// spliced returns a copy of s with n elements removed at i and items
// inserted in their place.
func spliced[T any](s []T, i, n int, items ...T) []T {
	out := make([]T, 0, len(s)-n+len(items))
	out = append(out, s[:i]...)
	out = append(out, items...)
	return append(out, s[i+n:]...)
}

// Replace swaps the characters in [start, end) for text and marks the new
// characters edited. Offsets are clamped to the input.
func (in Input) Replace(start, end int, text string) Input {
	start = min(max(start, 0), len(in.value))
	end = min(max(end, start), len(in.value))

	runes := []rune(text)
	edited := make([]bool, len(runes))
	for i := range edited {
		edited[i] = true
	}
	return Input{
		value:  spliced(in.value, start, end-start, runes...),
		edited: spliced(in.edited, start, end-start, edited...),
	}
}

// ClearEdited returns the input with no character marked edited.
func (in Input) ClearEdited() Input {
	return Input{value: in.value, edited: make([]bool, len(in.value))}
}
