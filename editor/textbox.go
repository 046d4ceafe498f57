package editor

import "strings"

// TextBox is an Input with a caret. The caret sits between characters:
// 0 is before the first one, Len() after the last one.
type TextBox struct {
	input Input
	caret int
}

// NewTextBox puts the caret at the start of s.
func NewTextBox(s string) TextBox {
	return TextBox{input: FromString(s)}
}

func (tb TextBox) Input() Input { return tb.input }
func (tb TextBox) Caret() int   { return tb.caret }

func (tb TextBox) WithInput(in Input) TextBox {
	if tb.caret > in.Len() {
		tb.caret = in.Len()
	}
	tb.input = in
	return tb
}

func (tb TextBox) Insert(r rune) TextBox {
	return TextBox{input: tb.input.Insert(tb.caret, r), caret: tb.caret + 1}
}

// Delete removes the character left of the caret.
func (tb TextBox) Delete() TextBox {
	if tb.caret == 0 {
		return tb
	}
	return TextBox{input: tb.input.Delete(tb.caret - 1), caret: tb.caret - 1}
}

func (tb TextBox) MoveLeft() TextBox {
	if tb.caret == 0 {
		return tb
	}
	tb.caret--
	return tb
}

func (tb TextBox) MoveRight() TextBox {
	if tb.caret == tb.input.Len() {
		return tb
	}
	tb.caret++
	return tb
}

// Render draws three lines: the text, '^' under every edited character and
// '|' under the caret position.
func (tb TextBox) Render() string {
	var marks strings.Builder
	for _, edited := range tb.input.edited {
		if edited {
			marks.WriteByte('^')
		} else {
			marks.WriteByte(' ')
		}
	}
	return tb.input.String() + "\n" +
		strings.TrimRight(marks.String(), " ") + "\n" +
		strings.Repeat(" ", tb.caret) + "|"
}
