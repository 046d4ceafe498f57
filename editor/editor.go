package editor

import (
	"unicode/utf8"

	"github.com/dhamidi/arith/cursor"
	"github.com/dhamidi/arith/parser"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("arith.editor")

// Editor owns a text box and the tokens and tree derived from its content.
// Tokens and tree are rebuilt from scratch after every edit.
type Editor struct {
	box    TextBox
	tokens []parser.Token
	tree   parser.Node
}

// New returns an editor for text with every character marked edited and
// the caret at the start.
func New(text string) *Editor {
	e := &Editor{box: NewTextBox(text)}
	e.reparse()
	return e
}

func (e *Editor) Text() string           { return e.box.Input().String() }
func (e *Editor) Caret() int             { return e.box.Caret() }
func (e *Editor) Edited() []bool         { return e.box.Input().Edited() }
func (e *Editor) Tokens() []parser.Token { return e.tokens }
func (e *Editor) Tree() parser.Node      { return e.tree }
func (e *Editor) Render() string         { return e.box.Render() }

func (e *Editor) Errors() []*parser.Leaf {
	return parser.CollectErrors(e.tree)
}

// HandleKey applies a key name as delivered by a keyboard event:
// "Backspace", "ArrowLeft", "ArrowRight" or a single character. It reports
// whether the key was understood.
func (e *Editor) HandleKey(key string) bool {
	switch key {
	case "Backspace":
		e.Delete()
	case "ArrowLeft":
		e.box = e.box.MoveLeft()
	case "ArrowRight":
		e.box = e.box.MoveRight()
	default:
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			log.Debugf("ignoring key %q", key)
			return false
		}
		e.Insert(r)
	}
	return true
}

// Insert types r at the caret.
func (e *Editor) Insert(r rune) {
	e.edit(parser.EditInsert, func(tb TextBox) TextBox { return tb.Insert(r) })
}

// Delete removes the character left of the caret.
func (e *Editor) Delete() {
	if e.box.Caret() == 0 {
		return
	}
	e.edit(parser.EditDelete, TextBox.Delete)
}

// edit resets the edited flags to the ranges the pending edit affects in
// the current tree, applies the edit and reparses.
func (e *Editor) edit(kind parser.EditKind, apply func(TextBox) TextBox) {
	caret := e.box.Caret()
	affected := parser.AffectedRanges(e.tree, kind, caret)

	in := e.box.Input()
	flags := make([]bool, in.Len())
	for _, r := range affected {
		for i := max(r.Start, 0); i < r.End && i < len(flags); i++ {
			flags[i] = true
		}
	}
	in, err := in.SetEdited(flags)
	if err != nil {
		// flags is sized from in, so this cannot happen.
		panic(err)
	}

	e.box = apply(e.box.WithInput(in))
	log.Debugf("%s at %d affected %v", kind, caret, affected)
	e.reparse()
}

func (e *Editor) reparse() {
	e.tokens = parser.Lex(cursor.New(e.box.Input().Chars()))
	e.tree = parser.Parse(cursor.New(e.tokens))
}
