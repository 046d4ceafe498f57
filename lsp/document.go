package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/arith/cursor"
	"github.com/dhamidi/arith/editor"
	"github.com/dhamidi/arith/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "arith"

// Document is an open text document together with its latest parse.
// Positions count UTF-16 code units within a line, the only encoding
// protocol 3.16 defines; tree ranges count runes.
type Document struct {
	URI     protocol.DocumentUri
	Version protocol.Integer

	input  editor.Input
	tokens []parser.Token
	tree   parser.Node
}

// NewDocument parses text with every character marked edited.
func NewDocument(uri protocol.DocumentUri, version protocol.Integer, text string) *Document {
	d := &Document{URI: uri, Version: version}
	d.SetText(text)
	return d
}

func (d *Document) Text() string           { return d.input.String() }
func (d *Document) Tokens() []parser.Token { return d.tokens }
func (d *Document) Tree() parser.Node      { return d.tree }

// SetText replaces the whole document.
func (d *Document) SetText(text string) {
	d.input = editor.FromString(text)
	d.reparse()
}

// Replace swaps the text between two positions. Only the inserted
// characters stay marked edited.
func (d *Document) Replace(r protocol.Range, text string) {
	runes := []rune(d.input.String())
	start := offsetOf(runes, r.Start)
	end := offsetOf(runes, r.End)
	if end < start {
		start, end = end, start
	}
	d.input = d.input.ClearEdited().Replace(start, end, text)
	d.reparse()
}

// Apply applies content changes in order, as sent with didChange.
func (d *Document) Apply(changes []any) error {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				d.SetText(c.Text)
			} else {
				d.Replace(*c.Range, c.Text)
			}
		case protocol.TextDocumentContentChangeEventWhole:
			d.SetText(c.Text)
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}
	return nil
}

// Diagnostics reports every error leaf of the tree. The result is never
// nil so that publishing it clears stale diagnostics.
func (d *Document) Diagnostics() []protocol.Diagnostic {
	runes := []rune(d.input.String())
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource

	diagnostics := []protocol.Diagnostic{}
	for _, leaf := range parser.CollectErrors(d.tree) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeOf(runes, leaf.Range()),
			Severity: &severity,
			Source:   &source,
			Message:  errorMessage(leaf),
		})
	}
	return diagnostics
}

// Hover describes the nodes under pos, outermost first.
func (d *Document) Hover(pos protocol.Position) *protocol.Hover {
	runes := []rune(d.input.String())
	path := parser.NodeAt(d.tree, offsetOf(runes, pos))
	if len(path) == 0 {
		return nil
	}

	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = fmt.Sprintf("`%s` %s", kindOf(n), n.Range())
	}
	innermost := rangeOf(runes, path[len(path)-1].Range())

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: strings.Join(parts, " > "),
		},
		Range: &innermost,
	}
}

func (d *Document) reparse() {
	d.tokens = parser.Lex(cursor.New(d.input.Chars()))
	d.tree = parser.Parse(cursor.New(d.tokens))
}

// errorMessage names the offending text for error leaves that wrap an
// unexpected token.
func errorMessage(leaf *parser.Leaf) string {
	switch leaf.Text {
	case parser.MsgMissingTerm, parser.MsgMissingClosingBracket, parser.MsgMissingOperator:
		return leaf.Text
	}
	return fmt.Sprintf("Unexpected %q", leaf.Text)
}

func kindOf(n parser.Node) string {
	return parser.Match(n,
		func(b *parser.Branch) string { return b.Kind.String() },
		func(l *parser.Leaf) string { return l.Kind.String() },
	)
}

// offsetOf converts a line/character position to a rune offset, clamping
// to the end of the line and of the text. A character inside a surrogate
// pair resolves to the rune after it.
func offsetOf(runes []rune, pos protocol.Position) int {
	line := protocol.UInteger(0)
	i := 0
	for ; i < len(runes) && line < pos.Line; i++ {
		if runes[i] == '\n' {
			line++
		}
	}
	if line < pos.Line {
		return len(runes)
	}
	for c := protocol.UInteger(0); c < pos.Character && i < len(runes) && runes[i] != '\n'; i++ {
		c += utf16Len(runes[i])
	}
	return i
}

func positionOf(runes []rune, offset int) protocol.Position {
	var pos protocol.Position
	for i := 0; i < offset && i < len(runes); i++ {
		if runes[i] == '\n' {
			pos.Line++
			pos.Character = 0
		} else {
			pos.Character += utf16Len(runes[i])
		}
	}
	return pos
}

func utf16Len(r rune) protocol.UInteger {
	if n := utf16.RuneLen(r); n > 0 {
		return protocol.UInteger(n)
	}
	return 1
}

func rangeOf(runes []rune, r parser.Range) protocol.Range {
	return protocol.Range{
		Start: positionOf(runes, r.Start),
		End:   positionOf(runes, r.End),
	}
}
