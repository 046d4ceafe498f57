package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/arith/parser"
)

// MermaidEncoder renders a tree as a Mermaid flowchart. Every node becomes
// a labeled box with an edge from its parent.
type MermaidEncoder struct {
	w io.Writer
}

func NewMermaidEncoder(w io.Writer) *MermaidEncoder {
	return &MermaidEncoder{w: w}
}

func (e *MermaidEncoder) Encode(tree parser.Node) error {
	text, err := e.MarshalText(tree)
	return write(e.w, text, err)
}

func (e *MermaidEncoder) MarshalText(tree parser.Node) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("flowchart TD\n")

	rootID := nodeID("", 0)
	fmt.Fprintf(&sb, "%s[\"%s\"]\n", rootID, NodeLabel(tree))
	writeEdges(&sb, tree, rootID)

	return []byte(sb.String()), nil
}

func writeEdges(sb *strings.Builder, n parser.Node, id string) {
	b, ok := n.(*parser.Branch)
	if !ok {
		return
	}
	label := NodeLabel(b)
	for i, child := range b.Children {
		childID := nodeID(id, i)
		fmt.Fprintf(sb, "%s[\"%s\"] --> %s[\"%s\"]\n", id, label, childID, NodeLabel(child))
		writeEdges(sb, child, childID)
	}
}

func nodeID(prefix string, index int) string {
	return prefix + strconv.Itoa(index) + "_"
}

// NodeLabel returns the escaped diagram label of n.
func NodeLabel(n parser.Node) string {
	label := parser.Match(n,
		func(b *parser.Branch) string {
			switch b.Kind {
			case parser.KindOperation:
				var ops strings.Builder
				for _, child := range b.Children {
					if l, ok := child.(*parser.Leaf); ok && l.Kind == parser.LeafOperator {
						ops.WriteString(l.Text)
					}
				}
				return ops.String()
			case parser.KindBrackets:
				return "( )"
			case parser.KindHasError:
				return "has-error"
			default:
				panic("format: unhandled branch kind " + b.Kind.String())
			}
		},
		func(l *parser.Leaf) string {
			return l.Text
		},
	)
	return escapeMermaid(label)
}

// escapeMermaid replaces every Latin-1 character outside [0-9A-Za-z] with a
// numeric entity of the form #0043;.
func escapeMermaid(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if needsEscape(r) {
			fmt.Fprintf(&sb, "#%04d;", r)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func needsEscape(r rune) bool {
	switch {
	case r <= 0x2F:
		return true
	case r >= 0x3A && r <= 0x40:
		return true
	case r >= 0x5B && r <= 0x60:
		return true
	case r >= 0x7B && r <= 0xFF:
		return true
	}
	return false
}
