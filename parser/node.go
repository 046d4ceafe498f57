package parser

import "fmt"

type BranchKind int

const (
	KindOperation BranchKind = iota
	KindBrackets
	KindHasError
)

var branchKindNames = map[BranchKind]string{
	KindOperation: "operation",
	KindBrackets:  "brackets",
	KindHasError:  "has-error",
}

func (k BranchKind) String() string {
	if name, ok := branchKindNames[k]; ok {
		return name
	}
	return "unknown"
}

type LeafKind int

const (
	LeafNumber LeafKind = iota
	LeafIdentifier
	LeafBracket
	LeafOperator
	LeafError
)

var leafKindNames = map[LeafKind]string{
	LeafNumber:     "number",
	LeafIdentifier: "identifier",
	LeafBracket:    "bracket",
	LeafOperator:   "operator",
	LeafError:      "error",
}

func (k LeafKind) String() string {
	if name, ok := leafKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is either a *Branch or a *Leaf. The set is closed: the unexported
// marker method keeps other packages from adding implementations.
type Node interface {
	Range() Range
	String() string
	node()
}

type Branch struct {
	Kind     BranchKind
	Children []Node
	Span     Range
}

type Leaf struct {
	Kind LeafKind
	Text string
	Span Range
}

func (*Branch) node() {}
func (*Leaf) node()   {}

func (b *Branch) Range() Range { return b.Span }
func (l *Leaf) Range() Range   { return l.Span }

// NewBranch builds a branch spanning its first to its last child.
func NewBranch(kind BranchKind, children ...Node) *Branch {
	if len(children) == 0 {
		panic("parser: branch without children")
	}
	return &Branch{
		Kind:     kind,
		Children: children,
		Span: Range{
			Start: children[0].Range().Start,
			End:   children[len(children)-1].Range().End,
		},
	}
}

func NewLeaf(kind LeafKind, text string, r Range) *Leaf {
	return &Leaf{Kind: kind, Text: text, Span: r}
}

// errorAt returns a zero-width error leaf at offset.
func errorAt(msg string, offset int) *Leaf {
	return NewLeaf(LeafError, msg, Range{Start: offset, End: offset})
}

// Match dispatches on the concrete node type. Both handlers are required, so
// every caller covers every variant.
func Match[R any](n Node, branch func(*Branch) R, leaf func(*Leaf) R) R {
	switch n := n.(type) {
	case *Branch:
		return branch(n)
	case *Leaf:
		return leaf(n)
	default:
		panic(fmt.Sprintf("parser: unhandled node type %T", n))
	}
}

// Walk visits n and its descendants depth-first, left to right. Returning
// false from visit skips the children of that node.
func Walk(n Node, visit func(Node) bool) {
	if !visit(n) {
		return
	}
	if b, ok := n.(*Branch); ok {
		for _, child := range b.Children {
			Walk(child, visit)
		}
	}
}

func (b *Branch) String() string {
	return stringIndent(b, 0)
}

func (l *Leaf) String() string {
	return stringIndent(l, 0)
}

func stringIndent(n Node, indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	return Match(n,
		func(b *Branch) string {
			result := prefix + b.Kind.String() + " " + b.Span.String() + "\n"
			for _, child := range b.Children {
				result += stringIndent(child, indent+1)
			}
			return result
		},
		func(l *Leaf) string {
			return fmt.Sprintf("%s%s %s %q\n", prefix, l.Kind, l.Span, l.Text)
		},
	)
}
