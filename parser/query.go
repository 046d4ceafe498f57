package parser

type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	}
	return "unknown"
}

// CollectErrors returns every error leaf in left-to-right order.
func CollectErrors(n Node) []*Leaf {
	var errs []*Leaf
	Walk(n, func(n Node) bool {
		if l, ok := n.(*Leaf); ok && l.Kind == LeafError {
			errs = append(errs, l)
		}
		return true
	})
	return errs
}

// Touches reports whether a single-character edit at caret can change the
// text covered by r. A delete removes the character left of the caret, so
// the caret may sit on the right edge. An insert at either edge leaves r
// intact.
func Touches(r Range, kind EditKind, caret int) bool {
	switch kind {
	case EditDelete:
		return r.Start < caret && caret <= r.End
	case EditInsert:
		return r.Start < caret && caret < r.End
	}
	return false
}

// touchesBracket is Touches for the bracket leaves of a brackets node. An
// insert directly next to a bracket counts, since it changes which bracket
// the new character pairs with.
func touchesBracket(r Range, kind EditKind, caret int) bool {
	if kind == EditInsert {
		return r.Start <= caret && caret <= r.End
	}
	return Touches(r, kind, caret)
}

// AffectedRanges returns the ranges of n that a pending edit of the given
// kind at caret would change. It is evaluated before the edit is applied.
func AffectedRanges(n Node, kind EditKind, caret int) []Range {
	if !Touches(n.Range(), kind, caret) {
		return nil
	}
	return Match(n,
		func(b *Branch) []Range {
			switch b.Kind {
			case KindBrackets:
				opening, closing := b.Children[0].Range(), b.Children[len(b.Children)-1].Range()
				if touchesBracket(opening, kind, caret) || touchesBracket(closing, kind, caret) {
					return []Range{opening, closing}
				}
				return affectedChildren(b, kind, caret)
			case KindOperation, KindHasError:
				return affectedChildren(b, kind, caret)
			default:
				panic("parser: unhandled branch kind " + b.Kind.String())
			}
		},
		func(l *Leaf) []Range {
			return []Range{l.Span}
		},
	)
}

func affectedChildren(b *Branch, kind EditKind, caret int) []Range {
	var result []Range
	for _, child := range b.Children {
		result = append(result, AffectedRanges(child, kind, caret)...)
	}
	return result
}

// NodeAt returns the nodes whose range contains offset, from the root down
// to the innermost one. Zero-width nodes match when offset equals their
// position.
func NodeAt(n Node, offset int) []Node {
	var path []Node
	Walk(n, func(n Node) bool {
		r := n.Range()
		if !r.Contains(offset) && !(r.Len() == 0 && r.Start == offset) {
			return false
		}
		path = append(path, n)
		return true
	})
	return path
}
