package parser

import (
	"testing"

	"github.com/dhamidi/arith/cursor"
	"github.com/google/go-cmp/cmp"
)

func leaf(kind LeafKind, text string, start, end int) *Leaf {
	return NewLeaf(kind, text, Range{start, end})
}

func TestParseWellFormed(t *testing.T) {
	tree := ParseString("3+4*(2-1)")

	want := NewBranch(KindOperation,
		NewBranch(KindOperation,
			leaf(LeafNumber, "3", 0, 1),
			leaf(LeafOperator, "+", 1, 2),
			leaf(LeafNumber, "4", 2, 3),
		),
		leaf(LeafOperator, "*", 3, 4),
		NewBranch(KindBrackets,
			leaf(LeafBracket, "(", 4, 5),
			NewBranch(KindOperation,
				leaf(LeafNumber, "2", 5, 6),
				leaf(LeafOperator, "-", 6, 7),
				leaf(LeafNumber, "1", 7, 8),
			),
			leaf(LeafBracket, ")", 8, 9),
		),
	)

	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	if errs := CollectErrors(tree); len(errs) != 0 {
		t.Errorf("CollectErrors() = %v, want none", errs)
	}
}

func TestParseSingleTerms(t *testing.T) {
	tests := []struct {
		input string
		want  Node
	}{
		{"42", leaf(LeafNumber, "42", 0, 2)},
		{"x_1", leaf(LeafIdentifier, "x_1", 0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseString(tt.input)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLeftAssociative(t *testing.T) {
	tree := ParseString("a+b-c")

	root, ok := tree.(*Branch)
	if !ok || root.Kind != KindOperation {
		t.Fatalf("root = %v, want operation branch", tree)
	}
	if len(root.Children) != 3 {
		t.Fatalf("root has %d children, want 3", len(root.Children))
	}
	if op := root.Children[1].(*Leaf); op.Text != "-" {
		t.Errorf("root operator = %q, want %q", op.Text, "-")
	}
	left, ok := root.Children[0].(*Branch)
	if !ok || left.Kind != KindOperation {
		t.Fatalf("left = %v, want operation branch", root.Children[0])
	}
	if diff := cmp.Diff(Range{0, 3}, left.Span); diff != "" {
		t.Errorf("left range mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	tree := Parse(cursor.New[Token](nil))

	want := leaf(LeafError, MsgMissingTerm, 0, 0)
	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingTermAfterOperator(t *testing.T) {
	tree := ParseString("3+")

	want := NewBranch(KindOperation,
		leaf(LeafNumber, "3", 0, 1),
		leaf(LeafOperator, "+", 1, 2),
		leaf(LeafError, MsgMissingTerm, 2, 2),
	)
	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnexpectedToken(t *testing.T) {
	tree := ParseString(")")

	want := NewBranch(KindHasError, leaf(LeafError, ")", 0, 1))
	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingOperator(t *testing.T) {
	tree := ParseString("34")
	if _, ok := tree.(*Leaf); !ok {
		t.Fatalf("34 should lex as one number, got %v", tree)
	}

	tree = Parse(cursor.New([]Token{
		{Kind: TokenNumber, Text: "3", Range: Range{0, 1}},
		{Kind: TokenNumber, Text: "4", Range: Range{2, 3}},
	}))
	want := NewBranch(KindHasError,
		leaf(LeafNumber, "3", 0, 1),
		leaf(LeafError, MsgMissingOperator, 1, 1),
		leaf(LeafNumber, "4", 2, 3),
	)
	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWhitespaceSeparatedNumbers(t *testing.T) {
	tree := ParseString("3 4")

	want := NewBranch(KindHasError,
		leaf(LeafNumber, "3", 0, 1),
		leaf(LeafError, MsgMissingOperator, 1, 1),
		NewBranch(KindHasError,
			NewBranch(KindHasError, leaf(LeafError, " ", 1, 2)),
			leaf(LeafError, MsgMissingOperator, 2, 2),
			leaf(LeafNumber, "4", 2, 3),
		),
	)
	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUnmatchedBracket(t *testing.T) {
	tree := ParseString("(2-1")

	want := NewBranch(KindHasError,
		leaf(LeafBracket, "(", 0, 1),
		NewBranch(KindOperation,
			leaf(LeafNumber, "2", 1, 2),
			leaf(LeafOperator, "-", 2, 3),
			leaf(LeafNumber, "1", 3, 4),
		),
		leaf(LeafError, MsgMissingClosingBracket, 4, 4),
	)
	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLoneOpeningBracket(t *testing.T) {
	tree := ParseString("(")

	want := NewBranch(KindHasError,
		leaf(LeafBracket, "(", 0, 1),
		leaf(LeafError, MsgMissingTerm, 1, 1),
		leaf(LeafError, MsgMissingClosingBracket, 1, 1),
	)
	if diff := cmp.Diff(Node(want), tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLeadingGarbage(t *testing.T) {
	tree := ParseString("?3+4*(2-1)")

	root, ok := tree.(*Branch)
	if !ok || root.Kind != KindHasError {
		t.Fatalf("root = %v, want has-error branch", tree)
	}
	if diff := cmp.Diff(Node(NewBranch(KindHasError, leaf(LeafError, "?", 0, 1))), root.Children[0]); diff != "" {
		t.Errorf("first child mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Node(leaf(LeafError, MsgMissingOperator, 1, 1)), root.Children[1]); diff != "" {
		t.Errorf("marker mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Range{1, 10}, root.Children[2].Range()); diff != "" {
		t.Errorf("rest range mismatch (-want +got):\n%s", diff)
	}

	var msgs []string
	for _, e := range CollectErrors(tree) {
		msgs = append(msgs, e.Text)
	}
	if diff := cmp.Diff([]string{"?", MsgMissingOperator}, msgs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTotal(t *testing.T) {
	inputs := []string{
		"", " ", "(", ")", "((", "))", "+", "+-", "3+", "(3", "3)", "()", "(()",
		"a b c", "1 + 2", "? 3+4*(2-1)", "((1+2)*(3", "*/*/", "12ab(34)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree := ParseString(input)
			if tree == nil {
				t.Fatal("ParseString returned nil")
			}
			checkBranchRanges(t, tree)

			if r := tree.Range(); r.End != len([]rune(input)) && input != "" {
				t.Errorf("root range %s does not end at %d", r, len([]rune(input)))
			}
		})
	}
}

// checkBranchRanges verifies that every branch spans its first to last child.
func checkBranchRanges(t *testing.T, n Node) {
	t.Helper()
	Walk(n, func(n Node) bool {
		b, ok := n.(*Branch)
		if !ok {
			return true
		}
		if len(b.Children) == 0 {
			t.Errorf("branch %s has no children", b.Span)
			return false
		}
		want := Range{b.Children[0].Range().Start, b.Children[len(b.Children)-1].Range().End}
		if b.Span != want {
			t.Errorf("branch %s %s, want %s", b.Kind, b.Span, want)
		}
		if (b.Kind == KindOperation || b.Kind == KindBrackets) && len(b.Children) != 3 {
			t.Errorf("%s branch has %d children, want 3", b.Kind, len(b.Children))
		}
		return true
	})
}
