package parser

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{KindOperation.String(), "operation"},
		{KindBrackets.String(), "brackets"},
		{KindHasError.String(), "has-error"},
		{BranchKind(42).String(), "unknown"},
		{LeafNumber.String(), "number"},
		{LeafIdentifier.String(), "identifier"},
		{LeafBracket.String(), "bracket"},
		{LeafOperator.String(), "operator"},
		{LeafError.String(), "error"},
		{LeafKind(42).String(), "unknown"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestNewBranchRange(t *testing.T) {
	b := NewBranch(KindHasError,
		leaf(LeafNumber, "3", 0, 1),
		leaf(LeafError, MsgMissingOperator, 1, 1),
		leaf(LeafNumber, "4", 2, 3),
	)
	if diff := cmp.Diff(Range{0, 3}, b.Range()); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBranchWithoutChildrenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected NewBranch without children to panic")
		}
	}()
	NewBranch(KindOperation)
}

func TestMatch(t *testing.T) {
	count := func(n Node) int {
		total := 0
		Walk(n, func(n Node) bool {
			total += Match(n,
				func(*Branch) int { return 0 },
				func(*Leaf) int { return 1 },
			)
			return true
		})
		return total
	}

	if got := count(ParseString("1+(2*3)")); got != 7 {
		t.Errorf("leaf count = %d, want 7", got)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := ParseString("1+(2*3)")

	var visited int
	Walk(tree, func(n Node) bool {
		visited++
		b, ok := n.(*Branch)
		return !ok || b.Kind != KindBrackets
	})
	// operation, 1, +, brackets
	if visited != 4 {
		t.Errorf("visited %d nodes, want 4", visited)
	}
}

func TestNodeString(t *testing.T) {
	got := ParseString("(1").String()
	want := `has-error [0,2)
  bracket [0,1) "("
  number [1,2) "1"
  error [2,2) "Missing closing bracket"
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeMarshalJSON(t *testing.T) {
	data, err := json.Marshal(ParseString("a*2"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"kind":"operation","branch":true,"range":[0,3],"children":[` +
		`{"kind":"identifier","text":"a","range":[0,1]},` +
		`{"kind":"operator","text":"*","range":[1,2]},` +
		`{"kind":"number","text":"2","range":[2,3]}]}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenMarshalJSON(t *testing.T) {
	tok := Token{Kind: TokenNumber, Text: "12", Range: Range{3, 5}, Edited: true}
	data, err := json.Marshal(tok)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"kind":"number","text":"12","range":[3,5],"edited":true}`
	if got := string(data); got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
