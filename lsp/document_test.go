package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func pos(line, char protocol.UInteger) protocol.Position {
	return protocol.Position{Line: line, Character: char}
}

func TestOffsetAndPosition(t *testing.T) {
	runes := []rune("1+\n(2")

	tests := []struct {
		pos    protocol.Position
		offset int
	}{
		{pos(0, 0), 0},
		{pos(0, 2), 2},
		{pos(0, 9), 2},
		{pos(1, 0), 3},
		{pos(1, 1), 4},
		{pos(1, 2), 5},
		{pos(7, 0), 5},
	}
	for _, tt := range tests {
		if got := offsetOf(runes, tt.pos); got != tt.offset {
			t.Errorf("offsetOf(%v) = %d, want %d", tt.pos, got, tt.offset)
		}
	}

	for offset, want := range map[int]protocol.Position{0: pos(0, 0), 2: pos(0, 2), 3: pos(1, 0), 5: pos(1, 2)} {
		if diff := cmp.Diff(want, positionOf(runes, offset)); diff != "" {
			t.Errorf("positionOf(%d) mismatch (-want +got):\n%s", offset, diff)
		}
	}
}

func messages(diagnostics []protocol.Diagnostic) []string {
	var out []string
	for _, d := range diagnostics {
		out = append(out, d.Message)
	}
	return out
}

func TestDiagnostics(t *testing.T) {
	doc := NewDocument("file:///a.arith", 1, "3+")
	diagnostics := doc.Diagnostics()
	if len(diagnostics) != 1 {
		t.Fatalf("Diagnostics() = %v, want one", diagnostics)
	}
	d := diagnostics[0]
	if d.Message != "Missing term" {
		t.Errorf("Message = %q, want %q", d.Message, "Missing term")
	}
	if diff := cmp.Diff(protocol.Range{Start: pos(0, 2), End: pos(0, 2)}, d.Range); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v, want error", d.Severity)
	}
	if d.Source == nil || *d.Source != "arith" {
		t.Errorf("Source = %v, want arith", d.Source)
	}

	doc = NewDocument("file:///b.arith", 1, "(1 ?")
	want := []string{
		"Missing closing bracket",
		"Missing operator",
		`Unexpected " "`,
		"Missing operator",
		`Unexpected "?"`,
	}
	if diff := cmp.Diff(want, messages(doc.Diagnostics())); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}

	doc = NewDocument("file:///c.arith", 1, "3+4*(2-1)")
	if got := doc.Diagnostics(); got == nil || len(got) != 0 {
		t.Errorf("Diagnostics() = %#v, want empty non-nil", got)
	}
}

func TestApplyIncrementalChange(t *testing.T) {
	doc := NewDocument("file:///a.arith", 1, "3+4")

	err := doc.Apply([]any{
		protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{Start: pos(0, 2), End: pos(0, 3)},
			Text:  "(5",
		},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := doc.Text(); got != "3+(5" {
		t.Fatalf("Text() = %q, want %q", got, "3+(5")
	}

	var edited []string
	for _, tok := range doc.Tokens() {
		if tok.Edited {
			edited = append(edited, tok.Text)
		}
	}
	if diff := cmp.Diff([]string{"(", "5"}, edited); diff != "" {
		t.Errorf("edited tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Missing closing bracket"}, messages(doc.Diagnostics())); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyWholeChange(t *testing.T) {
	doc := NewDocument("file:///a.arith", 1, "3+")
	err := doc.Apply([]any{
		protocol.TextDocumentContentChangeEventWhole{Text: "x"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := doc.Text(); got != "x" {
		t.Errorf("Text() = %q, want %q", got, "x")
	}
	if got := doc.Diagnostics(); len(got) != 0 {
		t.Errorf("Diagnostics() = %v, want none", got)
	}

	if err := doc.Apply([]any{"bogus"}); err == nil {
		t.Error("Expected error for unsupported change")
	}
}

func TestHover(t *testing.T) {
	doc := NewDocument("file:///a.arith", 1, "3+4")

	hover := doc.Hover(pos(0, 2))
	if hover == nil {
		t.Fatal("Hover() = nil")
	}
	content, ok := hover.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("Contents = %T, want MarkupContent", hover.Contents)
	}
	if want := "`operation` [0,3) > `number` [2,3)"; content.Value != want {
		t.Errorf("Value = %q, want %q", content.Value, want)
	}
	if diff := cmp.Diff(&protocol.Range{Start: pos(0, 2), End: pos(0, 3)}, hover.Range); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}

	if hover := doc.Hover(pos(0, 3)); hover != nil {
		t.Errorf("Hover() past the end = %v, want nil", hover.Contents)
	}
}

func TestServerPublishesAndClears(t *testing.T) {
	ls := NewServer("test")

	var published []protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				t.Errorf("Notify(%q), want diagnostics", method)
			}
			published = append(published, params.(protocol.PublishDiagnosticsParams))
		},
	}

	uri := protocol.DocumentUri("file:///a.arith")
	open := &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "(1"},
	}
	if err := ls.textDocumentDidOpen(ctx, open); err != nil {
		t.Fatalf("didOpen error = %v", err)
	}

	change := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{Start: pos(0, 2), End: pos(0, 2)},
				Text:  ")",
			},
		},
	}
	if err := ls.textDocumentDidChange(ctx, change); err != nil {
		t.Fatalf("didChange error = %v", err)
	}
	if got := ls.Document(uri).Text(); got != "(1)" {
		t.Errorf("Text() = %q, want %q", got, "(1)")
	}

	closeParams := &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}
	if err := ls.textDocumentDidClose(ctx, closeParams); err != nil {
		t.Fatalf("didClose error = %v", err)
	}
	if ls.Document(uri) != nil {
		t.Error("document still open after close")
	}

	counts := make([]int, len(published))
	for i, p := range published {
		counts[i] = len(p.Diagnostics)
	}
	if diff := cmp.Diff([]int{1, 0, 0}, counts); diff != "" {
		t.Errorf("published diagnostic counts mismatch (-want +got):\n%s", diff)
	}
}

func TestPositionsCountUTF16Units(t *testing.T) {
	runes := []rune("1+😀?")

	for char, want := range map[protocol.UInteger]int{2: 2, 3: 3, 4: 3, 5: 4} {
		if got := offsetOf(runes, pos(0, char)); got != want {
			t.Errorf("offsetOf(0:%d) = %d, want %d", char, got, want)
		}
	}

	doc := NewDocument("file:///u.arith", 1, "1+😀?")
	var got []protocol.Range
	for _, d := range doc.Diagnostics() {
		got = append(got, d.Range)
	}
	want := []protocol.Range{
		{Start: pos(0, 2), End: pos(0, 4)},
		{Start: pos(0, 4), End: pos(0, 4)},
		{Start: pos(0, 4), End: pos(0, 5)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostic ranges mismatch (-want +got):\n%s", diff)
	}
}
