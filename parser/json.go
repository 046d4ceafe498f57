package parser

import "encoding/json"

type jsonNode struct {
	Kind     string      `json:"kind"`
	Branch   bool        `json:"branch,omitempty"`
	Text     string      `json:"text,omitempty"`
	Range    [2]int      `json:"range"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Range  [2]int `json:"range"`
	Edited bool   `json:"edited,omitempty"`
}

func (b *Branch) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(b))
}

func (l *Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(l))
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonToken{
		Kind:   t.Kind.String(),
		Text:   t.Text,
		Range:  [2]int{t.Range.Start, t.Range.End},
		Edited: t.Edited,
	})
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Start, r.End})
}

func toJSON(n Node) *jsonNode {
	return Match(n,
		func(b *Branch) *jsonNode {
			jn := &jsonNode{
				Kind:     b.Kind.String(),
				Branch:   true,
				Range:    [2]int{b.Span.Start, b.Span.End},
				Children: make([]*jsonNode, len(b.Children)),
			}
			for i, child := range b.Children {
				jn.Children[i] = toJSON(child)
			}
			return jn
		},
		func(l *Leaf) *jsonNode {
			return &jsonNode{
				Kind:  l.Kind.String(),
				Text:  l.Text,
				Range: [2]int{l.Span.Start, l.Span.End},
			}
		},
	)
}
