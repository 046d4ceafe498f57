package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/arith/parser"
)

type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(tree parser.Node) error {
	text, err := e.MarshalText(tree)
	return write(e.w, text, err)
}

func (e *TreeJSONEncoder) MarshalText(tree parser.Node) ([]byte, error) {
	return json.MarshalIndent(tree, "", "  ")
}

type TreeTextEncoder struct {
	w io.Writer
}

func NewTreeTextEncoder(w io.Writer) *TreeTextEncoder {
	return &TreeTextEncoder{w: w}
}

func (e *TreeTextEncoder) Encode(tree parser.Node) error {
	text, err := e.MarshalText(tree)
	return write(e.w, text, err)
}

func (e *TreeTextEncoder) MarshalText(tree parser.Node) ([]byte, error) {
	return []byte(tree.String()), nil
}
