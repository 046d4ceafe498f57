// Package format renders syntax trees and token streams.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/arith/parser"
)

// Encoder writes a tree to an underlying writer.
type Encoder interface {
	Encode(tree parser.Node) error
	MarshalText(tree parser.Node) ([]byte, error)
}

// Names lists the formats accepted by NewEncoder.
var Names = []string{"json", "text", "mermaid"}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewTreeJSONEncoder(w), nil
	case "text":
		return NewTreeTextEncoder(w), nil
	case "mermaid":
		return NewMermaidEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func write(w io.Writer, text []byte, err error) error {
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
