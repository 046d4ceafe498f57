package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/arith/parser"
)

// TokenLineEncoder writes one tab separated line per token:
// kind, start, end, edited marker and the quoted text.
type TokenLineEncoder struct {
	w io.Writer
}

func NewTokenLineEncoder(w io.Writer) *TokenLineEncoder {
	return &TokenLineEncoder{w: w}
}

func (e *TokenLineEncoder) Encode(tokens []parser.Token) error {
	text, err := e.MarshalText(tokens)
	return write(e.w, text, err)
}

func (e *TokenLineEncoder) MarshalText(tokens []parser.Token) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%s\t%d\t%d\t%s\t%q\n",
			tok.Kind,
			tok.Range.Start,
			tok.Range.End,
			editedMarker(tok.Edited),
			tok.Text,
		)
	}
	return []byte(sb.String()), nil
}

func editedMarker(edited bool) string {
	if edited {
		return "edited"
	}
	return "-"
}
