package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/arith/parser"
)

type TokensJSONEncoder struct {
	w io.Writer
}

func NewTokensJSONEncoder(w io.Writer) *TokensJSONEncoder {
	return &TokensJSONEncoder{w: w}
}

func (e *TokensJSONEncoder) Encode(tokens []parser.Token) error {
	text, err := e.MarshalText(tokens)
	return write(e.w, text, err)
}

func (e *TokensJSONEncoder) MarshalText(tokens []parser.Token) ([]byte, error) {
	if tokens == nil {
		tokens = []parser.Token{}
	}
	return json.MarshalIndent(tokens, "", "  ")
}
