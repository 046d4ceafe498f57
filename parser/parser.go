package parser

import "github.com/dhamidi/arith/cursor"

const (
	MsgMissingTerm           = "Missing term"
	MsgMissingClosingBracket = "Missing closing bracket"
	MsgMissingOperator       = "Missing operator"
)

// Parser is a recursive descent parser over
//
//	expression := term (operator term)*
//	term       := number | identifier | '(' expression ')'
//
// All operators share one precedence and chain to the left. Malformed input
// never fails the parse; defects are recorded as error leaves in the tree.
type Parser struct {
	tokens *cursor.Cursor[Token]
	end    int
}

// Parse always returns a tree, even for an empty token sequence.
func Parse(tokens *cursor.Cursor[Token]) Node {
	p := &Parser{tokens: tokens}
	return p.parseWithRecovery()
}

// ParseString lexes and parses s.
func ParseString(s string) Node {
	return Parse(cursor.New(LexString(s)))
}

// parseWithRecovery parses one expression and, while tokens remain, chains
// the rest behind a zero-width "Missing operator" marker.
func (p *Parser) parseWithRecovery() Node {
	node := p.parseExpression()
	if p.tokens.Done() {
		return node
	}
	rest := p.parseWithRecovery()
	return NewBranch(KindHasError,
		node,
		errorAt(MsgMissingOperator, node.Range().End),
		rest,
	)
}

func (p *Parser) parseExpression() Node {
	node := p.parseTerm()
	for {
		op, err := p.nextIf(isOperatorToken)
		if err != nil {
			return node
		}
		right := p.parseTerm()
		node = NewBranch(KindOperation, node, leafFromToken(LeafOperator, op), right)
	}
}

func (p *Parser) parseTerm() Node {
	tok, err := p.next()
	if err != nil {
		return errorAt(MsgMissingTerm, p.end)
	}

	switch {
	case tok.Kind == TokenNumber:
		return leafFromToken(LeafNumber, tok)
	case tok.Kind == TokenIdentifier:
		return leafFromToken(LeafIdentifier, tok)
	case isOpeningBracket(tok):
		return p.parseBrackets(leafFromToken(LeafBracket, tok))
	default:
		return NewBranch(KindHasError, leafFromToken(LeafError, tok))
	}
}

func (p *Parser) parseBrackets(opening *Leaf) Node {
	inner := p.parseExpression()
	closing, err := p.nextIf(isClosingBracket)
	if err != nil {
		return NewBranch(KindHasError,
			opening,
			inner,
			errorAt(MsgMissingClosingBracket, inner.Range().End),
		)
	}
	return NewBranch(KindBrackets, opening, inner, leafFromToken(LeafBracket, closing))
}

func (p *Parser) next() (Token, error) {
	return p.track(p.tokens.Next())
}

func (p *Parser) nextIf(pred func(Token) bool) (Token, error) {
	return p.track(p.tokens.NextIf(pred))
}

// track records the end of every consumed token so zero-width error leaves
// can be placed right after it.
func (p *Parser) track(tok Token, err error) (Token, error) {
	if err == nil {
		p.end = tok.Range.End
	}
	return tok, err
}

func leafFromToken(kind LeafKind, tok Token) *Leaf {
	return NewLeaf(kind, tok.Text, tok.Range)
}

func isOperatorToken(tok Token) bool {
	return tok.Kind == TokenOperator
}

func isOpeningBracket(tok Token) bool {
	return tok.Kind == TokenBracket && tok.Text == "("
}

func isClosingBracket(tok Token) bool {
	return tok.Kind == TokenBracket && tok.Text == ")"
}
