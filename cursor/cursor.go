// Package cursor provides a forward-only position cursor over a fixed slice.
package cursor

import "errors"

var (
	ErrExhausted       = errors.New("cursor: exhausted")
	ErrPredicateNotMet = errors.New("cursor: predicate not met")
	ErrNothingConsumed = errors.New("cursor: nothing consumed yet")
)

// Cursor walks items left to right. It never modifies the underlying slice.
// A Cursor must not be shared between concurrent walks.
type Cursor[T any] struct {
	items []T
	pos   int
}

func New[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// Peek returns the next item without consuming it.
func (c *Cursor[T]) Peek() (T, error) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, ErrExhausted
	}
	return c.items[c.pos], nil
}

// Next consumes and returns the next item.
func (c *Cursor[T]) Next() (T, error) {
	item, err := c.Peek()
	if err != nil {
		return item, err
	}
	c.pos++
	return item, nil
}

// NextIf consumes the next item only if pred accepts it. The position is
// left unchanged when the cursor is exhausted or pred rejects the item.
func (c *Cursor[T]) NextIf(pred func(T) bool) (T, error) {
	item, err := c.Peek()
	if err != nil {
		return item, err
	}
	if !pred(item) {
		var zero T
		return zero, ErrPredicateNotMet
	}
	c.pos++
	return item, nil
}

// LastIndex returns the index of the most recently consumed item.
func (c *Cursor[T]) LastIndex() (int, error) {
	if c.pos == 0 {
		return 0, ErrNothingConsumed
	}
	return c.pos - 1, nil
}

// UpcomingIndex returns the index of the next item to be consumed. It equals
// Len once the cursor is exhausted.
func (c *Cursor[T]) UpcomingIndex() int {
	return c.pos
}

func (c *Cursor[T]) Len() int {
	return len(c.items)
}

func (c *Cursor[T]) Done() bool {
	return c.pos >= len(c.items)
}
