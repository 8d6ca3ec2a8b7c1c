package blockchain

import "github.com/gammazero/deque"

// Chain is an ordered container kept newest-first: Append pushes to the
// front, index 0 is the most recent element and Len()-1 the oldest.
type Chain[T any] struct {
	items deque.Deque[T]
}

func (c *Chain[T]) Append(item T) {
	c.items.PushFront(item)
}

// Head returns the most recently appended element.
func (c *Chain[T]) Head() (T, bool) {
	if c.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return c.items.Front(), true
}

func (c *Chain[T]) Len() int {
	return c.items.Len()
}

// At returns the element i positions from the head (0 = newest).
func (c *Chain[T]) At(i int) T {
	return c.items.At(i)
}
